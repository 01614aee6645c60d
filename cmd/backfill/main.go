package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/trogers1052/portfolio-valuation/internal/config"
	"github.com/trogers1052/portfolio-valuation/internal/database"
	"github.com/trogers1052/portfolio-valuation/internal/models"
	"github.com/trogers1052/portfolio-valuation/internal/polygon"
)

// Backfills historical open/close quotes from Polygon for a set of tickers.
// Missing stocks are created on the fly; existing quote rows are upserted.
func main() {
	tickersFlag := flag.String("tickers", "", "comma-separated tickers to backfill (default: every stock in the store)")
	flag.Parse()

	cfg := config.Load()
	if cfg.Polygon.APIKey == "" {
		log.Fatal("POLYGON_API_KEY is required")
	}

	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tickers, err := resolveTickers(db, *tickersFlag)
	if err != nil {
		log.Fatalf("Failed to resolve tickers: %v", err)
	}
	if len(tickers) == 0 {
		log.Fatal("No tickers to backfill")
	}

	client := polygon.NewClient(cfg.Polygon.APIKey, cfg.Polygon.RequestsPerMinute)
	days := polygon.TradingDays(time.Now(), cfg.Polygon.BackfillDays)
	ctx := context.Background()

	var inserted, failed int
	for _, ticker := range tickers {
		stock, err := db.GetStockByTicker(ticker)
		if err != nil {
			stock = &models.Stock{Name: ticker, Ticker: ticker}
			if err := db.CreateStock(stock); err != nil {
				log.Fatalf("Failed to create stock %s: %v", ticker, err)
			}
		}

		for _, day := range days {
			quote, err := client.GetDailyOpenClose(ctx, ticker, day)
			if err != nil {
				log.Printf("Skipping %s on %s: %v", ticker, day.Format("2006-01-02"), err)
				failed++
				continue
			}

			price := &models.StockPrice{
				StockID:   stock.StockID,
				Open:      quote.Open,
				High:      quote.High,
				Low:       quote.Low,
				Close:     quote.Close,
				Timestamp: day.Truncate(24 * time.Hour),
			}
			if err := db.CreateStockPrice(price); err != nil {
				log.Printf("Failed to store %s on %s: %v", ticker, day.Format("2006-01-02"), err)
				failed++
				continue
			}
			inserted++
		}
	}

	log.Printf("Backfill complete: %d quotes stored, %d skipped", inserted, failed)
}

func resolveTickers(db *database.DB, flagValue string) ([]string, error) {
	if flagValue != "" {
		parts := strings.Split(flagValue, ",")
		tickers := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				tickers = append(tickers, strings.ToUpper(trimmed))
			}
		}
		return tickers, nil
	}

	stocks, err := db.GetAllStocks()
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(stocks))
	for _, s := range stocks {
		tickers = append(tickers, s.Ticker)
	}
	return tickers, nil
}
