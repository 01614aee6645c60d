package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/trogers1052/portfolio-valuation/internal/cache"
	"github.com/trogers1052/portfolio-valuation/internal/database"
	"github.com/trogers1052/portfolio-valuation/internal/models"
	"github.com/trogers1052/portfolio-valuation/internal/snapshot"
	"github.com/trogers1052/portfolio-valuation/internal/valuation"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	db     *database.DB
	runner *snapshot.Runner
	cache  *cache.ValueCache
}

// NewHandler creates a new Handler; cache may be nil
func NewHandler(db *database.DB, runner *snapshot.Runner, valueCache *cache.ValueCache) *Handler {
	return &Handler{
		db:     db,
		runner: runner,
		cache:  valueCache,
	}
}

// RunSnapshot handles POST /api/v1/snapshots/run
func (h *Handler) RunSnapshot(w http.ResponseWriter, r *http.Request) {
	summary, err := h.runner.Run(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"run_timestamp": summary.RunTimestamp,
		"valuations":    len(summary.Valuations),
		"row_errors":    len(summary.RowErrors),
		"emit_errors":   len(summary.EmitErrors),
	})
}

// GetPortfolioHistory handles GET /api/v1/portfolio/{uid}/{leagueID}/history
func (h *Handler) GetPortfolioHistory(w http.ResponseWriter, r *http.Request) {
	uid, leagueID, ok := portfolioVars(w, r)
	if !ok {
		return
	}

	history, err := h.db.GetPortfolioValueHistory(uid, leagueID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Values are truncated to cents for display, full precision stays in the
	// ledger.
	for _, v := range history {
		v.Value = v.Value.Truncate(2)
	}
	respondJSON(w, http.StatusOK, history)
}

// GetLatestPortfolioValue handles GET /api/v1/portfolio/{uid}/{leagueID}/value
func (h *Handler) GetLatestPortfolioValue(w http.ResponseWriter, r *http.Request) {
	uid, leagueID, ok := portfolioVars(w, r)
	if !ok {
		return
	}

	if h.cache != nil {
		if value, found, err := h.cache.Get(r.Context(), uid, leagueID); err == nil && found {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"uid":       uid,
				"league_id": leagueID,
				"value":     decimal.NewFromFloat(value).Truncate(2),
			})
			return
		}
	}

	latest, err := h.db.GetLatestPortfolioValue(uid, leagueID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if h.cache != nil {
		// Cache refresh failures never fail the read.
		_ = h.cache.Set(r.Context(), uid, leagueID, latest.Value.InexactFloat64())
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"uid":       uid,
		"league_id": leagueID,
		"value":     latest.Value.Truncate(2),
		"timestamp": latest.Timestamp,
	})
}

// GetStocks handles GET /api/v1/stocks: every stock with its simulated
// current price derived from the latest historical quote
func (h *Handler) GetStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.db.GetAllStocks()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	prices, err := h.db.GetAllStockPrices()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	points := make([]valuation.PricePoint, 0, len(prices))
	for _, p := range prices {
		points = append(points, valuation.PricePoint{
			StockID:   p.StockID,
			Open:      p.Open.InexactFloat64(),
			Close:     p.Close.InexactFloat64(),
			High:      p.High.InexactFloat64(),
			Low:       p.Low.InexactFloat64(),
			Timestamp: p.Timestamp,
		})
	}
	latest := valuation.ResolveLatest(points)
	minutes := valuation.MinutesSinceEpoch(time.Now())

	quotes := make([]models.StockQuote, 0, len(stocks))
	for _, s := range stocks {
		point, ok := latest[s.StockID]
		if !ok {
			continue
		}
		price := valuation.SimulatePrice(point.Open, point.Close, strconv.Itoa(s.StockID), minutes)
		quotes = append(quotes, models.StockQuote{
			StockID:     s.StockID,
			Ticker:      s.Ticker,
			Name:        s.Name,
			LatestPrice: truncateCents(price),
			Open:        truncateCents(point.Open),
			Close:       truncateCents(point.Close),
			High:        truncateCents(point.High),
			Low:         truncateCents(point.Low),
		})
	}

	respondJSON(w, http.StatusOK, quotes)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func portfolioVars(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	vars := mux.Vars(r)
	uid := vars["uid"]

	leagueID, err := strconv.Atoi(vars["leagueID"])
	if err != nil {
		http.Error(w, "invalid league id", http.StatusBadRequest)
		return "", 0, false
	}
	return uid, leagueID, true
}

func truncateCents(v float64) float64 {
	return decimal.NewFromFloat(v).Truncate(2).InexactFloat64()
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
