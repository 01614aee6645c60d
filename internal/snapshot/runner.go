package snapshot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trogers1052/portfolio-valuation/internal/models"
	"github.com/trogers1052/portfolio-valuation/internal/valuation"
)

// Store provides the fully-materialized inputs for one valuation run
type Store interface {
	GetAllPositions() ([]*models.PortfolioPosition, error)
	GetAllStockPrices() ([]*models.StockPrice, error)
	GetAllUserLeagueBalances() ([]*models.UserLeague, error)
}

// Sink persists one computed valuation. Each append is independent; the
// runner never blocks later valuations on an earlier sink failure.
type Sink interface {
	CreatePortfolioValuation(v *models.PortfolioValuation) error
}

// EventPublisher publishes an event per recorded valuation
type EventPublisher interface {
	PublishSnapshotRecorded(ctx context.Context, uid string, leagueID int, value float64, timestamp time.Time) error
}

// ValueCache holds the latest value per (user, league) for fast reads
type ValueCache interface {
	Set(ctx context.Context, uid string, leagueID int, value float64) error
}

// EmitError records a sink failure for one valuation
type EmitError struct {
	UID      string
	LeagueID int
	Err      error
}

// RunSummary reports the outcome of one valuation run
type RunSummary struct {
	RunTimestamp time.Time
	Valuations   []valuation.Valuation
	RowErrors    []valuation.RowError
	EmitErrors   []EmitError
}

// Runner performs valuation runs: fetch the snapshot inputs, compute every
// portfolio's value with a single shared run instant, and append the results
// to the ledger. Publisher and cache are optional.
type Runner struct {
	store     Store
	sink      Sink
	publisher EventPublisher
	cache     ValueCache
	now       func() time.Time
}

// NewRunner creates a Runner. publisher and cache may be nil.
func NewRunner(store Store, sink Sink, publisher EventPublisher, cache ValueCache) *Runner {
	return &Runner{
		store:     store,
		sink:      sink,
		publisher: publisher,
		cache:     cache,
		now:       time.Now,
	}
}

// Run executes one valuation run. Row-level failures and sink failures are
// collected in the summary; only a failure to fetch the inputs aborts the run.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	positions, err := r.store.GetAllPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}
	prices, err := r.store.GetAllStockPrices()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock prices: %w", err)
	}
	balances, err := r.store.GetAllUserLeagueBalances()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}

	// The run instant is captured exactly once; every valuation in this run
	// shares it.
	runTimestamp := r.now()
	runMinutes := valuation.MinutesSinceEpoch(runTimestamp)

	index := valuation.IndexHoldings(convertPositions(positions))
	latest := valuation.ResolveLatest(convertPrices(prices))
	valuations, rowErrs := valuation.ComputeValuations(
		convertBalances(balances), index, latest, runMinutes, runTimestamp)

	for _, re := range rowErrs {
		log.Printf("Skipping valuation for %s in league %d: %v", re.UID, re.LeagueID, re.Err)
	}

	summary := &RunSummary{
		RunTimestamp: runTimestamp,
		Valuations:   valuations,
		RowErrors:    rowErrs,
	}

	for _, v := range valuations {
		if err := r.sink.CreatePortfolioValuation(&models.PortfolioValuation{
			UID:       v.UID,
			LeagueID:  v.LeagueID,
			Value:     decimal.NewFromFloat(v.Value),
			Timestamp: v.Timestamp,
		}); err != nil {
			log.Printf("Failed to append valuation for %s in league %d: %v", v.UID, v.LeagueID, err)
			summary.EmitErrors = append(summary.EmitErrors, EmitError{UID: v.UID, LeagueID: v.LeagueID, Err: err})
			continue
		}

		if r.publisher != nil {
			if err := r.publisher.PublishSnapshotRecorded(ctx, v.UID, v.LeagueID, v.Value, v.Timestamp); err != nil {
				log.Printf("Failed to publish snapshot event for %s: %v", v.UID, err)
			}
		}
		if r.cache != nil {
			if err := r.cache.Set(ctx, v.UID, v.LeagueID, v.Value); err != nil {
				log.Printf("Failed to refresh value cache for %s: %v", v.UID, err)
			}
		}
	}

	log.Printf("Valuation run complete: %d valuations, %d row errors, %d emit errors",
		len(summary.Valuations), len(summary.RowErrors), len(summary.EmitErrors))
	return summary, nil
}

func convertPositions(positions []*models.PortfolioPosition) []valuation.Position {
	out := make([]valuation.Position, 0, len(positions))
	for _, p := range positions {
		out = append(out, valuation.Position{
			UID:      p.UID,
			LeagueID: p.LeagueID,
			StockID:  p.StockID,
			Quantity: p.Quantity.InexactFloat64(),
		})
	}
	return out
}

func convertPrices(prices []*models.StockPrice) []valuation.PricePoint {
	out := make([]valuation.PricePoint, 0, len(prices))
	for _, p := range prices {
		out = append(out, valuation.PricePoint{
			StockID:   p.StockID,
			Open:      p.Open.InexactFloat64(),
			Close:     p.Close.InexactFloat64(),
			High:      p.High.InexactFloat64(),
			Low:       p.Low.InexactFloat64(),
			Timestamp: p.Timestamp,
		})
	}
	return out
}

func convertBalances(balances []*models.UserLeague) []valuation.Balance {
	out := make([]valuation.Balance, 0, len(balances))
	for _, b := range balances {
		balance := valuation.Balance{UID: b.UID, LeagueID: b.LeagueID}
		if b.Cash.Valid {
			cash := b.Cash.Decimal.InexactFloat64()
			balance.Cash = &cash
		}
		out = append(out, balance)
	}
	return out
}
