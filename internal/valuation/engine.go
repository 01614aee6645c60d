package valuation

import (
	"fmt"
	"strconv"
	"time"
)

// MissingFieldError reports a required attribute absent from an input row.
// It is fatal for that single row only; the run continues.
type MissingFieldError struct {
	Field    string
	UID      string
	LeagueID int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q for user %s league %d", e.Field, e.UID, e.LeagueID)
}

// RowError ties a per-row failure to the balance row that produced it.
type RowError struct {
	UID      string
	LeagueID int
	Err      error
}

func (e RowError) Error() string {
	return e.Err.Error()
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ComputeValuations produces one total portfolio value per balance row:
// the row's cash plus quantity times simulated current price for every held
// stock that has a latest price. Holdings with no matching price, and balance
// rows with no holdings at all, contribute nothing; only a missing cash value
// is an error, reported per row without aborting the batch.
//
// runMinutes and runTimestamp must be captured once by the caller and shared
// across the whole run, so every valuation agrees about "now". The oscillator
// seed is the stock identifier's decimal string, which keeps phases stable
// per identifier regardless of ticker.
//
// Output order mirrors the order of balances, minus failed rows.
func ComputeValuations(
	balances []Balance,
	holdings map[PortfolioKey][]Holding,
	latestPrices map[int]PricePoint,
	runMinutes float64,
	runTimestamp time.Time,
) ([]Valuation, []RowError) {
	valuations := make([]Valuation, 0, len(balances))
	var rowErrs []RowError

	for _, b := range balances {
		if b.Cash == nil {
			rowErrs = append(rowErrs, RowError{
				UID:      b.UID,
				LeagueID: b.LeagueID,
				Err:      &MissingFieldError{Field: "cash", UID: b.UID, LeagueID: b.LeagueID},
			})
			continue
		}

		total := *b.Cash
		for _, h := range holdings[PortfolioKey{UID: b.UID, LeagueID: b.LeagueID}] {
			point, ok := latestPrices[h.StockID]
			if !ok {
				continue
			}
			price := SimulatePrice(point.Open, point.Close, strconv.Itoa(h.StockID), runMinutes)
			total += price * h.Quantity
		}

		valuations = append(valuations, Valuation{
			UID:       b.UID,
			LeagueID:  b.LeagueID,
			Value:     total,
			Timestamp: runTimestamp,
		})
	}

	return valuations, rowErrs
}

// MinutesSinceEpoch converts an instant to the fractional epoch minutes the
// oscillator consumes.
func MinutesSinceEpoch(t time.Time) float64 {
	return float64(t.UnixMilli()) / 60000.0
}
