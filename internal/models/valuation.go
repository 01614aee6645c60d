package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioValuation is one appended row of the historical portfolio value
// ledger: the total value of a user's league portfolio at a run instant.
// Rows are append-only; the engine never updates or deletes them, and no
// uniqueness is enforced over (uid, league_id, timestamp).
type PortfolioValuation struct {
	ID        int             `json:"id"`
	UID       string          `json:"uid"`
	LeagueID  int             `json:"league_id"`
	Value     decimal.Decimal `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}
