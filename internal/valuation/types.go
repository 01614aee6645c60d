package valuation

import "time"

// The engine operates on plain in-memory records. Fetching them from the
// store and persisting the results are the caller's concern; nothing in this
// package performs I/O.

// PricePoint is one historical trading-day quote for a stock.
type PricePoint struct {
	StockID   int
	Open      float64
	Close     float64
	High      float64
	Low       float64
	Timestamp time.Time
}

// Position is a held quantity of a stock within a league portfolio.
type Position struct {
	UID      string
	LeagueID int
	StockID  int
	Quantity float64
}

// Balance is one user's uninvested cash within a league. Cash is a pointer so
// a corrupt upstream row with no cash value can be distinguished from zero.
type Balance struct {
	UID      string
	LeagueID int
	Cash     *float64
}

// Valuation is the computed total portfolio value for one (user, league).
type Valuation struct {
	UID       string
	LeagueID  int
	Value     float64
	Timestamp time.Time
}

// PortfolioKey identifies one user's portfolio within one league.
type PortfolioKey struct {
	UID      string
	LeagueID int
}

// Holding is one (stock, quantity) entry in an indexed portfolio.
type Holding struct {
	StockID  int
	Quantity float64
}
