package models

import "github.com/shopspring/decimal"

// PortfolioPosition represents a held quantity of a stock within a league
// portfolio. Quantities may be fractional; negative quantities model shorts
// and flow through valuation unchanged.
type PortfolioPosition struct {
	UID      string          `json:"uid"`
	LeagueID int             `json:"league_id"`
	StockID  int             `json:"stock_id"`
	Quantity decimal.Decimal `json:"quantity"`
}
