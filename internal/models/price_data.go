package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice represents one historical trading-day OHLC quote for a stock.
// Rows are immutable once ingested; multiple rows may exist per stock and the
// one with the maximum timestamp is the latest.
type StockPrice struct {
	ID        int             `json:"id"`
	StockID   int             `json:"stock_id"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Timestamp time.Time       `json:"timestamp"`
	CreatedAt time.Time       `json:"created_at"`
}
