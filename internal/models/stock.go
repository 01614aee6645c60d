package models

import "time"

// Stock represents a tradeable stock in the league universe
type Stock struct {
	StockID   int       `json:"stock_id"`
	Name      string    `json:"name"`
	Ticker    string    `json:"ticker"`
	CreatedAt time.Time `json:"created_at"`
}

// StockQuote is a stock together with its simulated current price, as served
// by the API. Prices are truncated to two decimal places on the way out.
type StockQuote struct {
	StockID     int     `json:"stock_id"`
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	LatestPrice float64 `json:"latest_price"`
	Open        float64 `json:"open"`
	Close       float64 `json:"close"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
}
