package models

import "time"

// Event type constants
const (
	EventSnapshotRecorded  = "SNAPSHOT_RECORDED"
	EventPortfolioSnapshot = "PORTFOLIO_SNAPSHOT"
)

// SnapshotEvent represents a Kafka event published for each recorded
// portfolio valuation
type SnapshotEvent struct {
	EventType string    `json:"event_type"`
	UID       string    `json:"uid"`
	LeagueID  int       `json:"league_id"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// PortfolioEvent represents a Kafka event carrying a full portfolio snapshot
// for one (user, league); consuming it replaces that portfolio's rows
type PortfolioEvent struct {
	EventType string             `json:"event_type"`
	Source    string             `json:"source"`
	Timestamp string             `json:"timestamp"`
	Data      PortfolioEventData `json:"data"`
}

// PortfolioEventData is the payload of a PortfolioEvent
type PortfolioEventData struct {
	UID       string                   `json:"uid"`
	LeagueID  int                      `json:"league_id"`
	Positions []PortfolioEventPosition `json:"positions"`
}

// PortfolioEventPosition is one position within a portfolio snapshot event
type PortfolioEventPosition struct {
	StockID  int    `json:"stock_id"`
	Quantity string `json:"quantity"`
}
