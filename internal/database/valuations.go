package database

import (
	"database/sql"
	"fmt"

	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// CreatePortfolioValuation appends one row to the historical portfolio value
// ledger. The ledger is append-only: no conflict clause, repeated runs with
// the same (uid, league, timestamp) simply add more history.
func (db *DB) CreatePortfolioValuation(v *models.PortfolioValuation) error {
	query := `
		INSERT INTO historical_portfolio_value (uid, league_id, value, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := db.conn.QueryRow(query, v.UID, v.LeagueID, v.Value, v.Timestamp).Scan(&v.ID); err != nil {
		return fmt.Errorf("failed to create portfolio valuation: %w", err)
	}
	return nil
}

// GetPortfolioValueHistory retrieves the full valuation history for one
// (user, league), oldest first
func (db *DB) GetPortfolioValueHistory(uid string, leagueID int) ([]*models.PortfolioValuation, error) {
	query := `
		SELECT id, uid, league_id, value, timestamp
		FROM historical_portfolio_value
		WHERE uid = $1 AND league_id = $2
		ORDER BY timestamp ASC
	`
	rows, err := db.conn.Query(query, uid, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio value history: %w", err)
	}
	defer rows.Close()

	var history []*models.PortfolioValuation
	for rows.Next() {
		var v models.PortfolioValuation
		if err := rows.Scan(&v.ID, &v.UID, &v.LeagueID, &v.Value, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio valuation: %w", err)
		}
		history = append(history, &v)
	}
	return history, nil
}

// GetLatestPortfolioValue retrieves the most recent valuation for one
// (user, league)
func (db *DB) GetLatestPortfolioValue(uid string, leagueID int) (*models.PortfolioValuation, error) {
	query := `
		SELECT id, uid, league_id, value, timestamp
		FROM historical_portfolio_value
		WHERE uid = $1 AND league_id = $2
		ORDER BY timestamp DESC
		LIMIT 1
	`
	var v models.PortfolioValuation
	err := db.conn.QueryRow(query, uid, leagueID).Scan(&v.ID, &v.UID, &v.LeagueID, &v.Value, &v.Timestamp)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no valuations found for %s in league %d", uid, leagueID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest portfolio value: %w", err)
	}
	return &v, nil
}
