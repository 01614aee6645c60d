package database

import (
	"fmt"

	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// GetAllPositions retrieves every portfolio row across all users and leagues
func (db *DB) GetAllPositions() ([]*models.PortfolioPosition, error) {
	query := `
		SELECT uid, league_id, stock_id, quantity
		FROM portfolio
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	defer rows.Close()

	var positions []*models.PortfolioPosition
	for rows.Next() {
		var p models.PortfolioPosition
		if err := rows.Scan(&p.UID, &p.LeagueID, &p.StockID, &p.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, &p)
	}
	return positions, nil
}

// GetPositions retrieves one user's portfolio within a league
func (db *DB) GetPositions(uid string, leagueID int) ([]*models.PortfolioPosition, error) {
	query := `
		SELECT uid, league_id, stock_id, quantity
		FROM portfolio
		WHERE uid = $1 AND league_id = $2
	`
	rows, err := db.conn.Query(query, uid, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions for %s: %w", uid, err)
	}
	defer rows.Close()

	var positions []*models.PortfolioPosition
	for rows.Next() {
		var p models.PortfolioPosition
		if err := rows.Scan(&p.UID, &p.LeagueID, &p.StockID, &p.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, &p)
	}
	return positions, nil
}

// UpsertPosition creates or updates one portfolio row
func (db *DB) UpsertPosition(p *models.PortfolioPosition) error {
	query := `
		INSERT INTO portfolio (uid, league_id, stock_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid, league_id, stock_id) DO UPDATE SET
			quantity = EXCLUDED.quantity
	`
	if _, err := db.conn.Exec(query, p.UID, p.LeagueID, p.StockID, p.Quantity); err != nil {
		return fmt.Errorf("failed to upsert position: %w", err)
	}
	return nil
}

// ReplacePortfolio atomically replaces one (user, league) portfolio with the
// given rows. Used by the portfolio snapshot consumer, which receives full
// snapshots rather than deltas.
func (db *DB) ReplacePortfolio(uid string, leagueID int, positions []*models.PortfolioPosition) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM portfolio WHERE uid = $1 AND league_id = $2`, uid, leagueID); err != nil {
		return fmt.Errorf("failed to clear portfolio: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO portfolio (uid, league_id, stock_id, quantity)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range positions {
		if _, err := stmt.Exec(uid, leagueID, p.StockID, p.Quantity); err != nil {
			return fmt.Errorf("failed to insert position for stock %d: %w", p.StockID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
