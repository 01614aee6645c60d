package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// CreateStock inserts a stock, or returns the existing one for the ticker
func (db *DB) CreateStock(s *models.Stock) error {
	query := `
		INSERT INTO stock (name, ticker, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (ticker) DO UPDATE SET name = EXCLUDED.name
		RETURNING stock_id
	`
	now := time.Now()
	if err := db.conn.QueryRow(query, s.Name, s.Ticker, now).Scan(&s.StockID); err != nil {
		return fmt.Errorf("failed to create stock: %w", err)
	}
	s.CreatedAt = now
	return nil
}

// GetStockByTicker retrieves a stock by its ticker symbol
func (db *DB) GetStockByTicker(ticker string) (*models.Stock, error) {
	query := `
		SELECT stock_id, name, ticker, created_at
		FROM stock
		WHERE ticker = $1
	`
	var s models.Stock
	err := db.conn.QueryRow(query, ticker).Scan(&s.StockID, &s.Name, &s.Ticker, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stock not found: %s", ticker)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	return &s, nil
}

// GetAllStocks retrieves every stock in the universe, ordered by ticker
func (db *DB) GetAllStocks() ([]*models.Stock, error) {
	query := `
		SELECT stock_id, name, ticker, created_at
		FROM stock
		ORDER BY ticker ASC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*models.Stock
	for rows.Next() {
		var s models.Stock
		if err := rows.Scan(&s.StockID, &s.Name, &s.Ticker, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, &s)
	}
	return stocks, nil
}
