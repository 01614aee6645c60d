package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// CreateStockPrice inserts one historical OHLC quote, updating the row if a
// quote for the same stock and timestamp already exists
func (db *DB) CreateStockPrice(p *models.StockPrice) error {
	query := `
		INSERT INTO historical_stock_price (stock_id, open, high, low, close, timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stock_id, timestamp) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close
		RETURNING id
	`
	err := db.conn.QueryRow(query,
		p.StockID, p.Open, p.High, p.Low, p.Close, p.Timestamp, time.Now(),
	).Scan(&p.ID)

	if err != nil {
		return fmt.Errorf("failed to create stock price: %w", err)
	}
	return nil
}

// CreateStockPriceBatch inserts multiple quotes in one transaction
func (db *DB) CreateStockPriceBatch(prices []*models.StockPrice) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO historical_stock_price (stock_id, open, high, low, close, timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stock_id, timestamp) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, p := range prices {
		if _, err := stmt.Exec(p.StockID, p.Open, p.High, p.Low, p.Close, p.Timestamp, now); err != nil {
			return fmt.Errorf("failed to insert price for stock %d: %w", p.StockID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAllStockPrices retrieves every historical quote; the valuation run
// resolves the latest point per stock in memory
func (db *DB) GetAllStockPrices() ([]*models.StockPrice, error) {
	query := `
		SELECT id, stock_id, open, high, low, close, timestamp, created_at
		FROM historical_stock_price
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock prices: %w", err)
	}
	defer rows.Close()

	var prices []*models.StockPrice
	for rows.Next() {
		var p models.StockPrice
		if err := rows.Scan(&p.ID, &p.StockID, &p.Open, &p.High, &p.Low, &p.Close, &p.Timestamp, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock price: %w", err)
		}
		prices = append(prices, &p)
	}
	return prices, nil
}

// GetLatestStockPrice retrieves the most recent quote for a stock
func (db *DB) GetLatestStockPrice(stockID int) (*models.StockPrice, error) {
	query := `
		SELECT id, stock_id, open, high, low, close, timestamp, created_at
		FROM historical_stock_price
		WHERE stock_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`
	var p models.StockPrice
	err := db.conn.QueryRow(query, stockID).Scan(
		&p.ID, &p.StockID, &p.Open, &p.High, &p.Low, &p.Close, &p.Timestamp, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no price data found for stock %d", stockID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest stock price: %w", err)
	}
	return &p, nil
}

// DeleteStockPricesOlderThan removes quotes older than a cutoff date
func (db *DB) DeleteStockPricesOlderThan(cutoff time.Time) (int64, error) {
	result, err := db.conn.Exec(`DELETE FROM historical_stock_price WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old stock prices: %w", err)
	}
	return result.RowsAffected()
}
