package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/trogers1052/portfolio-valuation/internal/models"
)

// GetAllUserLeagueBalances retrieves every user-league membership row.
// Cash is nullable; rows with a null cash value are returned as-is so the
// valuation run can report them instead of this layer guessing a default.
func (db *DB) GetAllUserLeagueBalances() ([]*models.UserLeague, error) {
	query := `
		SELECT uid, league_id, cash, initial_value
		FROM user_league
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user league balances: %w", err)
	}
	defer rows.Close()

	var balances []*models.UserLeague
	for rows.Next() {
		u, err := scanUserLeague(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, u)
	}
	return balances, nil
}

// GetUserLeagueBalance retrieves one user's membership in a league
func (db *DB) GetUserLeagueBalance(uid string, leagueID int) (*models.UserLeague, error) {
	query := `
		SELECT uid, league_id, cash, initial_value
		FROM user_league
		WHERE uid = $1 AND league_id = $2
	`
	u, err := scanUserLeague(db.conn.QueryRow(query, uid, leagueID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user league not found: %s in league %d", uid, leagueID)
		}
		return nil, err
	}
	return u, nil
}

// CreateUserLeague inserts a user-league membership row
func (db *DB) CreateUserLeague(u *models.UserLeague) error {
	query := `
		INSERT INTO user_league (uid, league_id, cash, initial_value)
		VALUES ($1, $2, $3, $4)
	`
	var cash interface{}
	if u.Cash.Valid {
		cash = u.Cash.Decimal
	}
	if _, err := db.conn.Exec(query, u.UID, u.LeagueID, cash, u.InitialValue); err != nil {
		return fmt.Errorf("failed to create user league: %w", err)
	}
	return nil
}

// UpdateCash sets the uninvested cash balance for one (user, league)
func (db *DB) UpdateCash(uid string, leagueID int, cash decimal.Decimal) error {
	result, err := db.conn.Exec(
		`UPDATE user_league SET cash = $3 WHERE uid = $1 AND league_id = $2`,
		uid, leagueID, cash,
	)
	if err != nil {
		return fmt.Errorf("failed to update cash: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("user league not found: %s in league %d", uid, leagueID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserLeague(row rowScanner) (*models.UserLeague, error) {
	var u models.UserLeague
	var cash sql.NullString

	if err := row.Scan(&u.UID, &u.LeagueID, &cash, &u.InitialValue); err != nil {
		return nil, fmt.Errorf("failed to scan user league: %w", err)
	}

	if cash.Valid {
		d, err := decimal.NewFromString(cash.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cash for %s: %w", u.UID, err)
		}
		u.Cash = decimal.NewNullDecimal(d)
	}
	return &u, nil
}
