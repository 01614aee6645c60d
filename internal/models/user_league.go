package models

import "github.com/shopspring/decimal"

// UserLeague is one user's membership in a league: their uninvested cash and
// the value their portfolio started with. Cash is nullable so a corrupt row
// can be surfaced as a per-row valuation failure instead of silently reading
// as zero.
type UserLeague struct {
	UID          string              `json:"uid"`
	LeagueID     int                 `json:"league_id"`
	Cash         decimal.NullDecimal `json:"cash"`
	InitialValue decimal.Decimal     `json:"initial_value"`
}
