package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trogers1052/portfolio-valuation/internal/models"
)

func TestUserLeagueRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	t.Run("CreateUserLeague and GetAllUserLeagueBalances", func(t *testing.T) {
		testDB.TruncateAll(t)

		memberships := []*models.UserLeague{
			{UID: "u1", LeagueID: 1, Cash: decimal.NewNullDecimal(decimal.NewFromFloat(1000)), InitialValue: decimal.NewFromInt(1000)},
			{UID: "u1", LeagueID: 2, Cash: decimal.NewNullDecimal(decimal.NewFromFloat(250.75)), InitialValue: decimal.NewFromInt(500)},
			{UID: "u2", LeagueID: 1, Cash: decimal.NewNullDecimal(decimal.NewFromFloat(0)), InitialValue: decimal.NewFromInt(1000)},
		}
		for _, m := range memberships {
			require.NoError(t, testDB.CreateUserLeague(m))
		}

		balances, err := testDB.GetAllUserLeagueBalances()
		require.NoError(t, err)
		assert.Len(t, balances, 3)
	})

	t.Run("null cash round-trips as invalid", func(t *testing.T) {
		testDB.TruncateAll(t)

		require.NoError(t, testDB.CreateUserLeague(&models.UserLeague{
			UID:          "corrupt",
			LeagueID:     1,
			InitialValue: decimal.NewFromInt(1000),
		}))

		balance, err := testDB.GetUserLeagueBalance("corrupt", 1)
		require.NoError(t, err)
		assert.False(t, balance.Cash.Valid, "null cash must stay distinguishable from zero")
	})

	t.Run("UpdateCash updates existing row", func(t *testing.T) {
		testDB.TruncateAll(t)

		require.NoError(t, testDB.CreateUserLeague(&models.UserLeague{
			UID:          "u1",
			LeagueID:     1,
			Cash:         decimal.NewNullDecimal(decimal.NewFromInt(100)),
			InitialValue: decimal.NewFromInt(100),
		}))

		require.NoError(t, testDB.UpdateCash("u1", 1, decimal.NewFromFloat(42.50)))

		balance, err := testDB.GetUserLeagueBalance("u1", 1)
		require.NoError(t, err)
		require.True(t, balance.Cash.Valid)
		assert.True(t, decimal.NewFromFloat(42.50).Equal(balance.Cash.Decimal))
	})

	t.Run("UpdateCash on missing row fails", func(t *testing.T) {
		testDB.TruncateAll(t)

		err := testDB.UpdateCash("nobody", 99, decimal.NewFromInt(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user league not found")
	})
}
