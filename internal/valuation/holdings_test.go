package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHoldings(t *testing.T) {
	t.Run("groups by user and league", func(t *testing.T) {
		positions := []Position{
			{UID: "u1", LeagueID: 1, StockID: 7, Quantity: 10},
			{UID: "u1", LeagueID: 2, StockID: 7, Quantity: 3},
			{UID: "u2", LeagueID: 1, StockID: 9, Quantity: 4},
			{UID: "u1", LeagueID: 1, StockID: 9, Quantity: 1},
		}

		index := IndexHoldings(positions)
		require.Len(t, index, 3)
		assert.ElementsMatch(t, []Holding{{StockID: 7, Quantity: 10}, {StockID: 9, Quantity: 1}},
			index[PortfolioKey{UID: "u1", LeagueID: 1}])
		assert.Equal(t, []Holding{{StockID: 7, Quantity: 3}}, index[PortfolioKey{UID: "u1", LeagueID: 2}])
		assert.Equal(t, []Holding{{StockID: 9, Quantity: 4}}, index[PortfolioKey{UID: "u2", LeagueID: 1}])
	})

	t.Run("duplicate rows both survive and sum on use", func(t *testing.T) {
		positions := []Position{
			{UID: "u1", LeagueID: 1, StockID: 7, Quantity: 10},
			{UID: "u1", LeagueID: 1, StockID: 7, Quantity: 5},
		}

		index := IndexHoldings(positions)
		holdings := index[PortfolioKey{UID: "u1", LeagueID: 1}]
		require.Len(t, holdings, 2)

		var total float64
		for _, h := range holdings {
			total += h.Quantity
		}
		assert.Equal(t, 15.0, total)
	})

	t.Run("negative quantities pass through", func(t *testing.T) {
		index := IndexHoldings([]Position{{UID: "u1", LeagueID: 1, StockID: 7, Quantity: -2.5}})
		assert.Equal(t, -2.5, index[PortfolioKey{UID: "u1", LeagueID: 1}][0].Quantity)
	})

	t.Run("empty input yields empty index", func(t *testing.T) {
		assert.Empty(t, IndexHoldings(nil))
	})
}
