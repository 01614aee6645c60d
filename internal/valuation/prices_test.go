package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricePoint(stockID int, close float64, ts time.Time) PricePoint {
	return PricePoint{StockID: stockID, Open: close - 1, Close: close, High: close + 1, Low: close - 2, Timestamp: ts}
}

func TestResolveLatest(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("selects maximum timestamp regardless of order", func(t *testing.T) {
		points := []PricePoint{
			pricePoint(7, 10, day(3)),
			pricePoint(7, 12, day(5)),
			pricePoint(7, 11, day(4)),
			pricePoint(9, 20, day(1)),
		}

		forward := ResolveLatest(points)
		require.Len(t, forward, 2)
		assert.Equal(t, 12.0, forward[7].Close)
		assert.Equal(t, 20.0, forward[9].Close)

		// Reversed input picks the same points.
		reversed := make([]PricePoint, 0, len(points))
		for i := len(points) - 1; i >= 0; i-- {
			reversed = append(reversed, points[i])
		}
		assert.Equal(t, forward, ResolveLatest(reversed))
	})

	t.Run("equal timestamps keep the last point scanned", func(t *testing.T) {
		ts := day(5)
		latest := ResolveLatest([]PricePoint{
			pricePoint(7, 10, ts),
			pricePoint(7, 99, ts),
		})
		assert.Equal(t, 99.0, latest[7].Close)
	})

	t.Run("stocks without points are absent", func(t *testing.T) {
		latest := ResolveLatest([]PricePoint{pricePoint(7, 10, day(1))})
		_, ok := latest[9]
		assert.False(t, ok)
	})
}
