package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDailyOpenClose(t *testing.T) {
	t.Run("parses a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/open-close/AAPL/2026-08-28", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("adjusted"))
			assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"symbol": "AAPL",
				"open": 175.0,
				"high": 178.5,
				"low": 174.0,
				"close": 177.25,
				"from": "2026-08-28"
			}`))
		}))
		defer server.Close()

		client := NewClient("test-key", 600)
		client.baseURL = server.URL

		quote, err := client.GetDailyOpenClose(context.Background(),
			"AAPL", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Symbol)
		assert.True(t, decimal.NewFromFloat(175.0).Equal(quote.Open))
		assert.True(t, decimal.NewFromFloat(177.25).Equal(quote.Close))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient("test-key", 600)
		client.baseURL = server.URL

		_, err := client.GetDailyOpenClose(context.Background(), "AAPL", time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("non-OK payload status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "NOT_FOUND"}`))
		}))
		defer server.Close()

		client := NewClient("test-key", 600)
		client.baseURL = server.URL

		_, err := client.GetDailyOpenClose(context.Background(), "AAPL", time.Now())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"NOT_FOUND"`)
	})

	t.Run("cancelled context interrupts the limiter wait", func(t *testing.T) {
		client := NewClient("test-key", 1)
		// Burst of 1 is consumed here so the next call has to wait.
		require.NoError(t, client.limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.GetDailyOpenClose(ctx, "AAPL", time.Now())
		require.Error(t, err)
	})
}

func TestTradingDays(t *testing.T) {
	// Sunday 2026-08-30: yesterday is Saturday, so the newest trading day is
	// Friday the 28th.
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	days := TradingDays(now, 7)
	require.NotEmpty(t, days)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), days[0])

	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}

	// Window covers Aug 22-29; the weekdays in it are Aug 24-28.
	assert.Len(t, days, 5)
}
