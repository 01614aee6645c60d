package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.polygon.io"

// DailyOpenClose is one trading day's quote for a ticker as returned by the
// Polygon open-close endpoint
type DailyOpenClose struct {
	Status string          `json:"status"`
	Symbol string          `json:"symbol"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	From   string          `json:"from"`
}

// Client fetches daily open/close quotes from Polygon. Requests are paced
// with a rate limiter; the free tier allows 5 requests per minute.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Polygon client with the given API key and a limit of
// requestsPerMinute
func NewClient(apiKey string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 5
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

// GetDailyOpenClose fetches the adjusted open/close quote for a ticker on a
// given trading day
func (c *Client) GetDailyOpenClose(ctx context.Context, ticker string, date time.Time) (*DailyOpenClose, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	url := fmt.Sprintf("%s/v1/open-close/%s/%s?adjusted=true&apiKey=%s",
		c.baseURL, ticker, date.Format("2006-01-02"), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open-close for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("polygon returned status %d for %s on %s",
			resp.StatusCode, ticker, date.Format("2006-01-02"))
	}

	var quote DailyOpenClose
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to decode open-close response: %w", err)
	}

	if quote.Status != "OK" {
		return nil, fmt.Errorf("polygon returned status %q for %s on %s",
			quote.Status, ticker, date.Format("2006-01-02"))
	}
	return &quote, nil
}
