package polygon

import "time"

// TradingDays returns the trading days in the `days` calendar days ending
// yesterday, newest first. Weekends are skipped; market holidays are not
// tracked, a holiday's fetch simply returns no data.
func TradingDays(now time.Time, days int) []time.Time {
	var trading []time.Time
	current := now.AddDate(0, 0, -1)
	end := current.AddDate(0, 0, -days)

	for !current.Before(end) {
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			trading = append(trading, current)
		}
		current = current.AddDate(0, 0, -1)
	}
	return trading
}
