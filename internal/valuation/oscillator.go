package valuation

import "math"

// SimulatePrice synthesizes a current price for a stock from its last known
// open/close quotes. Real intraday prices are not available, so the price is a
// deterministic oscillation around the mid-price: a sine wave whose amplitude
// stays within 90% of the open-close half-range, plus a small lower-frequency
// bump that can occasionally push the price slightly outside that range.
//
// minutes is wall-clock time expressed as fractional minutes since the epoch.
// seedKey derives a stable per-stock phase offset so different stocks do not
// oscillate in lockstep. Identical inputs always produce an identical price.
func SimulatePrice(openPrice, closePrice float64, seedKey string, minutes float64) float64 {
	midPrice := (openPrice + closePrice) / 2.0
	// 90% of the half-range so fluctuations usually stay within open-close.
	amplitude := (closePrice - openPrice) / 2.0 * 0.9

	seed := math.Mod(float64(HashSeed(seedKey)), 360)
	if seed < 0 {
		seed += 360
	}
	angle := minutes + seed

	oscillation := math.Sin(angle)
	// Small lower-frequency bump, about 2% of the mid-price.
	bump := 0.02 * midPrice * math.Sin(angle/10)

	return midPrice + oscillation*amplitude + bump
}
