package valuation

// ResolveLatest reduces historical price points to the most recent point per
// stock. Equal timestamps resolve to whichever point appears later in the
// input; the ordering of ties carries no meaning. Stocks with no price point
// are absent from the result.
func ResolveLatest(prices []PricePoint) map[int]PricePoint {
	latest := make(map[int]PricePoint)
	for _, p := range prices {
		current, ok := latest[p.StockID]
		if !ok || !p.Timestamp.Before(current.Timestamp) {
			latest[p.StockID] = p
		}
	}
	return latest
}
