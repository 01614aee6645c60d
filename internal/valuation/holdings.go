package valuation

// IndexHoldings groups position rows by (user, league). Repeated
// (user, league, stock) rows are not deduplicated; each contributes to the
// summed total when the portfolio is valued. Negative quantities pass through
// unchanged and combine additively.
func IndexHoldings(positions []Position) map[PortfolioKey][]Holding {
	index := make(map[PortfolioKey][]Holding)
	for _, p := range positions {
		key := PortfolioKey{UID: p.UID, LeagueID: p.LeagueID}
		index[key] = append(index[key], Holding{StockID: p.StockID, Quantity: p.Quantity})
	}
	return index
}
