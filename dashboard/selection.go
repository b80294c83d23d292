package dashboard

import (
	"fmt"
	"sort"
)

// DefaultSelectionNames are preselected when a request names no coins
var DefaultSelectionNames = []string{"Bitcoin", "Ethereum", "Solana", "Ripple", "Cardano"}

// CapBar is one bar of the market cap comparison chart
type CapBar struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	MarketCap float64 `json:"market_cap"`
	Label     string  `json:"label"`
}

// SelectByName keeps the listings whose name is in names, in listing order
func SelectByName(listings []CoinListing, names []string) []CoinListing {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	selected := make([]CoinListing, 0, len(names))
	for _, listing := range listings {
		if _, ok := wanted[listing.Name]; ok {
			selected = append(selected, listing)
		}
	}
	return selected
}

// DefaultSelection returns the default names that are present in listings
func DefaultSelection(listings []CoinListing) []string {
	present := make(map[string]struct{}, len(listings))
	for _, listing := range listings {
		present[listing.Name] = struct{}{}
	}

	names := make([]string, 0, len(DefaultSelectionNames))
	for _, name := range DefaultSelectionNames {
		if _, ok := present[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// MarketCapComparison orders the selected coins by market cap, smallest first.
// Coins without a market cap have no bar.
func MarketCapComparison(selected []CoinListing) []CapBar {
	bars := make([]CapBar, 0, len(selected))
	for _, listing := range selected {
		if !listing.MarketCap.Valid {
			continue
		}
		bars = append(bars, CapBar{
			Name:      listing.Name,
			Symbol:    listing.Symbol,
			MarketCap: listing.MarketCap.Float64,
			Label:     fmt.Sprintf("$%.2fB", listing.MarketCap.Float64/1e9),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].MarketCap < bars[j].MarketCap
	})
	return bars
}
