package dashboard

import (
	"fmt"

	"github.com/guregu/null/v6"
)

// MetricCard is the display block of one selected coin
type MetricCard struct {
	Name      string            `json:"name"`
	Symbol    string            `json:"symbol"`
	Icon      string            `json:"icon"`
	Price     string            `json:"price"`
	Delta24h  string            `json:"delta_24h,omitempty"`
	MarketCap string            `json:"market_cap"`
	Volume24h string            `json:"volume_24h"`
	Changes   map[string]string `json:"changes"`
	Colors    map[string]string `json:"colors"`
}

// Overview is everything the dashboard page renders for one selection
type Overview struct {
	Selected   []string      `json:"selected"`
	Metrics    []MetricCard  `json:"metrics"`
	Field      ChangeField   `json:"field"`
	Gainers    []CoinListing `json:"gainers"`
	Losers     []CoinListing `json:"losers"`
	Share      *Share        `json:"market_share"`
	ShareError string        `json:"market_share_error,omitempty"`
	Comparison []CapBar      `json:"market_cap_comparison"`
}

// BuildOverview assembles the dashboard for the named coins. Movers and market
// share are computed over all listings, metrics and comparison over the selection.
// An undefined market share is reported in ShareError rather than failing the page.
func BuildOverview(listings []CoinListing, names []string, n int, field ChangeField) Overview {
	if len(names) == 0 {
		names = DefaultSelection(listings)
	}
	selected := SelectByName(listings, names)

	overview := Overview{
		Selected:   names,
		Metrics:    make([]MetricCard, 0, len(selected)),
		Field:      field,
		Comparison: MarketCapComparison(selected),
	}
	for _, listing := range selected {
		overview.Metrics = append(overview.Metrics, NewMetricCard(listing))
	}

	overview.Gainers, overview.Losers = TopMovers(listings, n, field)

	share, err := MarketShare(listings)
	if err != nil {
		overview.ShareError = err.Error()
	} else {
		overview.Share = &share
	}

	return overview
}

// NewMetricCard formats a listing for display
func NewMetricCard(listing CoinListing) MetricCard {
	icon := listing.Image
	if icon == "" {
		icon = CoinIconURL(listing.Symbol, 32)
	}

	card := MetricCard{
		Name:      listing.Name,
		Symbol:    listing.Symbol,
		Icon:      icon,
		Price:     formatPrice(listing.Price),
		MarketCap: FormatLargeNumber(listing.MarketCap, 2),
		Volume24h: FormatLargeNumber(listing.Volume24h, 2),
		Changes:   make(map[string]string, len(ChangeFields)),
		Colors:    make(map[string]string, len(ChangeFields)),
	}
	if listing.PercentChange24h.Valid && listing.PercentChange24h.Float64 != 0 {
		card.Delta24h = FormatPercent(listing.PercentChange24h, false)
	}
	for _, field := range ChangeFields {
		value := field.Value(listing)
		card.Changes[string(field)] = FormatPercent(value, true)
		card.Colors[string(field)] = PercentColor(value)
	}
	return card
}

func formatPrice(price null.Float) string {
	if !price.Valid {
		return "N/A"
	}
	return fmt.Sprintf("$%.4f", price.Float64)
}
