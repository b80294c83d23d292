package dashboard

import (
	"time"

	"github.com/guregu/null/v6"
)

// CoinListing is one flattened, ranked row of the listings table
type CoinListing struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Symbol           string     `json:"symbol"`
	Slug             string     `json:"slug"`
	Rank             null.Int   `json:"cmc_rank"`
	Image            string     `json:"image"`
	Price            null.Float `json:"price"`
	MarketCap        null.Float `json:"market_cap"`
	Volume24h        null.Float `json:"volume_24h"`
	PercentChange1h  null.Float `json:"percent_change_1h"`
	PercentChange24h null.Float `json:"percent_change_24h"`
	PercentChange7d  null.Float `json:"percent_change_7d"`
	PercentChange30d null.Float `json:"percent_change_30d"`
	LastUpdated      time.Time  `json:"last_updated"`
}

// HistoricalSample is one point of a single asset's daily series
type HistoricalSample struct {
	Timestamp time.Time  `json:"timestamp"`
	Price     float64    `json:"price"`
	Volume24h null.Float `json:"volume_24h"`
	MarketCap null.Float `json:"market_cap"`
}

// Share is the split of aggregate market cap between BTC, ETH and everything else, in percent
type Share struct {
	Bitcoin  float64 `json:"Bitcoin"`
	Ethereum float64 `json:"Ethereum"`
	Altcoins float64 `json:"Altcoins"`
}
