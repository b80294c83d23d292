package coingecko_markets

import (
	"strings"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/cache"
)

// ListingsParams are the inputs of a listings fetch
type ListingsParams struct {
	// Currency to quote prices in (e.g. "usd")
	Currency string `json:"vs_currency"`
	// PerPage is the page size (1-250)
	PerPage int `json:"per_page"`
	// Page is the 1-based page number
	Page int `json:"page"`
}

// CacheKey identifies a listings payload in the cache
func (p ListingsParams) CacheKey() string {
	return "listings:" + strings.ToLower(p.Currency) + ":" + itoa(p.PerPage) + ":" + itoa(p.Page)
}

// RawMarket is one record of the CoinGecko /coins/markets response.
// Only the fields the dashboard reads are decoded.
type RawMarket struct {
	ID             string     `json:"id"`
	Symbol         string     `json:"symbol"`
	Name           string     `json:"name"`
	Image          string     `json:"image"`
	CurrentPrice   null.Float `json:"current_price"`
	MarketCap      null.Float `json:"market_cap"`
	MarketCapRank  null.Int   `json:"market_cap_rank"`
	TotalVolume    null.Float `json:"total_volume"`
	PriceChange1h  null.Float `json:"price_change_percentage_1h_in_currency"`
	PriceChange24h null.Float `json:"price_change_percentage_24h_in_currency"`
	PriceChange7d  null.Float `json:"price_change_percentage_7d_in_currency"`
	PriceChange30d null.Float `json:"price_change_percentage_30d_in_currency"`
	LastUpdated    string     `json:"last_updated"`
}

// Quote is the per-currency market block of a listing record
type Quote struct {
	Price            null.Float `json:"price"`
	MarketCap        null.Float `json:"market_cap"`
	Volume24h        null.Float `json:"volume_24h"`
	PercentChange1h  null.Float `json:"percent_change_1h"`
	PercentChange24h null.Float `json:"percent_change_24h"`
	PercentChange7d  null.Float `json:"percent_change_7d"`
	PercentChange30d null.Float `json:"percent_change_30d"`
	LastUpdated      string     `json:"last_updated"`
}

// ListingRecord is one coin of the normalized listings payload
type ListingRecord struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
	Slug    string           `json:"slug"`
	CMCRank null.Int         `json:"cmc_rank"`
	Image   string           `json:"image"`
	Quote   map[string]Quote `json:"quote"`
}

// ListingsPayload is the normalized listings payload stored in the cache
type ListingsPayload struct {
	Data []ListingRecord `json:"data"`

	// Currency is the uppercase key of the quote block; not part of the wire format
	Currency string `json:"-"`
}

// ListingsResult is what Service.Listings hands to callers
type ListingsResult struct {
	Payload     ListingsPayload
	Params      ListingsParams
	Warnings    []string
	CacheStatus cache.Status
}
