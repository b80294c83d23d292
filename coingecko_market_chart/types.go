package coingecko_market_chart

import (
	"strconv"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/cache"
)

// HistoryTimestampLayout is the layout of sample and status timestamps in a history payload
const HistoryTimestampLayout = "2006-01-02T15:04:05.000000Z"

// MarketChartParams represents parameters for market chart requests
type MarketChartParams struct {
	// ID is the coin id (required) - obtained from the symbol index
	ID string `json:"id"`

	// Currency to compare against (e.g., "usd")
	Currency string `json:"vs_currency"`

	// Days is the lookback in days, already clamped to 1..max_days
	Days int `json:"days"`

	// Interval specifies data interval ("daily" unless configured otherwise)
	Interval string `json:"interval,omitempty"`
}

// HistoryCacheKey identifies a normalized history payload in the cache
func HistoryCacheKey(symbol string, days int) string {
	return "history:" + strings.ToUpper(symbol) + ":" + strconv.Itoa(days)
}

// MarketChartData represents a single data point [timestamp_ms, value]
type MarketChartData [2]float64

// MarketChartResponse represents the market chart API response structure
type MarketChartResponse struct {
	// Prices contains historical price data as [timestamp, price] pairs
	Prices []MarketChartData `json:"prices"`

	// MarketCaps contains historical market cap data as [timestamp, market_cap] pairs
	MarketCaps []MarketChartData `json:"market_caps"`

	// TotalVolumes contains historical volume data as [timestamp, total_volume] pairs
	TotalVolumes []MarketChartData `json:"total_volumes"`
}

// HistoryQuote is one sample of a series in one quote currency
type HistoryQuote struct {
	Price     float64    `json:"price"`
	Volume24h null.Float `json:"volume_24h"`
	MarketCap null.Float `json:"market_cap"`
	Timestamp string     `json:"timestamp"`
}

// HistorySeries holds the samples of one symbol keyed by epoch seconds, then quote currency
type HistorySeries struct {
	Quotes map[string]map[string]HistoryQuote `json:"quotes"`
}

// HistoryStatus describes how the payload was produced
type HistoryStatus struct {
	Timestamp    string      `json:"timestamp"`
	ErrorCode    int         `json:"error_code"`
	ErrorMessage null.String `json:"error_message"`
	CreditCount  int         `json:"credit_count"`
}

// HistoryPayload is the normalized history payload
type HistoryPayload struct {
	Data   map[string]HistorySeries `json:"data"`
	Status HistoryStatus            `json:"status"`
}

// HistoryResult is what Service.History returns to the presentation layer
type HistoryResult struct {
	Payload     HistoryPayload
	Symbol      string
	Days        int
	Warnings    []string
	CacheStatus cache.Status
}
