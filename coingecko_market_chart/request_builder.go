package coingecko_market_chart

import (
	"fmt"
	"net/url"
	"strconv"

	cg "github.com/status-im/market-dashboard/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
)

// MarketChartRequestBuilder builds /coins/{id}/market_chart requests
type MarketChartRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
	coinID string
}

func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))

	rb := &MarketChartRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, apiPath),
		coinID:                  coinID,
	}

	rb.WithCurrency("usd")
	rb.WithDays(30)

	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days int) *MarketChartRequestBuilder {
	rb.With("days", strconv.Itoa(days))
	return rb
}

func (rb *MarketChartRequestBuilder) WithInterval(interval string) *MarketChartRequestBuilder {
	if interval != "" {
		rb.With("interval", interval)
	}
	return rb
}
