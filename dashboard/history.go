package dashboard

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/coingecko_market_chart"
)

// PrepareHistory turns the series of symbol in payload into samples sorted by time.
// An empty symbol selects the only series of the payload. No data yields an empty slice.
func PrepareHistory(payload coingecko_market_chart.HistoryPayload, symbol string) []HistoricalSample {
	series, ok := pickSeries(payload, strings.ToUpper(symbol))
	if !ok {
		return []HistoricalSample{}
	}

	samples := make([]HistoricalSample, 0, len(series.Quotes))
	for key, byCurrency := range series.Quotes {
		epoch, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		quote, ok := pickQuote(byCurrency)
		if !ok {
			continue
		}
		samples = append(samples, HistoricalSample{
			Timestamp: time.Unix(epoch, 0).UTC(),
			Price:     quote.Price,
			Volume24h: quote.Volume24h,
			MarketCap: quote.MarketCap,
		})
	}

	sortSamples(samples)
	return samples
}

// PrepareHistoryFromChart zips a raw market chart by index, one sample per price point
func PrepareHistoryFromChart(chart coingecko_market_chart.MarketChartResponse) []HistoricalSample {
	samples := make([]HistoricalSample, 0, len(chart.Prices))
	for i, point := range chart.Prices {
		sample := HistoricalSample{
			Timestamp: time.Unix(int64(point[0])/1000, 0).UTC(),
			Price:     point[1],
		}
		if i < len(chart.TotalVolumes) {
			sample.Volume24h = null.FloatFrom(chart.TotalVolumes[i][1])
		}
		if i < len(chart.MarketCaps) {
			sample.MarketCap = null.FloatFrom(chart.MarketCaps[i][1])
		}
		samples = append(samples, sample)
	}

	sortSamples(samples)
	return samples
}

// PriceChange is the percent change from the first to the last sample's price
func PriceChange(samples []HistoricalSample) null.Float {
	if len(samples) == 0 || samples[0].Price == 0 {
		return null.Float{}
	}
	first := samples[0].Price
	last := samples[len(samples)-1].Price
	return null.FloatFrom((last - first) / first * 100)
}

func sortSamples(samples []HistoricalSample) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})
}

func pickSeries(payload coingecko_market_chart.HistoryPayload, symbol string) (coingecko_market_chart.HistorySeries, bool) {
	if symbol != "" {
		series, ok := payload.Data[symbol]
		return series, ok
	}
	if len(payload.Data) != 1 {
		return coingecko_market_chart.HistorySeries{}, false
	}
	for _, series := range payload.Data {
		return series, true
	}
	return coingecko_market_chart.HistorySeries{}, false
}

// pickQuote prefers the USD quote and falls back to a lone quote in another currency
func pickQuote(byCurrency map[string]coingecko_market_chart.HistoryQuote) (coingecko_market_chart.HistoryQuote, bool) {
	if quote, ok := byCurrency[defaultQuoteCurrency]; ok {
		return quote, true
	}
	if len(byCurrency) == 1 {
		for _, quote := range byCurrency {
			return quote, true
		}
	}
	return coingecko_market_chart.HistoryQuote{}, false
}
