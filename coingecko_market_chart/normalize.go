package coingecko_market_chart

import (
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"
)

// NormalizeHistory reshapes a raw market chart into the history payload for symbol.
// Series are zipped by index; a volume or market cap series shorter than the
// price series leaves null values. Later duplicates of a timestamp win.
func NormalizeHistory(chart MarketChartResponse, symbol, currency string, fetchedAt time.Time) HistoryPayload {
	symbol = strings.ToUpper(symbol)
	currency = strings.ToUpper(currency)

	quotes := make(map[string]map[string]HistoryQuote, len(chart.Prices))
	for i, point := range chart.Prices {
		ts := time.Unix(int64(point[0])/1000, 0).UTC()

		quote := HistoryQuote{
			Price:     point[1],
			Timestamp: ts.Format(HistoryTimestampLayout),
		}
		if i < len(chart.TotalVolumes) {
			quote.Volume24h = null.FloatFrom(chart.TotalVolumes[i][1])
		}
		if i < len(chart.MarketCaps) {
			quote.MarketCap = null.FloatFrom(chart.MarketCaps[i][1])
		}

		quotes[strconv.FormatInt(ts.Unix(), 10)] = map[string]HistoryQuote{currency: quote}
	}

	return HistoryPayload{
		Data: map[string]HistorySeries{
			symbol: {Quotes: quotes},
		},
		Status: HistoryStatus{
			Timestamp: fetchedAt.UTC().Format(HistoryTimestampLayout),
		},
	}
}
