package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/dashboard"
)

func TestCSV(t *testing.T) {
	listings := []dashboard.CoinListing{
		{
			ID:               "bitcoin",
			Name:             "Bitcoin",
			Symbol:           "BTC",
			Slug:             "bitcoin",
			Rank:             null.IntFrom(1),
			Price:            null.FloatFrom(64123.5),
			MarketCap:        null.FloatFrom(1263456789012.6),
			Volume24h:        null.FloatFrom(31500000000),
			PercentChange1h:  null.FloatFrom(0.1234),
			PercentChange24h: null.FloatFrom(-1.5),
			PercentChange7d:  null.FloatFrom(4),
			PercentChange30d: null.FloatFrom(0),
			LastUpdated:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:     "newcoin",
			Name:   "New, Coin",
			Symbol: "NEW",
			Slug:   "newcoin",
		},
	}

	out, err := CSV(listings)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])

	row := toMap(records[0], records[1])
	assert.Equal(t, "bitcoin", row["id"])
	assert.Equal(t, "1", row["cmc_rank"])
	assert.Equal(t, "64123.5", row["price"])
	assert.Equal(t, "-1.5", row["percent_change_24h"])
	assert.Equal(t, "2024-05-01T12:00:00Z", row["last_updated"])
	assert.Equal(t, "$64123.5000", row["formatted_price"])
	assert.Equal(t, "$1,263,456,789,013", row["formatted_market_cap"])
	assert.Equal(t, "$31,500,000,000", row["formatted_volume"])
	assert.Equal(t, "0.12%", row["formatted_percent_change_1h"])
	assert.Equal(t, "-1.50%", row["formatted_percent_change_24h"])
	assert.Equal(t, "0.00%", row["formatted_percent_change_30d"])

	empty := toMap(records[0], records[2])
	assert.Equal(t, "New, Coin", empty["name"])
	assert.Equal(t, "", empty["price"])
	assert.Equal(t, "", empty["cmc_rank"])
	assert.Equal(t, "", empty["last_updated"])
	assert.Equal(t, "N/A", empty["formatted_price"])
	assert.Equal(t, "N/A", empty["formatted_market_cap"])
	assert.Equal(t, "N/A", empty["formatted_percent_change_7d"])
}

func TestCSV_HeaderOnly(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Columns, ",")+"\n", string(out))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "crypto_data_20240501_090507.csv", FileName(time.Date(2024, 5, 1, 9, 5, 7, 0, time.UTC)))
}

func toMap(header, row []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, name := range header {
		m[name] = row[i]
	}
	return m
}
