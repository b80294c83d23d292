package dashboard

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/market_errors"
)

func record(id, symbol string, marketCap null.Float) coingecko_markets.ListingRecord {
	return coingecko_markets.ListingRecord{
		ID:     id,
		Name:   id,
		Symbol: symbol,
		Slug:   id,
		Quote: map[string]coingecko_markets.Quote{
			"USD": {
				Price:            null.FloatFrom(1),
				MarketCap:        marketCap,
				PercentChange24h: null.FloatFrom(1),
				LastUpdated:      "2024-05-01T12:00:00.000Z",
			},
		},
	}
}

func TestPrepareListings_SortsByMarketCapWithNullsLast(t *testing.T) {
	payload := coingecko_markets.ListingsPayload{
		Currency: "USD",
		Data: []coingecko_markets.ListingRecord{
			record("nocap-a", "NA", null.Float{}),
			record("small", "SML", null.FloatFrom(10)),
			record("tie-first", "TF", null.FloatFrom(50)),
			record("big", "BIG", null.FloatFrom(100)),
			record("nocap-b", "NB", null.Float{}),
			record("tie-second", "TS", null.FloatFrom(50)),
		},
	}

	listings, err := PrepareListings(payload)
	require.NoError(t, err)

	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"big", "tie-first", "tie-second", "small", "nocap-a", "nocap-b"}, ids)
}

func TestPrepareListings_FlattensQuote(t *testing.T) {
	rec := record("bitcoin", "BTC", null.FloatFrom(1.2e12))
	rec.CMCRank = null.IntFrom(1)

	listings, err := PrepareListings(coingecko_markets.ListingsPayload{Data: []coingecko_markets.ListingRecord{rec}})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	l := listings[0]
	assert.Equal(t, "BTC", l.Symbol)
	assert.Equal(t, int64(1), l.Rank.ValueOrZero())
	assert.Equal(t, 1.2e12, l.MarketCap.ValueOrZero())
	assert.False(t, l.PercentChange1h.Valid)
	assert.True(t, l.PercentChange30d.Valid)
	assert.Equal(t, 0.0, l.PercentChange30d.Float64)
	assert.True(t, l.LastUpdated.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestPrepareListings_MissingQuoteIsMalformed(t *testing.T) {
	payload := coingecko_markets.ListingsPayload{
		Currency: "EUR",
		Data:     []coingecko_markets.ListingRecord{record("bitcoin", "BTC", null.FloatFrom(1))},
	}

	_, err := PrepareListings(payload)
	require.Error(t, err)
	assert.Equal(t, market_errors.MalformedPayload, market_errors.KindOf(err))
	assert.Contains(t, err.Error(), "bitcoin")
}

func TestPrepareListings_BadTimestampIsMalformed(t *testing.T) {
	rec := record("bitcoin", "BTC", null.FloatFrom(1))
	quote := rec.Quote["USD"]
	quote.LastUpdated = "yesterday"
	rec.Quote["USD"] = quote

	_, err := PrepareListings(coingecko_markets.ListingsPayload{Data: []coingecko_markets.ListingRecord{rec}})
	assert.Equal(t, market_errors.MalformedPayload, market_errors.KindOf(err))
}

func TestPrepareListings_EmptyTimestamp(t *testing.T) {
	rec := record("bitcoin", "BTC", null.FloatFrom(1))
	quote := rec.Quote["USD"]
	quote.LastUpdated = ""
	rec.Quote["USD"] = quote

	listings, err := PrepareListings(coingecko_markets.ListingsPayload{Data: []coingecko_markets.ListingRecord{rec}})
	require.NoError(t, err)
	assert.True(t, listings[0].LastUpdated.IsZero())
}

func TestPrepareListings_Empty(t *testing.T) {
	listings, err := PrepareListings(coingecko_markets.ListingsPayload{})
	require.NoError(t, err)
	assert.Empty(t, listings)
}
