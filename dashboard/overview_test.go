package dashboard

import (
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOverview_DefaultSelection(t *testing.T) {
	listings := rankedListings()
	listings[0].PercentChange24h = null.FloatFrom(2)
	listings[1].PercentChange24h = null.FloatFrom(-1)

	overview := BuildOverview(listings, nil, 5, PercentChange24h)

	assert.Equal(t, []string{"Bitcoin", "Ethereum", "Solana", "Cardano"}, overview.Selected)
	require.Len(t, overview.Metrics, 4)
	assert.Equal(t, PercentChange24h, overview.Field)
	assert.Equal(t, []string{"BTC"}, symbols(overview.Gainers))
	assert.Equal(t, []string{"ETH"}, symbols(overview.Losers))
	require.NotNil(t, overview.Share)
	assert.Empty(t, overview.ShareError)
	assert.Len(t, overview.Comparison, 3)
}

func TestBuildOverview_UndefinedShare(t *testing.T) {
	listings := []CoinListing{named("Bitcoin", "BTC", null.Float{})}

	overview := BuildOverview(listings, []string{"Bitcoin"}, 5, PercentChange24h)
	assert.Nil(t, overview.Share)
	assert.Contains(t, overview.ShareError, "total market cap is zero")
	assert.Empty(t, overview.Gainers)
}

func TestNewMetricCard(t *testing.T) {
	card := NewMetricCard(CoinListing{
		Name:             "Bitcoin",
		Symbol:           "BTC",
		Price:            null.FloatFrom(64123.456789),
		MarketCap:        null.FloatFrom(1_260_000_000_000),
		Volume24h:        null.FloatFrom(31_500_000_000),
		PercentChange24h: null.FloatFrom(-1.5),
		PercentChange30d: null.FloatFrom(0),
	})

	assert.Equal(t, "https://s2.coinmarketcap.com/static/img/coins/32x32/btc.png", card.Icon)
	assert.Equal(t, "$64123.4568", card.Price)
	assert.Equal(t, "-1.50%", card.Delta24h)
	assert.Equal(t, "$1.26T", card.MarketCap)
	assert.Equal(t, "$31.50B", card.Volume24h)
	assert.Equal(t, "N/A", card.Changes[string(PercentChange1h)])
	assert.Equal(t, "gray", card.Colors[string(PercentChange1h)])
	assert.Equal(t, "#EF4444", card.Colors[string(PercentChange24h)])
	assert.Equal(t, "0.00%", card.Changes[string(PercentChange30d)])
}

func TestNewMetricCard_KeepsImage(t *testing.T) {
	card := NewMetricCard(CoinListing{Symbol: "ETH", Image: "https://example.com/eth.png"})
	assert.Equal(t, "https://example.com/eth.png", card.Icon)
	assert.Equal(t, "N/A", card.Price)
	assert.Empty(t, card.Delta24h)
}
