package coingecko_markets

import (
	"strconv"
	"strings"
)

// NormalizeListings reshapes raw provider records into the listings payload.
// The quote block is keyed by the uppercase quote currency.
func NormalizeListings(raw []RawMarket, currency string) ListingsPayload {
	quoteKey := strings.ToUpper(currency)
	records := make([]ListingRecord, 0, len(raw))

	for _, coin := range raw {
		records = append(records, ListingRecord{
			ID:      coin.ID,
			Name:    coin.Name,
			Symbol:  strings.ToUpper(coin.Symbol),
			Slug:    coin.ID,
			CMCRank: coin.MarketCapRank,
			Image:   coin.Image,
			Quote: map[string]Quote{
				quoteKey: {
					Price:            coin.CurrentPrice,
					MarketCap:        coin.MarketCap,
					Volume24h:        coin.TotalVolume,
					PercentChange1h:  coin.PriceChange1h,
					PercentChange24h: coin.PriceChange24h,
					PercentChange7d:  coin.PriceChange7d,
					PercentChange30d: coin.PriceChange30d,
					LastUpdated:      coin.LastUpdated,
				},
			},
		})
	}

	return ListingsPayload{Data: records, Currency: quoteKey}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
