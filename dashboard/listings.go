package dashboard

import (
	"sort"
	"time"

	"github.com/guregu/null/v6"

	"github.com/status-im/market-dashboard/coingecko_markets"
	"github.com/status-im/market-dashboard/market_errors"
)

const defaultQuoteCurrency = "USD"

// PrepareListings flattens the quote block of every record and ranks the rows by
// market cap, descending. Null market caps go last; equal caps keep payload order.
func PrepareListings(payload coingecko_markets.ListingsPayload) ([]CoinListing, error) {
	currency := payload.Currency
	if currency == "" {
		currency = defaultQuoteCurrency
	}

	listings := make([]CoinListing, 0, len(payload.Data))
	for _, record := range payload.Data {
		quote, ok := record.Quote[currency]
		if !ok {
			return nil, market_errors.NewMalformedPayload("missing %s quote for %s", currency, record.ID)
		}

		var lastUpdated time.Time
		if quote.LastUpdated != "" {
			parsed, err := time.Parse(time.RFC3339, quote.LastUpdated)
			if err != nil {
				return nil, market_errors.NewMalformedPayload("invalid last_updated %q for %s", quote.LastUpdated, record.ID)
			}
			lastUpdated = parsed
		}

		change30d := quote.PercentChange30d
		if !change30d.Valid {
			change30d = null.FloatFrom(0)
		}

		listings = append(listings, CoinListing{
			ID:               record.ID,
			Name:             record.Name,
			Symbol:           record.Symbol,
			Slug:             record.Slug,
			Rank:             record.CMCRank,
			Image:            record.Image,
			Price:            quote.Price,
			MarketCap:        quote.MarketCap,
			Volume24h:        quote.Volume24h,
			PercentChange1h:  quote.PercentChange1h,
			PercentChange24h: quote.PercentChange24h,
			PercentChange7d:  quote.PercentChange7d,
			PercentChange30d: change30d,
			LastUpdated:      lastUpdated,
		})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return nullsLastDesc(listings[i].MarketCap, listings[j].MarketCap)
	})

	return listings, nil
}

func nullsLastDesc(a, b null.Float) bool {
	if !a.Valid {
		return false
	}
	if !b.Valid {
		return true
	}
	return a.Float64 > b.Float64
}
