package dashboard

import (
	"github.com/status-im/market-dashboard/market_errors"
)

// MarketShare splits the aggregate market cap of listings into BTC, ETH and altcoins.
// Null caps count as zero. Rows sharing the BTC or ETH symbol are summed.
func MarketShare(listings []CoinListing) (Share, error) {
	var total, btc, eth float64
	for _, listing := range listings {
		marketCap := listing.MarketCap.ValueOrZero()
		total += marketCap
		switch listing.Symbol {
		case "BTC":
			btc += marketCap
		case "ETH":
			eth += marketCap
		}
	}

	if total == 0 {
		return Share{}, market_errors.NewDivisionUndefined("total market cap is zero")
	}

	altcoins := total - btc - eth
	return Share{
		Bitcoin:  btc / total * 100,
		Ethereum: eth / total * 100,
		Altcoins: altcoins / total * 100,
	}, nil
}
