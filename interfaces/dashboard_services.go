package interfaces

import (
	"context"

	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/coingecko_markets"
)

//go:generate mockgen -destination=mocks/dashboard_services.go . IListingsService,IHistoryService,ISymbolService

// IListingsService serves ranked market listings
type IListingsService interface {
	// Listings returns the normalized listings payload, from cache when fresh
	Listings(ctx context.Context, params coingecko_markets.ListingsParams) (coingecko_markets.ListingsResult, error)
	Healthy() bool
}

// IHistoryService serves daily price history for one symbol
type IHistoryService interface {
	// History returns the series of symbol; days is the raw query value and is corrected, not rejected
	History(ctx context.Context, symbol, days string) (coingecko_market_chart.HistoryResult, error)
	Healthy() bool
}

// ISymbolService owns the symbol to coin id index
type ISymbolService interface {
	// Rebuild refetches the coin list and replaces the index on success
	Rebuild(ctx context.Context) error
	// Size is the number of indexed symbols
	Size() int
	Healthy() bool
}
