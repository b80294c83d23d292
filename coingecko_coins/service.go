package coingecko_coins

import (
	"context"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/scheduler"
)

// Service exposes the symbol index to the service registry
type Service struct {
	cfg       *config.Config
	index     *SymbolIndex
	refresher *scheduler.Scheduler
}

// NewService creates a coins service around a fresh symbol index
func NewService(cfg *config.Config, client IClient) *Service {
	index := NewSymbolIndex(client)
	return &Service{
		cfg:       cfg,
		index:     index,
		refresher: scheduler.New("coins_list_refresh", cfg.CoingeckoCoins.RefreshInterval, index.Rebuild),
	}
}

// Start implements core.Interface. A failed eager build is only logged;
// the index is built again on the first lookup. When a refresh interval is
// configured the coin list is refetched in the background.
func (s *Service) Start(ctx context.Context) error {
	if s.cfg.CoingeckoCoins.BuildOnStart {
		if err := s.index.Rebuild(ctx); err != nil {
			zap.L().Warn("Symbol index not built on start, will retry on first lookup", zap.Error(err))
		}
	}

	s.refresher.Start(ctx, false)
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	s.refresher.Stop()
}

// Resolve returns the coin id for a ticker symbol
func (s *Service) Resolve(ctx context.Context, symbol string) (string, error) {
	return s.index.Resolve(ctx, symbol)
}

// Rebuild refetches the coin list
func (s *Service) Rebuild(ctx context.Context) error {
	return s.index.Rebuild(ctx)
}

// Index returns the underlying symbol index
func (s *Service) Index() *SymbolIndex {
	return s.index
}

// Healthy reports whether the index has been built
func (s *Service) Healthy() bool {
	return s.index.Built()
}

// Size is the number of indexed symbols
func (s *Service) Size() int {
	return s.index.Size()
}
