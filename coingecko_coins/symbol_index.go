package coingecko_coins

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/market_errors"
	"github.com/status-im/market-dashboard/metrics"
)

// SymbolIndex maps uppercase ticker symbols to provider coin ids.
// It is built lazily on first lookup and kept until Rebuild is called.
// A failed build is not remembered, so the next lookup tries again.
type SymbolIndex struct {
	client IClient

	mu    sync.RWMutex
	ids   map[string]string
	built bool
}

// NewSymbolIndex creates an empty index backed by client
func NewSymbolIndex(client IClient) *SymbolIndex {
	return &SymbolIndex{client: client}
}

// Resolve returns the coin id for symbol, building the index if needed.
// An unknown symbol gives SymbolNotResolved; a failed build gives the fetch error.
func (idx *SymbolIndex) Resolve(ctx context.Context, symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if err := idx.ensureBuilt(ctx); err != nil {
		return "", err
	}

	idx.mu.RLock()
	id, ok := idx.ids[symbol]
	idx.mu.RUnlock()

	if !ok {
		return "", market_errors.NewSymbolNotResolved(symbol)
	}
	return id, nil
}

// Rebuild refetches the coin list and replaces the index.
// On failure the previous index is kept.
func (idx *SymbolIndex) Rebuild(ctx context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.buildLocked(ctx)
}

// Size returns the number of indexed symbols
func (idx *SymbolIndex) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// Built reports whether a build has succeeded
func (idx *SymbolIndex) Built() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.built
}

func (idx *SymbolIndex) ensureBuilt(ctx context.Context) error {
	idx.mu.RLock()
	built := idx.built
	idx.mu.RUnlock()
	if built {
		return nil
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.built {
		return nil
	}
	return idx.buildLocked(ctx)
}

func (idx *SymbolIndex) buildLocked(ctx context.Context) error {
	coins, err := idx.client.FetchCoinsList(ctx)
	if err != nil {
		zap.L().Error("Failed to build symbol index", zap.Error(err))
		return fmt.Errorf("build symbol index: %w", err)
	}

	ids := make(map[string]string, len(coins))
	collisions := 0
	for _, coin := range coins {
		symbol := strings.ToUpper(coin.Symbol)
		if symbol == "" || coin.ID == "" {
			continue
		}
		if _, exists := ids[symbol]; exists {
			collisions++
			continue
		}
		ids[symbol] = coin.ID
	}

	idx.ids = ids
	idx.built = true
	metrics.RecordSymbolIndexSize(len(ids))

	zap.L().Info("Symbol index built",
		zap.Int("symbols", len(ids)),
		zap.Int("collisions_ignored", collisions))

	return nil
}
