package coingecko_market_chart_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/coingecko_market_chart"
	mock_coingecko_market_chart "github.com/status-im/market-dashboard/coingecko_market_chart/mocks"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/market_errors"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type serviceFixture struct {
	service  *coingecko_market_chart.Service
	client   *mock_coingecko_market_chart.MockAPIClient
	resolver *mock_coingecko_market_chart.MockISymbolResolver
	clock    *testClock
}

func newFixture(t *testing.T) serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_coingecko_market_chart.NewMockAPIClient(ctrl)
	resolver := mock_coingecko_market_chart.NewMockISymbolResolver(ctrl)
	clock := &testClock{now: time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)}
	cacheService := cache.NewServiceWithClock(cache.DefaultCacheConfig(), clock.Now)

	return serviceFixture{
		service:  coingecko_market_chart.NewService(cacheService, config.DefaultConfig(), client, resolver),
		client:   client,
		resolver: resolver,
		clock:    clock,
	}
}

func sampleChart() coingecko_market_chart.MarketChartResponse {
	return coingecko_market_chart.MarketChartResponse{
		Prices:       []coingecko_market_chart.MarketChartData{{1714521600000, 60000}, {1714608000000, 61000}},
		MarketCaps:   []coingecko_market_chart.MarketChartData{{1714521600000, 1.18e12}, {1714608000000, 1.2e12}},
		TotalVolumes: []coingecko_market_chart.MarketChartData{{1714521600000, 2.5e10}, {1714608000000, 2.6e10}},
	}
}

func TestService_HistoryClampsDays(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil)
	f.client.EXPECT().FetchMarketChart(gomock.Any(), coingecko_market_chart.MarketChartParams{
		ID: "bitcoin", Currency: "usd", Days: 365, Interval: "daily",
	}).Return(sampleChart(), nil)

	result, err := f.service.History(context.Background(), "btc", "500")
	require.NoError(t, err)

	assert.Equal(t, "BTC", result.Symbol)
	assert.Equal(t, 365, result.Days)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "365")
	assert.Equal(t, cache.StatusMiss, result.CacheStatus)
	assert.Len(t, result.Payload.Data["BTC"].Quotes, 2)
}

func TestService_HistoryUnknownSymbol(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "ZZZ").Return("", market_errors.NewSymbolNotResolved("ZZZ"))
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.History(context.Background(), "zzz", "30")
	require.Error(t, err)
	assert.True(t, errors.Is(err, market_errors.ErrSymbolNotResolved))
	assert.Contains(t, err.Error(), "coin id not found")
}

func TestService_HistoryCachedWithinTTL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "ETH").Return("ethereum", nil).Times(2)
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Return(sampleChart(), nil).Times(2)

	result, err := f.service.History(ctx, "eth", "30")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusMiss, result.CacheStatus)

	f.clock.now = f.clock.now.Add(59 * time.Second)
	result, err = f.service.History(ctx, "ETH", "30")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusHit, result.CacheStatus)

	f.clock.now = f.clock.now.Add(2 * time.Second)
	result, err = f.service.History(ctx, "eth", "30")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusMiss, result.CacheStatus)
}

func TestService_HistoryCacheHitSkipsResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil).Times(1)
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Return(sampleChart(), nil).Times(1)

	_, err := f.service.History(ctx, "BTC", "7")
	require.NoError(t, err)
	_, err = f.service.History(ctx, "BTC", "7")
	require.NoError(t, err)
}

func TestService_HistoryDaysAreSeparateEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil).Times(2)
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Return(sampleChart(), nil).Times(2)

	_, err := f.service.History(ctx, "BTC", "7")
	require.NoError(t, err)
	_, err = f.service.History(ctx, "BTC", "30")
	require.NoError(t, err)
}

func TestService_HistoryFailureIsNotCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil).Times(2)
	gomock.InOrder(
		f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Return(coingecko_market_chart.MarketChartResponse{}, market_errors.NewNetworkFailure(context.DeadlineExceeded)),
		f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).Return(sampleChart(), nil),
	)

	_, err := f.service.History(ctx, "BTC", "30")
	require.Error(t, err)
	assert.Equal(t, market_errors.NetworkFailure, market_errors.KindOf(err))

	result, err := f.service.History(ctx, "BTC", "30")
	require.NoError(t, err)
	assert.Equal(t, cache.StatusMiss, result.CacheStatus)
}

func TestService_HistoryNonNumericDays(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil)
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params coingecko_market_chart.MarketChartParams) (coingecko_market_chart.MarketChartResponse, error) {
			assert.Equal(t, 30, params.Days)
			return sampleChart(), nil
		})

	result, err := f.service.History(context.Background(), "BTC", "a week")
	require.NoError(t, err)
	assert.Equal(t, 30, result.Days)
	assert.Len(t, result.Warnings, 1)
}

func TestService_HistoryEmptySymbol(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.History(context.Background(), "  ", "30")
	require.Error(t, err)
	assert.Equal(t, market_errors.InvalidParameter, market_errors.KindOf(err))
}

func TestService_StartRequiresDependencies(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.service.Start(context.Background()))

	missing := coingecko_market_chart.NewService(nil, config.DefaultConfig(), nil, nil)
	assert.Error(t, missing.Start(context.Background()))

	f.client.EXPECT().Healthy().Return(true)
	assert.True(t, f.service.Healthy())
}

func TestService_HistoryCallerCancelDoesNotFailSharedFetch(t *testing.T) {
	f := newFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.resolver.EXPECT().Resolve(gomock.Any(), "BTC").Return("bitcoin", nil).AnyTimes()
	f.client.EXPECT().FetchMarketChart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ coingecko_market_chart.MarketChartParams) (coingecko_market_chart.MarketChartResponse, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			select {
			case <-release:
				return sampleChart(), nil
			case <-ctx.Done():
				return coingecko_market_chart.MarketChartResponse{}, ctx.Err()
			}
		}).AnyTimes()

	ctx1, cancel1 := context.WithCancel(context.Background())
	defer cancel1()

	firstErr := make(chan error, 1)
	go func() {
		_, err := f.service.History(ctx1, "BTC", "30")
		firstErr <- err
	}()
	<-started

	type outcome struct {
		result coingecko_market_chart.HistoryResult
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		result, err := f.service.History(context.Background(), "BTC", "30")
		second <- outcome{result, err}
	}()
	// let the second caller join the in-flight fetch
	time.Sleep(50 * time.Millisecond)

	cancel1()
	err := <-firstErr
	require.Error(t, err)
	assert.Equal(t, market_errors.NetworkFailure, market_errors.KindOf(err))

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Len(t, got.result.Payload.Data["BTC"].Quotes, 2)
}
