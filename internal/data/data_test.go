package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dca-backtest/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSeries(t *testing.T) *model.PriceSeries {
	t.Helper()
	s, err := model.NewPriceSeries([]model.PricePoint{
		{Date: day(2020, 1, 1), Close: 10},
		{Date: day(2020, 1, 2), Close: 11},
	})
	require.NoError(t, err)
	return s
}

func TestPriceHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PETR4.SA.json")

	saved := &PriceHistory{
		Symbol:    "PETR4.SA",
		UpdatedAt: day(2020, 1, 3),
		Points: []model.PricePoint{
			{Date: day(2020, 1, 2), Close: 11},
			{Date: day(2020, 1, 1), Close: 10},
			{Date: day(2020, 1, 1), Close: 0}, // dropped by Series()
		},
	}
	require.NoError(t, SavePriceHistory(path, saved))

	loaded, err := LoadPriceHistory(path)
	require.NoError(t, err)
	require.Equal(t, "PETR4.SA", loaded.Symbol)
	require.Len(t, loaded.Points, 3)

	series, err := loaded.Series()
	require.NoError(t, err)
	require.Equal(t, 2, series.Len())
	require.Equal(t, day(2020, 1, 1), series.First().Date)
}

func TestLoadPriceHistory_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPriceHistory(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadPriceHistory(path)
		require.Error(t, err)
	})
}

func TestSeriesCache(t *testing.T) {
	c := &SeriesCache{store: make(map[string]*CacheEntry), ttl: time.Hour}
	key := cacheKey("PETR4.SA", day(2020, 1, 1), day(2020, 1, 2))
	series := testSeries(t)

	t.Run("miss then hit", func(t *testing.T) {
		_, ok := c.Get(key)
		require.False(t, ok)

		c.Set(key, series)
		got, ok := c.Get(key)
		require.True(t, ok)
		require.Same(t, series, got)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		expired := &SeriesCache{store: make(map[string]*CacheEntry), ttl: -time.Minute}
		expired.Set(key, series)
		_, ok := expired.Get(key)
		require.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		c.Clear()
		_, ok := c.Get(key)
		require.False(t, ok)
	})

	t.Run("nil cache is inert", func(t *testing.T) {
		var nilCache *SeriesCache
		nilCache.Set(key, series)
		_, ok := nilCache.Get(key)
		require.False(t, ok)
	})
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("PETR4.SA", day(2020, 1, 1), day(2020, 1, 2))
	require.Equal(t, a, cacheKey("PETR4.SA", day(2020, 1, 1), day(2020, 1, 2)))
	require.NotEqual(t, a, cacheKey("VALE3.SA", day(2020, 1, 1), day(2020, 1, 2)))
	require.NotEqual(t, a, cacheKey("PETR4.SA", day(2020, 1, 1), day(2020, 1, 3)))
}

func TestGetCache_Disabled(t *testing.T) {
	t.Setenv("DCA_PRICE_CACHE", "false")
	require.Nil(t, GetCache())
}

func TestTickers(t *testing.T) {
	t.Run("default catalog", func(t *testing.T) {
		list := DefaultTickers()
		require.NotEmpty(t, list.Tickers)
		for _, ticker := range list.Tickers {
			require.NotEmpty(t, ticker.Symbol)
			require.NotEmpty(t, ticker.Currency)
		}
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickers.json")
		content := `{"updated_at":"2024-01-01T00:00:00Z","tickers":[{"symbol":"VOO","name":"Vanguard S&P 500 ETF","exchange":"NYSE","currency":"USD"}]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		list, err := LoadTickers(path)
		require.NoError(t, err)
		require.Len(t, list.Tickers, 1)
		require.Equal(t, "VOO", list.Tickers[0].Symbol)
	})

	t.Run("path override", func(t *testing.T) {
		t.Setenv("TICKERS_FILE", "/tmp/custom.json")
		require.Equal(t, "/tmp/custom.json", GetDefaultTickersPath())
	})
}
