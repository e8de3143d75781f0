package data

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"go.uber.org/zap"

	"dca-backtest/internal/model"
)

// YahooClient fetches historical daily closing prices from Yahoo Finance.
type YahooClient struct {
	log *zap.SugaredLogger
}

func NewYahooClient(log *zap.SugaredLogger) *YahooClient {
	if log == nil {
		log = zap.S()
	}
	return &YahooClient{log: log}
}

// DailyCloses fetches the daily close history for symbol over the inclusive
// window [start, end] and cleans it into a PriceSeries.
//
// Returns model.ErrEmptyData when the provider has nothing usable for the
// symbol/range.
func (c *YahooClient) DailyCloses(symbol string, start, end time.Time) (*model.PriceSeries, error) {
	if symbol == "" {
		return nil, &model.InvalidParameterError{Field: "ticker", Reason: "must not be empty"}
	}
	start = model.Day(start)
	end = model.Day(end)
	if start.After(end) {
		return nil, &model.InvalidParameterError{Field: "start", Reason: "must not be after end"}
	}

	if cache := GetCache(); cache != nil {
		key := cacheKey(symbol, start, end)
		if cached, found := cache.Get(key); found {
			c.log.Infow("price cache hit",
				"symbol", symbol,
				"start", start.Format(model.DayLayout),
				"end", end.Format(model.DayLayout),
				"points", cached.Len())
			return cached, nil
		}
	}

	// The chart endpoint treats the end bound as exclusive; pad by a day so
	// a close on the end date itself is included.
	fetchEnd := end.AddDate(0, 0, 1)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&fetchEnd),
		Interval: datetime.OneDay,
	}

	began := time.Now()
	iter := chart.Get(params)

	points := []model.PricePoint{}
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, model.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: bar.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		c.log.Errorw("price fetch failed",
			"symbol", symbol, "err", err, "duration", time.Since(began))
		return nil, fmt.Errorf("fetch prices for %s: %w", symbol, err)
	}

	series, err := model.NewPriceSeries(points)
	if err != nil {
		return nil, fmt.Errorf("%s %s..%s: %w",
			symbol, start.Format(model.DayLayout), end.Format(model.DayLayout), err)
	}
	series = series.Window(start, end)
	if series.Len() == 0 {
		return nil, fmt.Errorf("%s %s..%s: %w",
			symbol, start.Format(model.DayLayout), end.Format(model.DayLayout), model.ErrEmptyData)
	}

	c.log.Infow("price fetch ok",
		"symbol", symbol,
		"start", start.Format(model.DayLayout),
		"end", end.Format(model.DayLayout),
		"points", series.Len(),
		"duration", time.Since(began))

	if cache := GetCache(); cache != nil {
		cache.Set(cacheKey(symbol, start, end), series)
	}

	return series, nil
}
