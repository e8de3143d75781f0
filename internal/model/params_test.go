package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBacktestParams_Validate(t *testing.T) {
	valid := BacktestParams{
		Ticker: "PETR4.SA",
		Start:  day(2020, 1, 1),
		End:    day(2021, 1, 1),
		Amount: 500,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*BacktestParams)
		field  string
	}{
		{"empty ticker", func(p *BacktestParams) { p.Ticker = "  " }, "ticker"},
		{"zero start", func(p *BacktestParams) { p.Start = time.Time{} }, "start"},
		{"zero end", func(p *BacktestParams) { p.End = time.Time{} }, "end"},
		{"start after end", func(p *BacktestParams) { p.Start = day(2022, 1, 1) }, "start"},
		{"zero amount", func(p *BacktestParams) { p.Amount = 0 }, "amount"},
		{"negative amount", func(p *BacktestParams) { p.Amount = -100 }, "amount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)

			var invalid *InvalidParameterError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, tc.field, invalid.Field)
		})
	}

	t.Run("start equal to end is allowed", func(t *testing.T) {
		p := valid
		p.End = p.Start
		require.NoError(t, p.Validate())
	})
}

func TestBacktestParams_Normalized(t *testing.T) {
	p := BacktestParams{
		Ticker: "VOO",
		Start:  time.Date(2020, 1, 1, 14, 30, 0, 0, time.UTC),
		End:    time.Date(2020, 6, 1, 9, 0, 0, 0, time.UTC),
		Amount: 100,
	}
	n := p.Normalized()
	require.Equal(t, day(2020, 1, 1), n.Start)
	require.Equal(t, day(2020, 6, 1), n.End)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay(" 2020-02-03 ")
	require.NoError(t, err)
	require.Equal(t, day(2020, 2, 3), d)

	_, err = ParseDay("03/02/2020")
	require.Error(t, err)
}

func TestPortfolio_ApplyContribution(t *testing.T) {
	p := NewPortfolio()

	res, err := p.ApplyContribution(100, 10)
	require.NoError(t, err)
	require.Equal(t, 10.0, res.UnitsBought)
	require.Equal(t, 100.0, res.Invested)
	require.Equal(t, 100.0, res.Value)

	res, err = p.ApplyContribution(100, 12)
	require.NoError(t, err)
	require.InDelta(t, 100.0/12, res.UnitsBought, 1e-12)
	require.InDelta(t, 10+100.0/12, res.Units, 1e-12)
	require.Equal(t, 200.0, res.Invested)
	require.InDelta(t, (10+100.0/12)*12, res.Value, 1e-9)

	_, err = p.ApplyContribution(100, 0)
	require.Error(t, err)
	_, err = p.ApplyContribution(0, 10)
	require.Error(t, err)
}
