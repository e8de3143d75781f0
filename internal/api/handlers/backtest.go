package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dca-backtest/internal/analysis"
	"dca-backtest/internal/api/models"
	"dca-backtest/internal/backtest"
	"dca-backtest/internal/config"
	"dca-backtest/internal/ingest"
	"dca-backtest/internal/model"
)

// BacktestHandler handles backtest-related requests.
type BacktestHandler struct {
	provider analysis.SeriesProvider
	engine   *backtest.Engine
	cfg      *config.Config
	log      *zap.SugaredLogger
}

// NewBacktestHandler creates a new backtest handler.
func NewBacktestHandler(provider analysis.SeriesProvider, cfg *config.Config, log *zap.SugaredLogger) *BacktestHandler {
	if log == nil {
		log = zap.S()
	}
	return &BacktestHandler{
		provider: provider,
		engine:   backtest.New(),
		cfg:      cfg,
		log:      log,
	}
}

// RunBacktest handles POST /api/v1/backtest.
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := requestParams(req)
	if err != nil {
		writeError(c, err)
		return
	}

	series, err := h.provider.DailyCloses(params.Ticker, params.Start, params.End)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.engine.Run(series, params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(result, req.Options.IncludeEvolution))
}

// RunBatch handles POST /api/v1/backtest/batch. Rows are processed
// sequentially; a failed row is reported in place and never aborts the
// batch.
func (h *BacktestHandler) RunBatch(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if len(req.Rows) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "rows must not be empty",
			},
		})
		return
	}

	rows := make([]ingest.BatchRow, len(req.Rows))
	for i, r := range req.Rows {
		rows[i] = ingest.BatchRow{
			Ticker:        r.Ticker,
			MonthlyAmount: r.Amount,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
		}
	}

	results, totals := analysis.RunBatch(
		h.provider, rows, h.cfg.Defaults.StartDate, h.cfg.Defaults.EndDate, h.log)

	resp := models.BatchResponse{
		Status: "completed",
		Totals: models.BatchTotals{
			Rows:             totals.Rows,
			Succeeded:        totals.Succeeded,
			Failed:           totals.Failed,
			TotalFinalValue:  totals.TotalFinalValue,
			TotalInvested:    totals.TotalInvested,
			TotalGrossProfit: totals.TotalGrossProfit,
		},
	}
	for _, r := range results {
		row := models.BatchRowResult{Ticker: r.Row.Ticker}
		if r.Err != nil {
			detail := errorDetail(r.Err)
			row.Error = &detail
		} else {
			s := summaryResponse(r.Result)
			row.Summary = &s
		}
		resp.Results = append(resp.Results, row)
	}

	c.JSON(http.StatusOK, resp)
}

func requestParams(req models.BacktestRequest) (model.BacktestParams, error) {
	start, err := model.ParseDay(req.StartDate)
	if err != nil {
		return model.BacktestParams{}, &model.InvalidParameterError{
			Field: "start_date", Reason: "expected YYYY-MM-DD",
		}
	}
	end, err := model.ParseDay(req.EndDate)
	if err != nil {
		return model.BacktestParams{}, &model.InvalidParameterError{
			Field: "end_date", Reason: "expected YYYY-MM-DD",
		}
	}

	params := model.BacktestParams{
		Ticker: req.Ticker,
		Start:  start,
		End:    end,
		Amount: req.Amount,
	}
	if err := params.Validate(); err != nil {
		return model.BacktestParams{}, err
	}
	return params.Normalized(), nil
}

func buildResponse(result *backtest.Result, includeEvolution bool) models.BacktestResponse {
	resp := models.BacktestResponse{
		Status:    "completed",
		Ticker:    result.Params.Ticker,
		StartDate: result.Params.Start.Format(model.DayLayout),
		EndDate:   result.Params.End.Format(model.DayLayout),
		Amount:    result.Params.Amount,
		Summary:   summaryResponse(result),
	}

	if includeEvolution {
		resp.Evolution = make([]models.EvolutionRow, len(result.Evolution))
		for i, r := range result.Evolution {
			resp.Evolution[i] = models.EvolutionRow{
				Date:           r.Date.Format(model.DayLayout),
				Close:          r.Close,
				UnitsBought:    r.UnitsBought,
				Units:          r.Units,
				TotalInvested:  r.TotalInvested,
				PortfolioValue: r.PortfolioValue,
			}
		}
	}

	return resp
}

func summaryResponse(result *backtest.Result) models.SummaryResponse {
	return models.SummaryResponse{
		FinalValue:    result.Summary.FinalValue,
		TotalInvested: result.Summary.TotalInvested,
		GrossProfit:   result.Summary.GrossProfit,
		ReturnPct:     result.Summary.ReturnPct,
		Contributions: len(result.Evolution),
	}
}

// errorDetail maps domain failures onto stable API error codes.
func errorDetail(err error) models.ErrorDetail {
	var invalid *model.InvalidParameterError
	switch {
	case errors.As(err, &invalid):
		return models.ErrorDetail{Code: "INVALID_PARAMETER", Message: err.Error()}
	case errors.Is(err, model.ErrEmptyData):
		return models.ErrorDetail{Code: "NO_DATA", Message: err.Error()}
	case errors.Is(err, model.ErrNoContributions):
		return models.ErrorDetail{Code: "NO_CONTRIBUTIONS", Message: err.Error()}
	default:
		return models.ErrorDetail{Code: "DATA_FETCH_ERROR", Message: err.Error()}
	}
}

func writeError(c *gin.Context, err error) {
	detail := errorDetail(err)

	status := http.StatusBadGateway
	switch detail.Code {
	case "INVALID_PARAMETER":
		status = http.StatusBadRequest
	case "NO_DATA":
		status = http.StatusNotFound
	case "NO_CONTRIBUTIONS":
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, models.ErrorResponse{Error: detail})
}
