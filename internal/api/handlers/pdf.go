package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dca-backtest/internal/api/models"
	"dca-backtest/internal/ingest"
)

// RunBacktestPDF handles POST /api/v1/backtest/pdf: a multipart upload of a
// parameter document. The extracted (ticker, start, end, amount) run exactly
// like a JSON request.
func (h *BacktestHandler) RunBacktestPDF(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "multipart field 'file' is required",
			},
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := ingest.FromPDFBytes(raw)
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

	includeEvolution := c.Query("include_evolution") == "true"
	c.JSON(http.StatusOK, buildResponse(result, includeEvolution))
}
