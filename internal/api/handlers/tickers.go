package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"dca-backtest/internal/api/models"
	"dca-backtest/internal/config"
	"dca-backtest/internal/data"
)

// TickersHandler serves the instrument catalog.
type TickersHandler struct {
	cfg *config.Config
}

func NewTickersHandler(cfg *config.Config) *TickersHandler {
	return &TickersHandler{cfg: cfg}
}

// ListTickers handles GET /api/v1/tickers.
func (h *TickersHandler) ListTickers(c *gin.Context) {
	list, err := h.loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TICKERS_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	tickers := make([]models.TickerInfo, len(list.Tickers))
	for i, t := range list.Tickers {
		tickers[i] = models.TickerInfo{
			Symbol:   t.Symbol,
			Name:     t.Name,
			Exchange: t.Exchange,
			Currency: t.Currency,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tickers":    tickers,
		"updated_at": list.UpdatedAt,
		"count":      len(tickers),
	})
}

func (h *TickersHandler) loadCatalog() (*data.TickerList, error) {
	path := data.GetDefaultTickersPath()
	if h.cfg != nil && h.cfg.TickersFile != "" {
		path = h.cfg.TickersFile
	}

	list, err := data.LoadTickers(path)
	if err != nil {
		// A missing catalog file is not an error; fall back to the
		// built-in list.
		if errors.Is(err, os.ErrNotExist) {
			return data.DefaultTickers(), nil
		}
		return nil, err
	}
	return list, nil
}
