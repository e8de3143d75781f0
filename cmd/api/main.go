package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"dca-backtest/internal/api/handlers"
	"dca-backtest/internal/api/middleware"
	"dca-backtest/internal/config"
	"dca-backtest/internal/data"
	"dca-backtest/internal/logger"
)

func main() {
	log := logger.New()
	defer log.Sync()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("DCA_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalw("failed to load config", "path", path, "err", err)
		}
		cfg = loaded
	}

	if os.Getenv("DCA_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	provider := data.NewYahooClient(log)
	backtestHandler := handlers.NewBacktestHandler(provider, cfg, log)
	tickersHandler := handlers.NewTickersHandler(cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/backtest", backtestHandler.RunBacktest)
		api.POST("/backtest/batch", backtestHandler.RunBatch)
		api.POST("/backtest/pdf", backtestHandler.RunBacktestPDF)

		api.GET("/tickers", tickersHandler.ListTickers)
	}

	// Serve a bundled web UI when present.
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Infow("serving static files", "dir", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Infow("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalw("server exited", "err", err)
	}
}
