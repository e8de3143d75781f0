package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process-wide sugared logger. DCA_ENV=dev switches to the
// human-readable development config.
func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("DCA_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

func init() {
	zap.ReplaceGlobals(New().Desugar())
}
