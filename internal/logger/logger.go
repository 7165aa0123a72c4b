package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const EnvKey = "ALIGN_ENV"

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv(EnvKey)) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    EnvKey,
			Type:   zapcore.StringType,
			String: os.Getenv(EnvKey),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey struct{}

func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext falls back to the global logger when ctx carries none
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
			return logger
		}
	}
	return zap.S()
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
