package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("uses logger from ctx", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core).Sugar())

		FromContext(ctx).Infow("analyzed", "holdings", 3)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "analyzed", entry.Message)
		require.Equal(t, int64(3), entry.ContextMap()["holdings"])
	})

	t.Run("falls back to global", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
