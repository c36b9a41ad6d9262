package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"photoprint-backend/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "chatty", want: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		logger, err := logging.New(tt.in)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.want), tt.in)
		assert.False(t, logger.Core().Enabled(tt.want-1), tt.in)
	}
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}
