package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hareramrai/missing-validators/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, logger.KeyError, attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestMessages(t *testing.T) {
	attr := logger.Messages([]string{"is not a valid URL"})
	require.Equal(t, logger.KeyMessages, attr.Key)
	assert.Equal(t, []string{"is not a valid URL"}, attr.Value.Any())

	assert.True(t, logger.Messages(nil).Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(1500 * time.Microsecond)
	require.Equal(t, logger.KeyDuration, attr.Key)
	assert.Equal(t, "1.5ms", attr.Value.String())
}

func TestStringAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want string
	}{
		{logger.Attribute("website"), logger.KeyAttribute, "website"},
		{logger.Locale("de"), logger.KeyLocale, "de"},
		{logger.Path("rules.yaml"), logger.KeyPath, "rules.yaml"},
		{logger.Component("validate"), logger.KeyComponent, "validate"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}
