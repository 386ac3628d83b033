//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.LogConfig
		expectedLevel zerolog.Level
	}{
		{"defaults to info", config.LogConfig{}, zerolog.InfoLevel},
		{"debug", config.LogConfig{Level: "debug"}, zerolog.DebugLevel},
		{"pretty warn", config.LogConfig{Level: "warn", Pretty: true}, zerolog.WarnLevel},
		{"error", config.LogConfig{Level: "error"}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { logger.Init("info", false) })

			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
