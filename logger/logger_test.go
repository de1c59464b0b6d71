package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/config"
)

func TestSetupWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter(config.LoggingConfig{Level: "debug"}, &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Info().Str("coin_id", "bitcoin").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "bitcoin", entry["coin_id"])
	assert.Equal(t, serviceName, entry["service"])
}

func TestSetupWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter(config.LoggingConfig{Level: "warn"}, &buf)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetupWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter(config.LoggingConfig{Level: "loud"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
