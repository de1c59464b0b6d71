package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnvFile exports the variables of a dotenv file, typically holding the
// CoinGecko API key. Variables already set in the environment win.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", path).Msg("No env file, using process environment")
		return nil
	case err != nil:
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("Env file loaded")
	return nil
}
