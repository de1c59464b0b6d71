package coingecko_common

import (
	"github.com/rs/zerolog/log"

	"github.com/status-im/market-dashboard/config"
)

// GetApiBaseUrl returns the API base URL for the key type, honouring overrides
func GetApiBaseUrl(cfg config.CoingeckoConfig, keyType KeyType) string {
	if keyType == ProKey {
		if cfg.OverrideProURL != "" {
			log.Debug().Str("url", cfg.OverrideProURL).Msg("CoinGecko: using overridden Pro API URL")
			return cfg.OverrideProURL
		}
		return COINGECKO_PRO_URL
	}
	if cfg.OverridePublicURL != "" {
		log.Debug().Str("url", cfg.OverridePublicURL).Msg("CoinGecko: using overridden public API URL")
		return cfg.OverridePublicURL
	}
	return COINGECKO_PUBLIC_URL
}
