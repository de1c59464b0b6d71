package coingecko_common

import "github.com/status-im/market-dashboard/config"

// KeyType defines the API key type
type KeyType int

const (
	// NoKey means no API key is available
	NoKey KeyType = iota
	// ProKey means using a Pro API key
	ProKey
	// DemoKey means using a demo API key
	DemoKey
)

// APIKey represents an API key with its type
type APIKey struct {
	Key  string
	Type KeyType
}

// APIKeyFromConfig builds the key used for every request.
// An empty key yields NoKey so no header is sent at all.
func APIKeyFromConfig(cfg config.CoingeckoConfig) APIKey {
	if cfg.APIKey == "" {
		return APIKey{Type: NoKey}
	}
	if cfg.APIKeyType == config.APIKeyTypePro {
		return APIKey{Key: cfg.APIKey, Type: ProKey}
	}
	return APIKey{Key: cfg.APIKey, Type: DemoKey}
}

// HeaderName returns the header that carries this key, or "" for NoKey
func (k APIKey) HeaderName() string {
	switch k.Type {
	case ProKey:
		return PRO_API_KEY_HEADER
	case DemoKey:
		return DEMO_API_KEY_HEADER
	}
	return ""
}

func (t KeyType) String() string {
	switch t {
	case ProKey:
		return "pro"
	case DemoKey:
		return "demo"
	case NoKey:
		return "none"
	}
	return "unknown"
}
