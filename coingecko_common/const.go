package coingecko_common

const (
	// Base URL for public API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"
	// Base URL for Pro API
	COINGECKO_PRO_URL = "https://pro-api.coingecko.com"

	// Header names carrying the API key, by key type
	DEMO_API_KEY_HEADER = "x-cg-demo-api-key"
	PRO_API_KEY_HEADER  = "x-cg-pro-api-key"

	// The dashboard only ever quotes USD
	DEFAULT_CURRENCY = "usd"
)
