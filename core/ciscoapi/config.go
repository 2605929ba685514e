package ciscoapi

import "time"

// Config holds the vendor API endpoints and credentials.
type Config struct {
	// TokenURL is the OAuth2 client-credentials token endpoint.
	TokenURL string `mapstructure:"token_url" default:"https://id.cisco.com/oauth2/default/v1/token"`
	// BaseURL is the root of the Cisco support API.
	BaseURL string `mapstructure:"base_url" default:"https://apix.cisco.com"`
	// ClientID is the OAuth2 client identifier.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth2 client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// TimeoutSeconds bounds every HTTP request to the vendor.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// RequestsPerSecond caps the outgoing EoX request rate.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"5"`
	// Burst is the limiter bucket size.
	Burst int `mapstructure:"burst" default:"1"`
	// BreakerFailures is the number of consecutive failures that opens the circuit.
	BreakerFailures uint32 `mapstructure:"breaker_failures" default:"5"`
	// BreakerCooldownSeconds is how long the circuit stays open before probing.
	BreakerCooldownSeconds int `mapstructure:"breaker_cooldown_seconds" default:"60"`
}

// Timeout returns the request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HasCredentials reports whether both id and secret are set.
func (c Config) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
