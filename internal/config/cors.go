package config

import (
	"fmt"
	"strings"
)

// CORSConfig holds cross-origin resource sharing configuration.
type CORSConfig struct {
	// AllowedOrigins is the list of origins allowed to reach the API.
	AllowedOrigins []string
	// AllowCredentials indicates whether cookies/credentials may be sent.
	AllowCredentials bool
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
// CORS_ALLOWED_ORIGINS is a comma-separated list; "*" allows any origin.
func LoadCORSConfigFromEnv() CORSConfig {
	raw := GetEnv("CORS_ALLOWED_ORIGINS", "*")

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return CORSConfig{
		AllowedOrigins:   origins,
		AllowCredentials: GetEnvBool("CORS_ALLOW_CREDENTIALS", false),
	}
}

// AllowAllOrigins returns true if any origin is accepted.
func (c CORSConfig) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Validate validates CORS configuration.
func (c CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("AllowedOrigins must not be empty")
	}
	if c.AllowAllOrigins() && c.AllowCredentials {
		return fmt.Errorf("credentials cannot be allowed together with wildcard origin")
	}
	return nil
}
