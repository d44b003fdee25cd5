// Package env reads process environment overrides that sit outside the
// envconfig-managed configuration, like the platform-injected PORT.
package env

import "os"

// Get returns the environment value for key, or fallback when the
// variable is unset or blank.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
