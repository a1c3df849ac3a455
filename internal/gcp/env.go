package gcp

import "os"

// GetEnv is a helper to read an environment variable or return a default value.
// A variable that is set but empty counts as unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
