package utils

import "os"

// GetEnvString reads key from the environment, falling back to defaultValue
// when it is unset. An empty value counts as set.
func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
