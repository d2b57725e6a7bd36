package utils

import (
	"log"
	"os"
	"strconv"
	"time"
)

// lookupEnv treats an empty variable the same as an unset one, so a blank
// line in .env falls back to the default.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("Error parsing %s=%q: %v, will use default value", key, value, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) { return value, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration accepts Go duration strings such as "15s" or "1m30s".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return lookupEnv(key, defaultValue, time.ParseDuration)
}
