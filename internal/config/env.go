package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envString returns the trimmed value of key, or fallback when it is blank.
func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// envChoice is envString lowercased, for enum-like keys such as DB_DRIVER.
func envChoice(key, fallback string) string {
	return strings.ToLower(envString(key, fallback))
}

// The typed readers below report malformed values instead of silently
// using the fallback, so a typo in SESSION_TTL fails startup.

func envInt(key string, fallback int) (int, error) {
	value := envString(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := envString(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", key, value)
	}
	return d, nil
}

func envBool(key string, fallback bool) (bool, error) {
	value := envString(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return b, nil
}
