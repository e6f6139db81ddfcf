// internal/handlers/compare-metric/config.go
package comparemetric

import "time"

// No per-handler settings needed, but struct provided for consistency
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
