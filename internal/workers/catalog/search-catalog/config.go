// internal/workers/catalog/search-catalog/config.go
package searchcatalog

import "time"

type Config struct {
	Timeout time.Duration
	// SearchDelay simulates backend catalog latency. Zero disables it.
	SearchDelay time.Duration
	MaxResults  int

	// ValidateOutput, when set, checks the completed payload against the
	// activity registry's output schema before the job is completed.
	ValidateOutput func(output interface{}) error
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     30 * time.Second,
		SearchDelay: 4 * time.Second,
		MaxResults:  8,
	}
}
