// internal/workers/intake/create-requisition/config.go
package createrequisition

import "time"

type Config struct {
	Timeout time.Duration

	// ValidateOutput, when set, checks the completed payload against the
	// activity registry's output schema before the job is completed.
	ValidateOutput func(output interface{}) error
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
