package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath string `validate:"required_unless=ListKinds true"` // hcl/yaml file or directory

	LogFormat       string        `validate:"oneof=text json"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	HealthcheckPort int           `validate:"gte=0,lte=65535"`
	WorkerCount     int           `validate:"gte=0"`
	NodeTimeout     time.Duration `validate:"gte=0"`

	// Strict turns nodes left unexecuted into a run error.
	Strict bool
	// ListKinds prints the node kind catalog instead of running a grid.
	ListKinds bool
	// Plan prints the predicted waves instead of running the grid.
	Plan bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
