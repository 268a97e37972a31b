package server

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config configures the HTTP front.
type Config struct {
	Addr     string `validate:"required"`
	Capacity int    `validate:"gte=1"`
	Lazy     bool   // use the growable buffer instead of a preallocated ring

	// MaxWait caps the timeout a client may request. Zero means no cap.
	MaxWait         time.Duration `validate:"gte=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// DefaultConfig listens on :8080 with a 16-item queue and a 30s wait cap.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Capacity:        16,
		MaxWait:         30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

var validate = validator.New()

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "server: invalid config")
	}
	return nil
}
