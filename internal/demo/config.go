package demo

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Queue implementations selectable by Config.Impl.
const (
	ImplBlocking = "blocking"
	ImplLazy     = "lazy"
	ImplChannel  = "channel"
)

// Config drives one demo run.
type Config struct {
	Capacity  int    `validate:"gte=1"`
	Items     int    `validate:"gte=1"` // per producer
	Producers int    `validate:"gte=1"`
	Consumers int    `validate:"gte=1"`
	Impl      string `validate:"oneof=blocking lazy channel"`

	// Minimum spacing between two operations of the same worker.
	// Zero means no pacing.
	WriteDelay time.Duration `validate:"gte=0"`
	ReadDelay  time.Duration `validate:"gte=0"`
}

// DefaultConfig is the classic two-slot run: one writer pushing 1..5 every
// second and one slower reader popping every 1.5 seconds, so the writer
// ends up parked on a full queue.
func DefaultConfig() Config {
	return Config{
		Capacity:   2,
		Items:      5,
		Producers:  1,
		Consumers:  1,
		Impl:       ImplBlocking,
		WriteDelay: 1000 * time.Millisecond,
		ReadDelay:  1500 * time.Millisecond,
	}
}

var validate = validator.New()

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "demo: invalid config")
	}
	return nil
}

// Total is the number of items pushed and popped over the whole run.
func (c Config) Total() int {
	return c.Producers * c.Items
}
