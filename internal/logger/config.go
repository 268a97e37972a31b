package logger

// Config configures the process logger.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `validate:"omitempty,oneof=debug info warn error"`

	// FileName enables a JSON file sink rotated by size. Empty disables it.
	FileName   string
	MaxSize    int `validate:"gte=0"` // megabytes
	MaxBackups int `validate:"gte=0"`
	MaxAge     int `validate:"gte=0"` // days
	Compress   bool
}

// DefaultConfig logs at info to stderr only.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}
}
