// Package logging provides structured logging using bolt.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (json or console).
	Format string `yaml:"format"`

	// Output is the output destination. Nil means stderr.
	Output io.Writer `yaml:"-"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

var levels = map[string]bolt.Level{
	"trace": bolt.TRACE,
	"debug": bolt.DEBUG,
	"info":  bolt.INFO,
	"warn":  bolt.WARN,
	"error": bolt.ERROR,
}

// parseLevel converts a string level to bolt.Level, defaulting to INFO.
func parseLevel(s string) bolt.Level {
	if l, ok := levels[strings.ToLower(s)]; ok {
		return l
	}
	return bolt.INFO
}

// Validate rejects unknown levels and formats. Empty values fall back to defaults.
func (c Config) Validate() error {
	if _, ok := levels[strings.ToLower(c.Level)]; c.Level != "" && !ok {
		return fmt.Errorf("logging: unknown level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Format)
	}
	return nil
}

// New builds a logger from config.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}

	return bolt.New(handler).SetLevel(parseLevel(config.Level))
}

// Discard returns a logger that drops everything below ERROR into io.Discard.
func Discard() *bolt.Logger {
	return bolt.New(bolt.NewJSONHandler(io.Discard)).SetLevel(bolt.ERROR)
}

// With applies fields to an event.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}
