package config

import (
	"fmt"
	"strings"
)

// PresetConflictError is returned when more than one trimming preset was
// requested.
type PresetConflictError struct {
	Presets []Preset
}

func (e *PresetConflictError) Error() string {
	names := make([]string, 0, len(e.Presets))
	for _, p := range e.Presets {
		names = append(names, p.String())
	}
	return fmt.Sprintf("trimming presets are mutually exclusive, got %s", strings.Join(names, " and "))
}

// ValidationError reports an option value the pipeline cannot run with.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SerializationError wraps failures to render, parse, or persist a
// configuration.
type SerializationError struct {
	Op   string // marshal, unmarshal, read, write
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SerializationError) Unwrap() error { return e.Err }
