package keepalive

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrAlreadyStarted = errors.New("keepalive loop already started")
)

// ConfigError is returned by New when the options cannot drive a loop.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// CapabilityError reports a failed cursor operation. The loop never retries it.
type CapabilityError struct {
	Op  string
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("cursor %s failed: %v", e.Op, e.Err)
}

func (e *CapabilityError) Unwrap() error { return e.Err }
