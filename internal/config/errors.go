package config

import (
	"errors"
)

var (
	// ErrInvalidConfig error if the resolved configuration fails validation,
	// e.g. output.count below 1 or an unknown output.charset name.
	ErrInvalidConfig = errors.New("invalid config")
)
