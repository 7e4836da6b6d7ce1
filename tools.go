//go:build tools

package tools

// Tracks CLI tool dependencies. Not compiled into the binary.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
