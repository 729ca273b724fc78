// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.

package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Validate returns the first validation error, or nil on success.  cmd/app
// calls it again after applying flag overrides.
func Validate(c *Config) error {
	return v.Struct(c)
}
