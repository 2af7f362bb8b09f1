package config

import (
	"github.com/vortex-fintech/phonex/errors"
	"github.com/vortex-fintech/phonex/validator"
)

// Validate checks the configuration. Violations come back as errors.DomainErrors.
func (c *Config) Validate() error {
	if violations := errors.FromFields(validator.Validate(c)); len(violations) > 0 {
		return violations
	}
	return nil
}
