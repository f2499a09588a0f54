package config

import (
	customizererrors "github.com/alexisbeaulieu97/customizer/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return customizererrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Store.Backend == "memory" && cfg.Store.Path != "" {
		return customizererrors.NewValidationError("store.path", "memory backend does not take a path", nil)
	}

	return nil
}
