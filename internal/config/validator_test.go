package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	customizererrors "github.com/alexisbeaulieu97/customizer/pkg/errors"
)

func TestGetValidator(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestValidateConfigDefaults(t *testing.T) {
	require.NoError(t, ValidateConfig(Default()))
}

func TestValidateConfigNil(t *testing.T) {
	var validationErr *customizererrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestValidateConfigFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "theme id with spaces", mutate: func(c *Config) { c.Theme.Default = "Dark Mode" }, field: "theme.default"},
		{name: "missing theme", mutate: func(c *Config) { c.Theme.Default = "" }, field: "theme.default"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "not a locale" }, field: "locale"},
		{name: "route without hash", mutate: func(c *Config) { c.Route = "settings" }, field: "route"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, field: "log.level"},
		{name: "memory with path", mutate: func(c *Config) { c.Store.Backend = "memory"; c.Store.Path = "/tmp/x" }, field: "store.path"},
		{name: "long user", mutate: func(c *Config) { c.Session.User = string(make([]byte, 101)) }, field: "session.user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			var validationErr *customizererrors.ValidationError
			require.ErrorAs(t, ValidateConfig(cfg), &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestThemeIDValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		id   string
		want bool
	}{
		{"dark", true},
		{"high-contrast", true},
		{"solar_2", true},
		{"", false},
		{"-dark", false},
		{"Dark", false},
	}
	for _, tt := range tests {
		err := v.Var(tt.id, "theme_id")
		require.Equal(t, tt.want, err == nil, tt.id)
	}
}

func TestLocaleValidation(t *testing.T) {
	v := GetValidator()
	require.NoError(t, v.Var("en", "locale"))
	require.NoError(t, v.Var("ru-RU", "locale"))
	require.Error(t, v.Var("english please", "locale"))
}
