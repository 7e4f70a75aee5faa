package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "src/lang/en.json", cfg.Catalog)
	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, []string{".vue", ".js"}, cfg.Extensions)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "https://weblate.kuma.pet", cfg.ContributeURL)
	assert.False(t, cfg.Strict)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("I18N_CHECK_CATALOG", "frontend/lang/en.yaml")
	t.Setenv("I18N_CHECK_EXTENSIONS", ".ts,.tsx")
	t.Setenv("I18N_CHECK_EXCLUDE", "node_modules,dist")
	t.Setenv("I18N_CHECK_STRICT", "true")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "frontend/lang/en.yaml", cfg.Catalog)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules", "dist"}, cfg.Exclude)
	assert.True(t, cfg.Strict)
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("I18N_CHECK_STRICT", "sometimes")
	_, err := loadConfig()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() config {
		return config{Catalog: "src/lang/en.json", SourceDir: "src", Extensions: []string{".vue"}, Format: "text"}
	}

	tests := []struct {
		name    string
		mutate  func(*config)
		wantErr string
	}{
		{"valid", func(*config) {}, ""},
		{"json format", func(c *config) { c.Format = "json" }, ""},
		{"unknown format", func(c *config) { c.Format = "xml" }, `unknown format "xml"`},
		{"empty catalog", func(c *config) { c.Catalog = " " }, "catalog path"},
		{"empty source dir", func(c *config) { c.SourceDir = "" }, "source directory"},
		{"no extensions", func(c *config) { c.Extensions = []string{" ", ""} }, "extension"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigValidateTrimsExtensions(t *testing.T) {
	cfg := config{Catalog: "c.json", SourceDir: "src", Extensions: []string{" .vue", "", ".js "}, Format: "text"}
	require.NoError(t, cfg.validate())
	assert.Equal(t, []string{".vue", ".js"}, cfg.Extensions)
}
