package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STATE_BACKEND", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.State.Backend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "LTI OMT Meeting System", cfg.Export.Author)
	assert.Equal(t, 20.0, cfg.Export.PageMargin)
	assert.True(t, cfg.Export.Compress)
}

func TestLoad_ExportOverrides(t *testing.T) {
	t.Setenv("EXPORT_PAGE_MARGIN", "15")
	t.Setenv("EXPORT_PDF_COMPRESS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15.0, cfg.Export.PageMargin)
	assert.False(t, cfg.Export.Compress)
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := &Config{State: StateConfig{Backend: "sqlite"}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PostgresNeedsHost(t *testing.T) {
	cfg := &Config{State: StateConfig{Backend: BackendPostgres}}
	assert.Error(t, cfg.Validate())

	cfg.Database.Host = "db"
	assert.NoError(t, cfg.Validate())
}
