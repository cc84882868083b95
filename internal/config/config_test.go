package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, CatalogFixture, cfg.Catalog.Source)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.UsesPostgres())
}

func TestParse_Postgres(t *testing.T) {
	cfg, err := Parse(`
[storage]
driver = "postgres"

[database]
host = "db"
user = "smc"
password = "secret"
dbname = "banner_cases"
`)
	require.NoError(t, err)

	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "host=db port=5432 user=smc password=secret dbname=banner_cases sslmode=disable", cfg.Database.DSN())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown driver", data: "[storage]\ndriver = \"mongo\""},
		{name: "postgres without host", data: "[storage]\ndriver = \"postgres\""},
		{name: "unknown catalog", data: "[catalog]\nsource = \"csv\""},
		{name: "booking service without url", data: "[bookingservice]\nenabled = true"},
		{name: "bad port", data: "[server]\nhttp_port = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_MalformedTOML(t *testing.T) {
	_, err := Parse("[server\nhttp_port = 1")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nhttp_port = 9090\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
