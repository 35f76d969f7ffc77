package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(`
[remote_store]
url = "http://store.local"

[auth]
jwt_secret = "secret"
`)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10*time.Second, cfg.RemoteStoreTimeout())
	assert.Equal(t, 5*time.Minute, cfg.ConfirmationTTL())
	assert.False(t, cfg.DatabaseEnabled())
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing remote store", `[auth]
jwt_secret = "s"`},
		{"missing auth", `[remote_store]
url = "http://x"`},
		{"bad port", `[server]
http_port = 70000
[remote_store]
url = "http://x"
[auth]
dev_headers = true`},
		{"not toml", `[[[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("NOKTA_TEST_STORE_URL", "http://store.example")
	t.Setenv("NOKTA_TEST_DB_HOST", "db.example")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[remote_store]
url = "${NOKTA_TEST_STORE_URL}"
timeout = 3

[database]
host = "${NOKTA_TEST_DB_HOST}"
user = "nokta"
dbname = "nokta"

[auth]
dev_headers = true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://store.example", cfg.RemoteStore.URL)
	assert.Equal(t, 3*time.Second, cfg.RemoteStoreTimeout())
	assert.True(t, cfg.DatabaseEnabled())
	assert.Contains(t, cfg.Database.DSN(), "host=db.example")
}
