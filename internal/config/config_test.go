package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8082
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "parking"
password = "secret"
dbname = "parking_service"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = ""
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "parking-service"

[payment_service]
url = "http://localhost:8090"
timeout = 5

[expiry]
enabled = true
interval_seconds = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8082, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "parking_service", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://localhost:8090", cfg.PaymentService.URL)
	assert.True(t, cfg.Expiry.Enabled)
	assert.Equal(t, 60, cfg.Expiry.IntervalSeconds)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=parking password=secret dbname=parking_service sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[database]
host = "localhost"
dbname = "parking_service"
`,
		},
		{
			name: "missing database host",
			content: `
[server]
http_port = 8082
[database]
dbname = "parking_service"
`,
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8082
[database]
host = "localhost"
dbname = "parking_service"
[metrics]
enabled = true
`,
		},
		{
			name: "expiry enabled without interval",
			content: `
[server]
http_port = 8082
[database]
host = "localhost"
dbname = "parking_service"
[expiry]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
