package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 10

[database]
host = "db.internal"
port = 5432
user = "svc"
password = "secret"
dbname = "schedule"

[logs]
file = "logs/svc.log"
level = "debug"

[metrics]
enabled = true

[notifier]
enabled = true
url = "http://notify:8090"
timeout = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Notifier.Enabled)

	// Дефолты заполняют пропуски
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "ctc-schedule-service", cfg.Metrics.ServiceName)
}

func TestLoad_DSN(t *testing.T) {
	d := Database{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=db sslmode=disable", d.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
