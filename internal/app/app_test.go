package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("SESSION_SECRET", "")

	path := writeConfig(t, `
db:
  login: feedback
  password: from-file
  port: 6432
  database: feedback
  host: postgres
redis:
  addr: localhost:6379
kafka:
  brokers: ["k1:9092", "k2:9092"]
  topic: events
es:
  index: forms-test
secret: file-secret
srv_port: ":9000"
session_duration: 2h
etl_search_timeout: 30s
max_open_conns: 5
`)

	c, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", c.CfgDB.Host)
	assert.Equal(t, uint(6432), c.CfgDB.Port)
	assert.Equal(t, "from-file", c.CfgDB.Password)
	assert.Equal(t, "localhost:6379", c.CfgRedis.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.CfgKafka.Brokers)
	assert.Equal(t, "events", c.CfgKafka.Topic)
	assert.Equal(t, "forms-test", c.CfgES.Index)
	assert.Equal(t, "file-secret", c.Secret)
	assert.Equal(t, ":9000", c.ServerPort)
	assert.Equal(t, 2*time.Hour, c.SessionDuration)
	assert.Equal(t, 30*time.Second, c.ETLTimeout)
	assert.Equal(t, 5, c.MaxOpenConns)
}

func TestNewConfig_Defaults(t *testing.T) {
	c, err := NewConfig(writeConfig(t, "secret: s\n"))
	require.NoError(t, err)

	assert.Equal(t, uint(5432), c.CfgDB.Port)
	assert.Equal(t, "redis:6379", c.CfgRedis.Addr)
	assert.Equal(t, []string{"kafka:9092"}, c.CfgKafka.Brokers)
	assert.Equal(t, "feedback-events", c.CfgKafka.Topic)
	assert.Equal(t, "forms", c.CfgES.Index)
	assert.Equal(t, "file://migrations", c.MigrationsPath)
	assert.Equal(t, ":8080", c.ServerPort)
	assert.Equal(t, 24*time.Hour, c.SessionDuration)
	assert.Equal(t, time.Minute, c.ETLTimeout)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("SESSION_SECRET", "env-secret")

	c, err := NewConfig(writeConfig(t, "db:\n  password: from-file\nsecret: file-secret\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.CfgDB.Password)
	assert.Equal(t, "env-secret", c.Secret)
}

func TestNewConfig_Errors(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = NewConfig(writeConfig(t, "db: [not, a, map"))
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultConfigPath, ConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/feedback.yaml")
	assert.Equal(t, "/etc/feedback.yaml", ConfigPath())
}
