package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 1024, cfg.ReadBuffer)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MaterialSeed)
	assert.False(t, cfg.Compat.Enabled)
	assert.Equal(t, "0.0.56", cfg.Compat.HoneybeeRequired)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epconf.ini")
	content := `
[server]
addr = 127.0.0.1:9100
read_buffer = 4096

[log]
level = debug
format = json

[registry]
seed = materials.idf

[compat]
enabled = true
honeybee_installed = 0.0.60
ladybug_installed = 0.0.59
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr)
	assert.Equal(t, 4096, cfg.ReadBuffer)
	assert.Equal(t, 1024, cfg.WriteBuffer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "materials.idf", cfg.MaterialSeed)
	assert.True(t, cfg.Compat.Enabled)
	assert.Equal(t, "0.0.60", cfg.Compat.HoneybeeInstalled)
	assert.Equal(t, "0.0.59", cfg.Compat.LadybugRequired)
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(&log.TextFormatter{})

	require.NoError(t, Config{LogLevel: "warn", LogFormat: "json"}.SetupLogging())
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, Config{LogLevel: "loud"}.SetupLogging())
	assert.Error(t, Config{LogLevel: "info", LogFormat: "xml"}.SetupLogging())
}
