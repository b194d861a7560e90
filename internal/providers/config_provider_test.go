package providers

import (
	"holidaze/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYaml = `
webServer:
  host: 127.0.0.1
  port: 8090
logger:
  level: info
  mode: 0644
  dir: /tmp
store:
  driver: memory
  quotaBytes: 5242880
cache:
  enabled: true
  size: 1
api:
  baseUrl: https://v2.api.noroff.dev
  apiKey: test-key
ratings:
  submitDelay: 250ms
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsYaml(t *testing.T) {
	path := writeConfig(t, testConfigYaml)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "Holidaze", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 8090, conf.WebServer.Port)
	assert.Equal(t, "memory", conf.Store.Driver)
	assert.Equal(t, 5242880, conf.Store.QuotaBytes)
	assert.Equal(t, "test-key", conf.Api.ApiKey)
	assert.Equal(t, 250*time.Millisecond, conf.Ratings.SubmitDelay)
	assert.Equal(t, defaultApiTimeout, conf.Api.Timeout)
	assert.Equal(t, defaultCacheTTL, conf.Cache.TTL)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, testConfigYaml)
	t.Setenv("HOLIDAZE_API_KEY", "from-env")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.Api.ApiKey)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_FileDriverNeedsPath(t *testing.T) {
	path := writeConfig(t, `
webServer:
  host: 127.0.0.1
  port: 8090
logger:
  level: info
  mode: 0644
  dir: /tmp
store:
  driver: file
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
