package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/logger"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvMode, "faultlog")
	t.Setenv(EnvAppName, "pump")
	t.Setenv(EnvLevel, "err")
	t.Setenv(EnvBufferSize, "512")
	t.Setenv(EnvSeparator, "|")
	t.Setenv(EnvColor, "false")
	t.Setenv(EnvLogFile, "/tmp/pump.log")
	t.Setenv(EnvMetricsAddr, ":9100")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	require.Equal(t, Config{
		Mode:        logger.ModeFaultLog,
		AppName:     "pump",
		Level:       core.ErrorLevel,
		BufferSize:  512,
		Separator:   '|',
		Color:       false,
		LogFile:     "/tmp/pump.log",
		MetricsAddr: ":9100",
	}, *cfg)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EMLOG_TEST_APP=from-file\n"), 0o600))
	t.Setenv("EMLOG_TEST_APP", "")
	os.Unsetenv("EMLOG_TEST_APP")
	t.Setenv(EnvAppName, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", os.Getenv("EMLOG_TEST_APP"))
	require.Equal(t, "from-env", cfg.AppName)
}

func TestLoad_ReportsEveryInvalidVariable(t *testing.T) {
	t.Setenv(EnvMode, "turbo")
	t.Setenv(EnvLevel, "loud")
	t.Setenv(EnvBufferSize, "-4")
	t.Setenv(EnvSeparator, "ab")
	t.Setenv(EnvColor, "maybe")

	_, err := Load(noEnvFile(t))
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 5)
	require.Contains(t, err.Error(), EnvMode)
	require.Contains(t, err.Error(), "buffer size -4")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Separator = '7'
	cfg.BufferSize = 0
	require.Len(t, multierr.Errors(cfg.Validate()), 2)
}

func TestConfig_Builder(t *testing.T) {
	cfg := Default()
	cfg.Mode = logger.ModeRuntime
	cfg.AppName = "sensor"
	cfg.Level = core.InfoLevel
	cfg.BufferSize = 128

	l := cfg.Builder().Build()
	require.Equal(t, logger.ModeRuntime, l.Mode())
	require.Equal(t, "sensor", l.AppName())
	require.Equal(t, core.InfoLevel, l.Level())
	require.Equal(t, 128, l.Capacity())
}
