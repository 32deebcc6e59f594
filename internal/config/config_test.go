package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeEnv(t, "GOBOLT_BOLT_FU=58\nGOBOLT_ID_SCHEME=uuid\nGOBOLT_LOG_LEVEL=debug\nGOBOLT_ADDR=127.0.0.1:9000\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 58.0, c.BoltFu)
	assert.Equal(t, "uuid", c.IDScheme)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, 2.0, c.ShearSafetyFactor)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	path := writeEnv(t, "GOBOLT_ECCENTRICITY=3\nGOBOLT_UBS=0.5\n")
	t.Setenv(EnvEccentricity, "6")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, c.Eccentricity)
	assert.Equal(t, 0.5, c.Ubs)
}

func TestFromLookup_InvalidValuesKeepDefaults(t *testing.T) {
	env := map[string]string{
		EnvBoltFu:                 "lots",
		EnvShearSafetyFactor:      "0",
		EnvBearingSafetyFactor:    "-1",
		EnvBlockShearSafetyFactor: "NaN",
		EnvIDScheme:               "ulid",
		EnvLogLevel:               "chatty",
		EnvAddr:                   "  ",
	}
	c := FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, Default(), c)
}

func TestConfig_Evaluator(t *testing.T) {
	c := Default()
	c.BearingSafetyFactor = 1.5
	ec := c.Evaluator()
	assert.Equal(t, 1.5, ec.BearingSafetyFactor)
	assert.Equal(t, c.BoltFu, ec.BoltFu)
	assert.EqualValues(t, "resultant", ec.DemandMode)
}
