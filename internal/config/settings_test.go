package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/univc/internal/config"
	"github.com/univc/univc/internal/kinds"
)

func writeSettings(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	s := config.DefaultSettings()
	assert.Equal(t, config.EagerCheck, s.Policy())
	assert.Equal(t, kinds.Covariant, s.VarianceStrategy())
	assert.Equal(t, "auto", s.Color)
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
checking: late
variance: contravariant
cache_path: .univc-cache.db
color: never
`)
	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.LateCheck, s.Policy())
	assert.Equal(t, kinds.Contravariant, s.VarianceStrategy())
	assert.Equal(t, ".univc-cache.db", s.CachePath)
	assert.Equal(t, "never", s.Color)
}

func TestLoadPartialSettingsKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `checking: late`)

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.LateCheck, s.Policy())
	assert.Equal(t, kinds.Covariant, s.VarianceStrategy())
}

func TestLoadRejectsUnknownSpellings(t *testing.T) {
	for _, yaml := range []string{
		`checking: lazy`,
		`variance: invariant`,
		`color: sometimes`,
	} {
		path := writeSettings(t, yaml)
		_, err := config.LoadSettings(path)
		assert.Error(t, err, "settings %q should be rejected", yaml)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNilSettingsFallBack(t *testing.T) {
	var s *config.Settings
	assert.Equal(t, config.EagerCheck, s.Policy())
	assert.Equal(t, kinds.Covariant, s.VarianceStrategy())
}

func TestCheckPolicyString(t *testing.T) {
	assert.Equal(t, "eager", config.EagerCheck.String())
	assert.Equal(t, "late", config.LateCheck.String())
}
