package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllPolicyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KINSHIP_PARTNER_POLICY", "reference")
	t.Setenv("KINSHIP_CHILDCOUNT_POLICY", "inclusive")
	t.Setenv("KINSHIP_AGE_POLICY", "pessimistic")
	t.Setenv("KINSHIP_CLEANUP_POLICY", "cascade")
}

func TestLoad(t *testing.T) {
	t.Run("env only", func(t *testing.T) {
		setAllPolicyEnv(t)
		t.Setenv("KINSHIP_ADDR", ":9999")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, "reference", cfg.Policies.Partner)
		assert.Equal(t, "cascade", cfg.Policies.Cleanup)
	})

	t.Run("addr defaults when unset", func(t *testing.T) {
		setAllPolicyEnv(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
	})

	t.Run("missing policy selection is fatal", func(t *testing.T) {
		t.Setenv("KINSHIP_PARTNER_POLICY", "reference")
		t.Setenv("KINSHIP_CHILDCOUNT_POLICY", "inclusive")
		t.Setenv("KINSHIP_AGE_POLICY", "pessimistic")
		// cleanup left unset

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cleanup")
	})

	t.Run("yaml file supplies values, env overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kinship.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":7070"
  policies:
    partner: existence
    childCount: exclusive
    age: optimistic
    cleanup: noop
`), 0o600))
		t.Setenv("KINSHIP_CONFIG", path)
		t.Setenv("KINSHIP_AGE_POLICY", "pessimistic")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
		assert.Equal(t, "existence", cfg.Policies.Partner)
		assert.Equal(t, "pessimistic", cfg.Policies.Age, "env wins over file")
		assert.Equal(t, "noop", cfg.Policies.Cleanup)
	})

	t.Run("unreadable config file fails", func(t *testing.T) {
		t.Setenv("KINSHIP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		setAllPolicyEnv(t)
		_, err := Load()
		require.Error(t, err)
	})
}
