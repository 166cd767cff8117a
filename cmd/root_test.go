package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/config"
	"github.com/ideal-institute/bookstall/internal/logging"
	"github.com/ideal-institute/bookstall/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() {
		apiURLFlag, debugFlag, quietFlag, envFileFlag = "", false, false, ""
		_ = logging.ShutdownGlobal()
		config.Reset()
		colors.SetDebug(false)
		colors.SetQuiet(false)
		colors.SetOutput(nil, nil)
	})
	config.Reset()
	return dir
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestSetupFlagsOverrideConfig(t *testing.T) {
	isolate(t)
	apiURLFlag = "http://campus.test/api"
	quietFlag = true

	require.NoError(t, setup(RootCmd, nil))

	assert.Equal(t, "http://campus.test/api", config.Get("api_base_url", ""))
	assert.True(t, config.GetBool("quiet", false))
	assert.False(t, config.GetBool("debug", true))
}

func TestSetupLoadsEnvFile(t *testing.T) {
	dir := isolate(t)
	unsetEnv(t, "BOOKSTALL_LIST_FORMAT")
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("BOOKSTALL_LIST_FORMAT=table\n"), 0o600))
	envFileFlag = envFile

	require.NoError(t, setup(RootCmd, nil))

	assert.Equal(t, "table", config.Get("list_format", ""))
}

func TestSetupMissingEnvFile(t *testing.T) {
	dir := isolate(t)
	envFileFlag = filepath.Join(dir, "missing.env")

	assert.Error(t, setup(RootCmd, nil))
}

func TestDescribe(t *testing.T) {
	assert.NoError(t, Describe(nil))

	err := Describe(&app.PageError{Message: "Login failed", Err: errors.New("bad credentials")})
	assert.EqualError(t, err, "Login failed")

	err = Describe(session.ErrNotAuthenticated)
	assert.EqualError(t, err, "Please log in to continue")
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	var userErr *UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestRootCmdHasPersistentFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"api-url", "debug", "quiet", "env-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	assert.True(t, root.SilenceUsage)
}
