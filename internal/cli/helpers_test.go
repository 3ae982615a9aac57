package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/rshade/adminboard/internal/cli"
	"github.com/rshade/adminboard/internal/config"
)

// setupCLITest isolates ADMINBOARD_HOME, silences logging, clears the
// environment overrides and resets the global config around the test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, name := range []string{
		"ADMINBOARD_LOG_FORMAT", "ADMINBOARD_LOG_FILE",
		"ADMINBOARD_OUTPUT_FORMAT", "ADMINBOARD_PAGE_SIZE", "ADMINBOARD_ID_STRATEGY",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("ADMINBOARD_LOG_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
