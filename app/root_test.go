package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadaie/rsgen/internal/config"
)

// executeCommand runs a fresh root command with args and returns the
// captured command output and the execution error.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// keep the run isolated from config files in the real home directory
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// writeConfigFile writes content to a fresh rsgen.toml and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rsgen.toml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write test config file")

	return path
}

func TestRootCommand(t *testing.T) {
	// The trailing newline depends on whether the test stdout is a
	// terminal, so the patterns accept both endings.
	testCases := []struct {
		name    string
		args    []string
		pattern string
	}{
		{
			name:    "defaults to eight alphanumerics",
			args:    nil,
			pattern: `^[A-Za-z0-9]{8}\n?$`,
		},
		{
			name:    "numeric with custom count",
			args:    []string{"-c", "12", "-n"},
			pattern: `^[0-9]{12}\n?$`,
		},
		{
			name:    "upper case letters",
			args:    []string{"--only-upper-case", "-c", "5"},
			pattern: `^[A-Z]{5}\n?$`,
		},
		{
			name:    "lower case letters",
			args:    []string{"--only-lower-case", "-c", "10"},
			pattern: `^[a-z]{10}\n?$`,
		},
		{
			name:    "latin alphabet without digits",
			args:    []string{"--only-latin-alphabet", "-c", "64"},
			pattern: `^[A-Za-z]{64}\n?$`,
		},
		{
			name:    "printable ascii",
			args:    []string{"-p", "-c", "32"},
			pattern: `^[\x21-\x7e]{32}\n?$`,
		},
		{
			name:    "printable ascii with space",
			args:    []string{"-P", "-c", "32"},
			pattern: `^[\x20-\x7e]{32}\n?$`,
		},
		{
			name:    "fast source",
			args:    []string{"-f", "-c", "16"},
			pattern: `^[A-Za-z0-9]{16}\n?$`,
		},
		{
			name:    "numeric wins over case narrowing",
			args:    []string{"-n", "--only-upper-case", "-c", "20"},
			pattern: `^[0-9]{20}\n?$`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			assert.Regexp(t, tc.pattern, out)
		})
	}
}

func TestRootCommandLoop(t *testing.T) {
	out, err := executeCommand(t, "-l", "3", "-c", "5", "--only-upper-case")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Regexp(t, `^[A-Z]{5}$`, line)
	}
}

func TestRootCommandInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "zero count", args: []string{"-c", "0"}},
		{name: "negative count", args: []string{"-c", "-5"}},
		{name: "zero loop", args: []string{"-l", "0"}},
		{name: "negative loop", args: []string{"-l", "-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Empty(t, out)
		})
	}
}

func TestRootCommandConfigFile(t *testing.T) {
	path := writeConfigFile(t, "[output]\ncount = 13\ncharset = \"numeric\"\n")

	out, err := executeCommand(t, "--config", path)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{13}\n?$`, out)
}

func TestRootCommandConfigFileMissing(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestRootCommandFlagOverridesConfigFile(t *testing.T) {
	path := writeConfigFile(t, "[output]\ncount = 13\n")

	out, err := executeCommand(t, "--config", path, "-c", "6")
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9]{6}\n?$`, out)
}

func TestRootCommandFlagOverridesEnv(t *testing.T) {
	t.Setenv("RSGEN_OUTPUT_COUNT", "40")

	out, err := executeCommand(t, "-c", "6")
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9]{6}\n?$`, out)
}

func TestRootCommandEnvCharset(t *testing.T) {
	t.Setenv("RSGEN_OUTPUT_CHARSET", "only-lower-case")

	out, err := executeCommand(t, "-c", "9")
	require.NoError(t, err)
	assert.Regexp(t, `^[a-z]{9}\n?$`, out)
}

func TestRootCommandUnknownCharsetFromEnv(t *testing.T) {
	t.Setenv("RSGEN_OUTPUT_CHARSET", "bogus")

	_, err := executeCommand(t)
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCommandVersion(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRootCommandRejectsPositionalArgs(t *testing.T) {
	_, err := executeCommand(t, "positional")
	require.Error(t, err)
}

func TestRootCommandRejectsUnknownFlags(t *testing.T) {
	_, err := executeCommand(t, "--frobnicate")
	require.Error(t, err)
}
