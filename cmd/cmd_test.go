package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/pibxgen/pkg/action/check"
)

func TestParseLevel(ttt *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    slog.Level
		wantErr bool
	}{
		{name: "trace", in: "TRACE", want: levelTrace},
		{name: "debug", in: "debug", want: slog.LevelDebug},
		{name: "offset", in: "info+2", want: slog.LevelInfo + 2},
		{name: "invalid", in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintDrifts(t *testing.T) {
	var buf bytes.Buffer
	printDrifts(&buf, []check.Drift{
		{Class: "Book", File: "gen/Book.php", Missing: true},
		{Class: "Order", File: "gen/Order.php", Diff: "-old\n+new"},
		{Class: "Gone", File: "gen/Gone.php", Stale: true},
	}, true)

	out := buf.String()
	assert.Contains(t, out, "missing Book gen/Book.php\n")
	assert.Contains(t, out, "changed Order gen/Order.php\n-old\n+new\n")
	assert.Contains(t, out, "stale   Gone gen/Gone.php\n")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateAndCheckCommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(input, []byte("nodes:\n  - kind: type\n    name: book\n    children:\n      - {kind: attribute, name: title, type: string}\n"), 0o644))
	out := filepath.Join(dir, "gen")

	_, err := execute(t, "check", "-i", input, "-o", out)
	require.ErrorIs(t, err, ErrDrift)

	stdout, err := execute(t, "generate", "-i", input, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+filepath.Join(out, "Book.php"))

	stdout, err = execute(t, "check", "-i", input, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")

	stdout, err = execute(t, "check", "-i", input, "-o", out, "--type-checks")
	require.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, stdout, "changed Book")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := execute(t, "generate", "--no-such-flag")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsage))
}
