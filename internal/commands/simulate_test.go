package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersim-dev/ledgersim/internal/config"
)

// writeTestConfig writes a config with file logging disabled so tests leave
// no log directories behind.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.File = ""
	cfg.Logging.Level = "error"
	path := filepath.Join(t.TempDir(), "ledgersim.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestSimulate_Credit(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"simulate", "--mode", "credit", "--years", "1",
		"--reserve", "20", "--config", writeTestConfig(t),
	})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Banks")
	assert.Contains(t, got, "Capitalists")
	assert.Contains(t, got, "Firms")
	assert.Contains(t, got, "Workers")
	assert.Contains(t, got, "gdp,")
	assert.Contains(t, got, "Y01M12,")
	assert.NotContains(t, got, "Y02M01,", "one year means twelve periods")
}

func TestSimulate_FiatToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "indicators.csv")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"simulate", "--mode", "fiat", "--years", "1",
		"--surplus", "-6", "--config", writeTestConfig(t),
		"--out", outPath,
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Treasury")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 13, "header plus twelve periods")
	assert.Contains(t, lines[0], "cpi")
}

func TestSimulate_UnknownMode(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"simulate", "--mode", "barter", "--config", writeTestConfig(t)})

	require.Error(t, cmd.Execute())
}
