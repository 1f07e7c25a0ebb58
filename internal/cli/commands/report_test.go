package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/datapeek/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B\n1,x\n2,y\n3,x\n"), 0644))

	cmd := NewReportCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Data loaded successfully: 3 rows, 2 columns")
	assert.Contains(t, out, "BASIC TABLE INFORMATION")
	assert.Contains(t, out, "CORRELATION ANALYSIS")
	// Piped output never blocks on the exit prompt.
	assert.NotContains(t, out, "Press Enter")
}

func TestReportCommand_MissingFile(t *testing.T) {
	cmd := NewReportCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.csv")})

	err := cmd.Execute()

	var le *dataset.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, dataset.NotFound, le.Kind)
}

func TestReportCommand_NoDataset(t *testing.T) {
	cmd := NewReportCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset given")
}

func TestInitCommand_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	cmd := NewInitCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(dir, "datapeek.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "max_unique: 10")
	assert.Contains(t, string(content), "strong_threshold: 0.5")

	// A second run without --force refuses to overwrite.
	again := NewInitCommand()
	again.SetOut(new(bytes.Buffer))
	again.SetArgs([]string{dir})
	err = again.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}
