package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompareCommand(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewCompareCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return buf, cmd.Execute()
}

func TestCompare_ConformingStream(t *testing.T) {
	path := writeBlocksFile(t, "4\n4\n2\n2\n8\n4\n")

	buf, err := runCompareCommand(t, "text", "--window", "4", path)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ strategies agree: stream conforms (6 blocks, window 4)")
}

func TestCompare_InvalidStreamStillAgrees(t *testing.T) {
	path := writeBlocksFile(t, sampleStream)

	buf, err := runCompareCommand(t, "text", "--window", "5", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err), "agreement on a broken stream is a rule failure, not a command error")
	assert.Contains(t, buf.String(), "✓ strategies agree")
	assert.Contains(t, buf.String(), "invalid block 127 at position 15")
}

func TestCompare_JSON(t *testing.T) {
	path := writeBlocksFile(t, sampleStream)

	buf, err := runCompareCommand(t, "json", "--window", "5", path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status, "an agreeing comparison is a successful comparison")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["agree"])
	assert.Equal(t, false, data["conforming"])
	assert.Equal(t, data["pairsum"], data["twopointer"])
}

func TestCompare_MissingFile(t *testing.T) {
	_, err := runCompareCommand(t, "text", "--window", "5", "/nonexistent/blocks.txt")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
