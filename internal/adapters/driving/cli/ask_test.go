package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const askTestKB = `(what is|describe) art therapy\??
what is art therapy
describe art therapy
Art therapy uses creative activities to support mental health.
`

func writeTestKB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge.txt")
	require.NoError(t, os.WriteFile(path, []byte(askTestKB), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAskCmd_PatternHit(t *testing.T) {
	kbPath := writeTestKB(t)

	out, err := execute(t, "ask", "what is art therapy?",
		"--config", t.TempDir(), "--kb", kbPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Art therapy uses creative activities to support mental health.")
}

func TestAskCmd_UnquotedUtterance(t *testing.T) {
	kbPath := writeTestKB(t)

	out, err := execute(t, "ask", "describe", "art", "therapy",
		"--config", t.TempDir(), "--kb", kbPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Art therapy uses creative activities")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	kbPath := writeTestKB(t)

	out, err := execute(t, "ask", "what is art therapy",
		"--json", "--config", t.TempDir(), "--kb", kbPath)
	defer func() { askJSON = false }()

	require.NoError(t, err)

	var output askOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, 0, output.Intent)
	assert.True(t, output.Resolved)
	assert.Contains(t, output.Response, "Art therapy uses creative activities")
}

func TestAskCmd_MissingKnowledgeFile(t *testing.T) {
	_, err := execute(t, "ask", "anything",
		"--config", t.TempDir(), "--kb", filepath.Join(t.TempDir(), "missing.txt"))

	assert.Error(t, err)
}
