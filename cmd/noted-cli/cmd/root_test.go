package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes one invocation against dir, closing the store afterwards
// as Execute does
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	listAll, treeAll, showRaw, showRender = false, false, false, false
	addFolder, writeFile, searchSort = "", "", "name"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--data-dir", dir, "--log-level", "error"}, args...))

	err := rootCmd.Execute()
	closeStore()
	return out.String(), err
}

func TestCLI_Workflow(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "add", "folder", "Work")
	require.NoError(t, err)
	assert.Equal(t, "Created folder: folder-1 Work\n", out)

	out, err = runCLI(t, dir, "", "add", "note", "--folder", "folder-1", "Standup")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")

	out, err = runCLI(t, dir, "", "list", "folder-1")
	require.NoError(t, err)
	assert.Equal(t, "2 Standup\n", out)

	out, err = runCLI(t, dir, "", "tree")
	require.NoError(t, err)
	assert.Equal(t, "├── folder-1 Work\n│   └── 2 Standup\n└── 1 Note\n", out)

	_, err = runCLI(t, dir, "buy milk", "write", "2")
	require.NoError(t, err)

	out, err = runCLI(t, dir, "", "search", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "[content] 2 Standup")
	assert.Contains(t, out, "    buy milk")

	out, err = runCLI(t, dir, "", "show", "2", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", out)

	out, err = runCLI(t, dir, "", "delete", "folder-1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 notes moved to root")

	out, err = runCLI(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Note\n")
	assert.Contains(t, out, "2 Standup\n")
}

func TestCLI_DragReordersRoot(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "", "add", "note", "Second")
	runCLI(t, dir, "", "add", "note", "Third")

	_, err := runCLI(t, dir, "", "drag", "3", "1")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "3 Third\n1 Note\n2 Second\n", out)

	_, err = runCLI(t, dir, "", "drag", "folder-1", "1")
	assert.Error(t, err)
}

func TestCLI_UsernameAndValidation(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "User\n", out)

	out, err = runCLI(t, dir, "", "whoami", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	out, err = runCLI(t, dir, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	_, err = runCLI(t, dir, "", "rename", "1", "   ")
	assert.Error(t, err)

	_, err = runCLI(t, dir, "", "search", "x", "--sort", "size")
	assert.Error(t, err)
}
