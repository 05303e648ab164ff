package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/statespace/internal/testutils"
	"github.com/aretw0/statespace/pkg/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "fox-goose-beans", "--quiet=false")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Added: 1: fgb L\n"), out)
	assert.Contains(t, out, "Added: 28: FGB R\n")
	assert.Contains(t, out, "Solved fox-goose-beans in 17 steps (28 states explored):")
	assert.Contains(t, out, " 17. drop Goose\n")
}

func TestSolveCommand_Quiet(t *testing.T) {
	out, err := run(t, "solve", "--quiet")
	require.NoError(t, err)

	assert.NotContains(t, out, "Added:")
	assert.True(t, strings.HasPrefix(out, "Solved fox-goose-beans"), out)
}

func TestSolveCommand_UnknownPuzzle(t *testing.T) {
	_, err := run(t, "solve", "hanoi", "--quiet")
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fox-goose-beans"), out)
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "graph", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `digraph "fox-goose-beans" {`), out)
	assert.Contains(t, out, `fillcolor=green, shape=rectangle`)

	_, err = run(t, "graph", "--format", "png")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "statespace version "), out)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"wolf.md":   "---\nname: wolf\ncarrier: Ferryman\ncapacity: 1\nentities: [Wolf, Goat, Cabbage]\nforbidden:\n  - [Wolf, Goat]\n---\n",
		"broken.md": "---\nname: broken\ncarrier: Ferryman\ncapacity: 1\nentities: [Wolf]\nforbidden:\n  - [Wolf, Dragon]\n---\n",
	})

	out, err := run(t, "validate", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidProblem)
	assert.Contains(t, err.Error(), "1 of 2 definitions are invalid")

	assert.Contains(t, out, "✗ broken: ")
	assert.Contains(t, out, `unknown entity "Dragon"`)
	assert.Contains(t, out, "✓ wolf\n")
	assert.NotContains(t, out, "All 2 definitions are valid")

	require.NoError(t, os.Remove(filepath.Join(dir, "broken.md")))
	out, err = run(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All 1 definitions are valid!")
}
