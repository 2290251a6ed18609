package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NonRepoUsesBaseName(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "my-project")
	require.NoError(t, os.Mkdir(dir, 0o755))

	name := Resolve(context.Background(), dir)
	assert.Equal(t, "my-project", name)
}

func TestResolve_RepoUsesWorktreeRootName(t *testing.T) {
	t.Parallel()
	root := filepath.Join(t.TempDir(), "widget-factory")
	require.NoError(t, os.Mkdir(root, 0o755))
	_, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	// Even from a nested directory the repository root name wins.
	sub := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.Equal(t, "widget-factory", Resolve(context.Background(), root))
	assert.Equal(t, "widget-factory", Resolve(context.Background(), sub))
}

// The payload hint wins over the process working directory.
func TestResolve_HintPrecedence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hinted")
	require.NoError(t, os.Mkdir(dir, 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	other := t.TempDir()
	require.NoError(t, os.Chdir(other))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "hinted", Resolve(context.Background(), dir))
}

func TestResolve_EmptyHintFallsBackToCwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "cwd-project")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, "cwd-project", Resolve(context.Background(), ""))
}

func TestBaseName_DegeneratePaths(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", baseName("/"))
	assert.Equal(t, "", baseName("."))
	assert.Equal(t, "proj", baseName("/tmp/proj/"))
}
