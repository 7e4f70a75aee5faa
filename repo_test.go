package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPackageRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644))

	got, err := findPackageRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestProjectRootExplicit(t *testing.T) {
	dir := t.TempDir()
	got, err := projectRoot(config{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestProjectPaths(t *testing.T) {
	p := &project{root: "/proj"}

	assert.Equal(t, "/proj/src/lang/en.json", p.path("src/lang/en.json"))
	assert.Equal(t, "/elsewhere/en.json", p.path("/elsewhere/en.json"))
	assert.Equal(t, "src/a.vue", p.relPath("/proj/src/a.vue"))
}
