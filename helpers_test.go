package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/proj"

// newTestProject returns a project on an in-memory filesystem holding files
// (paths relative to the project root) and the buffer it prints to.
func newTestProject(t *testing.T, files map[string]string) (*project, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		path := filepath.Join(testRoot, name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	cfg := config{
		Catalog:       "src/lang/en.json",
		SourceDir:     "src",
		Extensions:    []string{".vue", ".js"},
		Format:        "text",
		ContributeURL: "https://weblate.kuma.pet",
		NoColor:       true,
	}
	return &project{
		fs:   fs,
		root: testRoot,
		cfg:  cfg,
		log:  logrus.NewEntry(logger),
		out:  &out,
	}, &out
}
