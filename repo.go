package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// project bundles what every subcommand needs: the filesystem, the project
// root the configured paths are relative to, and where to print.
type project struct {
	fs   afero.Fs
	root string
	cfg  config
	log  *logrus.Entry
	out  io.Writer
}

func newProject(cfg config, log *logrus.Entry) (*project, error) {
	root, err := projectRoot(cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("root", root).Debug("resolved project root")

	return &project{
		fs:   afero.NewReadOnlyFs(afero.NewOsFs()),
		root: root,
		cfg:  cfg,
		log:  log,
		out:  os.Stdout,
	}, nil
}

// projectRoot returns the directory the catalog and source paths are
// resolved against: --root if given, the nearest directory holding a
// package.json with --find-root, and the working directory otherwise.
func projectRoot(cfg config) (string, error) {
	if cfg.Root != "" {
		return filepath.Abs(cfg.Root)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cfg.FindRoot {
		return findPackageRoot(dir)
	}
	return dir, nil
}

// findPackageRoot walks up from dir looking for package.json.
func findPackageRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no package.json found)")
		}
		dir = parent
	}
}

// path resolves a configured path against the project root.
func (p *project) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.root, name)
}

// relPath returns path relative to the project root, for display.
func (p *project) relPath(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		return path
	}
	return rel
}
