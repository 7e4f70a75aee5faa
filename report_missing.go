package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-errors/errors"
)

// errMissingKeys is returned in strict mode when the report is not empty.
var errMissingKeys = errors.Errorf("missing translation keys found")

const skippedFileNotice = "Skipping file due to UnicodeDecodeError: %s\n"

// missingReport is the JSON form of the missing key report.
type missingReport struct {
	Missing []usageSite `json:"missing"`
	Skipped []string    `json:"skipped"`
}

func runMissing(p *project) error {
	catalog, err := p.loadCatalog()
	if err != nil {
		return err
	}

	res, err := p.scanUsages()
	if err != nil {
		return errors.WrapPrefix(err, "scanning sources", 0)
	}

	missing := findMissing(res.Sites, catalog)
	p.log.Debugf("%d usages, %d missing, %d files skipped", len(res.Sites), len(missing), len(res.Skipped))

	if err := p.reportMissing(missing, res.Skipped); err != nil {
		return err
	}
	if p.cfg.Strict && len(missing) > 0 {
		return errMissingKeys
	}
	return nil
}

// loadCatalog loads the configured catalog. Any failure aborts the run.
func (p *project) loadCatalog() (map[string]string, error) {
	path := p.path(p.cfg.Catalog)
	catalog, err := loadCatalog(p.fs, path)
	if err != nil {
		return nil, errors.WrapPrefix(err, "loading catalog", 0)
	}
	p.log.Debugf("loaded %d keys from %s", len(catalog), p.relPath(path))
	return catalog, nil
}

// findMissing returns the sites whose key is not in the catalog, keeping
// their order. Repeated keys are reported once per occurrence.
func findMissing(sites []usageSite, catalog map[string]string) []usageSite {
	missing := []usageSite{}
	for _, s := range sites {
		if _, found := catalog[s.Key]; !found {
			missing = append(missing, s)
		}
	}
	return missing
}

func (p *project) reportMissing(missing []usageSite, skipped []string) error {
	if p.cfg.Format == "json" {
		if skipped == nil {
			skipped = []string{}
		}
		return outputJSON(p.out, missingReport{Missing: missing, Skipped: skipped})
	}

	for _, file := range skipped {
		fmt.Fprintf(p.out, skippedFileNotice, file)
	}
	d := newDiagnosticPrinter(p.out, filepath.Base(p.cfg.Catalog), p.cfg.ContributeURL, !p.cfg.NoColor)
	d.printReport(missing)
	return nil
}
