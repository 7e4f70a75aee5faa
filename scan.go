package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// usageSite records one textual occurrence of a translation key.
// Start and End are character offsets of the key within Text, 0-based,
// End exclusive.
type usageSite struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Key   string `json:"key"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// keyReference records where a translation key is used.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// scanResult is everything found by one pass over the source tree, in walk
// order.
type scanResult struct {
	Sites   []usageSite
	Skipped []string
}

// keyUsagePattern finds translation key references in a single line:
//
//	$t('key'), $t("key"), $t('key', [ ... ])
//	<i18n-t keypath="key">
//
// Both forms live in one expression so matches never overlap.
var keyUsagePattern = regexp.MustCompile(`\$t\((?:'(.*?)'|"(.*?)")\s*[,)]|i18n-t\s+keypath="([^"]+)"`)

// keyUsage is a key found in a line with its rune span.
type keyUsage struct {
	Key   string
	Start int
	End   int
}

// findKeyUsages returns the key references in line, left to right.
func findKeyUsages(line string) []keyUsage {
	var usages []keyUsage
	for _, m := range keyUsagePattern.FindAllStringSubmatchIndex(line, -1) {
		// m holds byte offsets for the whole match and the three key groups.
		for g := 1; g <= 3; g++ {
			start, end := m[2*g], m[2*g+1]
			if start < 0 {
				continue
			}
			if start == end {
				// $t('') references no key.
				break
			}
			usages = append(usages, keyUsage{
				Key:   line[start:end],
				Start: utf8.RuneCountInString(line[:start]),
				End:   utf8.RuneCountInString(line[:end]),
			})
			break
		}
	}
	return usages
}

// splitLines splits text on \n, \r\n and \r. A trailing line terminator does
// not produce an empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// scanSourceFiles walks the source tree and returns file paths ending in one
// of the given extensions. Directories named in exclude are not entered.
func scanSourceFiles(fs afero.Fs, root string, exts, exclude []string) ([]string, error) {
	if _, err := fs.Stat(root); err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var files []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries below the root are left out, like a missing file.
			return nil
		}
		if info.IsDir() {
			if path != root && excluded[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(info.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	return files, err
}

// scanUsages extracts every key usage from the configured source tree.
// Files that are not valid UTF-8 are recorded in Skipped and not scanned.
func (p *project) scanUsages() (scanResult, error) {
	var res scanResult

	files, err := scanSourceFiles(p.fs, p.path(p.cfg.SourceDir), p.cfg.Extensions, p.cfg.Exclude)
	if err != nil {
		return res, err
	}

	for _, file := range files {
		relPath := p.relPath(file)
		data, err := afero.ReadFile(p.fs, file)
		if err != nil {
			p.log.WithError(err).Warnf("skipping unreadable file %s", relPath)
			continue
		}
		if !utf8.Valid(data) {
			res.Skipped = append(res.Skipped, relPath)
			continue
		}
		p.log.Debugf("scanning %s", relPath)

		for i, line := range splitLines(string(data)) {
			usages := findKeyUsages(line)
			if len(usages) == 0 {
				continue
			}
			text := strings.TrimRightFunc(line, unicode.IsSpace)
			for _, u := range usages {
				res.Sites = append(res.Sites, usageSite{
					File:  relPath,
					Line:  i + 1,
					Key:   u.Key,
					Text:  text,
					Start: u.Start,
					End:   u.End,
				})
			}
		}
	}
	return res, nil
}

// findKeyReferences groups the usage sites by key.
func findKeyReferences(sites []usageSite) map[string][]keyReference {
	refs := make(map[string][]keyReference)
	for _, s := range sites {
		refs[s.Key] = append(refs[s.Key], keyReference{File: s.File, Line: s.Line})
	}
	return refs
}
