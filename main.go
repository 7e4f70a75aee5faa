// i18n-check reports translation keys that are used in the frontend sources
// but missing from the English catalog.
//
// Usage:
//
//	i18n-check [subcommand] [flags]
//
// Without a subcommand it lists every $t('key') and <i18n-t keypath="key">
// reference whose key is not in src/lang/en.json.
package main

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
)

var version = "unversioned"

var subcommands = map[string]func(*project) error{
	"missing":    runMissing,
	"unused":     runUnused,
	"references": runReferences,
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name, err := parseArgs(&cfg, os.Args[1:])
	if err == nil {
		err = cfg.validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	p, err := newProject(cfg, log)
	if err == nil {
		err = subcommands[name](p)
	}

	if err != nil {
		if errors.Is(err, errMissingKeys) {
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		if cfg.Debug {
			log.Error(newErr.ErrorStack())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs applies command line flags on top of cfg and returns the name of
// the subcommand to run.
func parseArgs(cfg *config, args []string) (string, error) {
	parser := flaggy.NewParser("i18n-check")
	parser.Description = "Report translation keys used in the sources but missing from the catalog"
	parser.Version = version

	var exts, exclude []string
	parser.String(&cfg.Root, "r", "root", "Project root the other paths are relative to (default: working directory)")
	parser.String(&cfg.Catalog, "c", "catalog", "Reference catalog (.json, .yaml, .yml or .toml)")
	parser.String(&cfg.SourceDir, "s", "src", "Source directory to scan")
	parser.StringSlice(&exts, "e", "ext", "File suffix to scan, repeatable (default: .vue and .js)")
	parser.StringSlice(&exclude, "x", "exclude", "Directory name to skip, repeatable")
	parser.String(&cfg.Format, "f", "format", "Output format: text, json")
	parser.Bool(&cfg.Strict, "", "strict", "Exit with status 1 when missing keys are found")
	parser.Bool(&cfg.FindRoot, "", "find-root", "Use the nearest parent directory holding a package.json as root")
	parser.Bool(&cfg.NoColor, "", "no-color", "Disable coloured output")
	parser.Bool(&cfg.Debug, "d", "debug", "Log debug output to stderr")

	unused := flaggy.NewSubcommand("unused")
	unused.Description = "Keys in the catalog not referenced in the sources"
	references := flaggy.NewSubcommand("references")
	references.Description = "Where each catalog key is used (file:line)"
	parser.AttachSubcommand(unused, 1)
	parser.AttachSubcommand(references, 1)

	if err := parser.ParseArgs(args); err != nil {
		return "", err
	}

	if len(exts) > 0 {
		cfg.Extensions = exts
	}
	if len(exclude) > 0 {
		cfg.Exclude = exclude
	}

	switch {
	case unused.Used:
		return "unused", nil
	case references.Used:
		return "references", nil
	default:
		return "missing", nil
	}
}
