package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// config holds every setting of a run. Defaults reproduce the layout of the
// web frontend: the English catalog at src/lang/en.json and sources under src,
// both relative to the working directory.
type config struct {
	Root          string   `env:"I18N_CHECK_ROOT"`
	Catalog       string   `env:"I18N_CHECK_CATALOG"        envDefault:"src/lang/en.json"`
	SourceDir     string   `env:"I18N_CHECK_SRC"            envDefault:"src"`
	Extensions    []string `env:"I18N_CHECK_EXTENSIONS"     envDefault:".vue,.js"       envSeparator:","`
	Exclude       []string `env:"I18N_CHECK_EXCLUDE"        envSeparator:","`
	Format        string   `env:"I18N_CHECK_FORMAT"         envDefault:"text"`
	ContributeURL string   `env:"I18N_CHECK_CONTRIBUTE_URL" envDefault:"https://weblate.kuma.pet"`
	Strict        bool     `env:"I18N_CHECK_STRICT"`
	FindRoot      bool     `env:"I18N_CHECK_FIND_ROOT"`
	NoColor       bool     `env:"I18N_CHECK_NO_COLOR"`
	Debug         bool     `env:"DEBUG"`
	LogLevel      string   `env:"LOG_LEVEL"                 envDefault:"warn"`
}

// loadConfig reads the configuration from the environment. Command line flags
// are applied on top of it by parseArgs.
func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", c.Format)
	}
	if strings.TrimSpace(c.Catalog) == "" {
		return fmt.Errorf("catalog path must not be empty")
	}
	if strings.TrimSpace(c.SourceDir) == "" {
		return fmt.Errorf("source directory must not be empty")
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.TrimSpace(e)
		if e != "" {
			exts = append(exts, e)
		}
	}
	if len(exts) == 0 {
		return fmt.Errorf("at least one file extension is required")
	}
	c.Extensions = exts
	return nil
}
