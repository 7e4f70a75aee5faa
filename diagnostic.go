package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

const (
	noMissingKeysMessage = "No missing translation keys found."
	summarySeparator     = "==============================="
)

// diagnosticPrinter renders missing keys as compiler-style diagnostics.
type diagnosticPrinter struct {
	w             io.Writer
	catalogName   string
	contributeURL string

	errorColor *color.Color
	arrowColor *color.Color
	caretColor *color.Color
}

// newDiagnosticPrinter returns a printer writing to w. With useColor false
// no escape sequences are written; with it true colour still follows
// fatih/color's terminal detection.
func newDiagnosticPrinter(w io.Writer, catalogName, contributeURL string, useColor bool) *diagnosticPrinter {
	d := &diagnosticPrinter{
		w:             w,
		catalogName:   catalogName,
		contributeURL: contributeURL,
		errorColor:    color.New(color.FgRed, color.Bold),
		arrowColor:    color.New(color.FgBlue, color.Bold),
		caretColor:    color.New(color.FgRed),
	}
	if !useColor {
		for _, c := range []*color.Color{d.errorColor, d.arrowColor, d.caretColor} {
			c.DisableColor()
		}
	}
	return d
}

// printReport prints one block per missing key followed by the summary, or
// the success line when nothing is missing.
func (d *diagnosticPrinter) printReport(missing []usageSite) {
	if len(missing) == 0 {
		fmt.Fprintln(d.w, noMissingKeysMessage)
		return
	}

	for _, site := range missing {
		d.printSite(site)
	}

	fmt.Fprintln(d.w, summarySeparator)
	fmt.Fprintf(d.w, "Found a total of %d missing keys in %d files.\n", len(missing), countFiles(missing))
}

func (d *diagnosticPrinter) printSite(s usageSite) {
	fmt.Fprintf(d.w, "\n%s: Missing translation key: '%s'\n", d.errorColor.Sprint("error"), s.Key)
	fmt.Fprintf(d.w, "   %s %s:%d:%d\n", d.arrowColor.Sprint("-->"), s.File, s.Line, s.Start)
	fmt.Fprintln(d.w, "     |")
	fmt.Fprintf(d.w, "%-5d| %s\n", s.Line, s.Text)
	fmt.Fprintf(d.w, "     | %s%s unrecognized translation key\n", caretPadding(s), d.caretColor.Sprint(caretRun(s)))
	fmt.Fprintln(d.w, "     |")
	fmt.Fprintf(d.w, "     = note: please register the translation key '%s' in %s so that our awesome team of translators can translate them\n", s.Key, d.catalogName)
	fmt.Fprintf(d.w, "     = tip: if you want to contribute translations, please visit our %s\n", d.contributeURL)
	fmt.Fprintln(d.w)
}

// caretPadding puts the underline under the quote opening the key.
func caretPadding(s usageSite) string {
	return strings.Repeat(" ", max(s.Start-1, 0))
}

// caretRun underlines the key together with its surrounding quotes.
func caretRun(s usageSite) string {
	return strings.Repeat("^", max(s.End-s.Start+2, 0))
}

// countFiles returns the number of distinct files in sites.
func countFiles(sites []usageSite) int {
	return len(lo.Uniq(lo.Map(sites, func(s usageSite, _ int) string {
		return s.File
	})))
}
