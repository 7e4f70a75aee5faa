package main

import (
	"fmt"
)

func runReferences(p *project) error {
	keys, err := p.loadCatalog()
	if err != nil {
		return err
	}

	res, err := p.scanUsages()
	if err != nil {
		return err
	}
	refs := findKeyReferences(res.Sites)

	if p.cfg.Format == "json" {
		known := make(map[string][]keyReference, len(refs))
		for k, locations := range refs {
			if _, found := keys[k]; found {
				known[k] = locations
			}
		}
		return outputJSON(p.out, known)
	}

	for _, k := range sortedKeys(keys) {
		locations := refs[k]
		if len(locations) == 0 {
			continue
		}
		fmt.Fprintf(p.out, "%s:\n", k)
		for _, loc := range locations {
			fmt.Fprintf(p.out, "  %s:%d\n", loc.File, loc.Line)
		}
	}
	return nil
}
