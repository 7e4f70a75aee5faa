package main

func runUnused(p *project) error {
	keys, err := p.loadCatalog()
	if err != nil {
		return err
	}

	res, err := p.scanUsages()
	if err != nil {
		return err
	}
	refs := findKeyReferences(res.Sites)

	var unused []string
	for _, k := range sortedKeys(keys) {
		if _, found := refs[k]; !found {
			unused = append(unused, k)
		}
	}

	return outputStrings(p.out, unused, p.cfg.Format, "unused keys")
}
