package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spkg/bom"
	"gopkg.in/yaml.v3"
)

// flattenCatalog flattens a nested catalog into dotted keys.
func flattenCatalog(prefix string, node map[string]interface{}) map[string]string {
	result := make(map[string]string)
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			for fk, fv := range flattenCatalog(key, val) {
				result[fk] = fv
			}
		case map[interface{}]interface{}:
			// YAML mappings with non-string keys.
			nested := make(map[string]interface{}, len(val))
			for nk, nv := range val {
				nested[fmt.Sprintf("%v", nk)] = nv
			}
			for fk, fv := range flattenCatalog(key, nested) {
				result[fk] = fv
			}
		default:
			result[key] = fmt.Sprintf("%v", val)
		}
	}
	return result
}

// loadCatalog reads a translation catalog and returns its flattened keys.
// The format is picked from the file extension.
func loadCatalog(fs afero.Fs, path string) (map[string]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	data = bom.Clean(data)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("parsing %s: not valid UTF-8", path)
	}

	var raw map[string]interface{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing %s: catalog is not an object", path)
	}
	return flattenCatalog("", raw), nil
}

// sortedKeys returns sorted keys of a string map.
func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
