package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks fsys and loads every YAML/JSON translation file into a new
// catalog. Files are expected at <locale>/<group path>.<ext>; the group path
// prefixes each key ("en/models/post.yaml" key "title" -> "models/post.title").
// Files directly under the root (e.g. "en.json") contribute ungrouped keys.
// Nested mappings flatten with ".". A nil fsys yields an empty catalog.
func LoadFS(fsys fs.FS, options ...CatalogOption) (*Catalog, error) {
	catalog := NewCatalog(options...)
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTranslationFile(filePath) {
			return nil
		}

		locale, group := splitTranslationPath(filePath)
		if locale == "" {
			return fmt.Errorf("i18n: cannot infer locale from %s", filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", filePath, err)
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("i18n: parse %s: %w", filePath, err)
		}

		messages := make(map[string]string)
		if err := flatten(group, raw, messages); err != nil {
			return fmt.Errorf("i18n: %s: %w", filePath, err)
		}
		if err := catalog.AddMessages(locale, messages); err != nil {
			return fmt.Errorf("i18n: load %s: %w", filePath, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func isTranslationFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func splitTranslationPath(filePath string) (locale, group string) {
	trimmed := strings.TrimSuffix(filePath, path.Ext(filePath))
	locale, group, found := strings.Cut(trimmed, "/")
	if !found {
		return trimmed, ""
	}
	return locale, group
}

func flatten(prefix string, values map[string]any, out map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch value := values[key].(type) {
		case map[string]any:
			if err := flatten(full, value, out); err != nil {
				return err
			}
		case map[any]any:
			nested := make(map[string]any, len(value))
			for nestedKey, nestedValue := range value {
				nested[fmt.Sprint(nestedKey)] = nestedValue
			}
			if err := flatten(full, nested, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("key %q holds a list; messages must be scalars or mappings", full)
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprint(value)
		}
	}
	return nil
}
