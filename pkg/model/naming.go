package model

import (
	"fmt"
	"strings"
)

// DefaultAppNamespace is stripped from model types when deriving translation
// prefixes.
const DefaultAppNamespace = `App\`

// Dotted type names (app.models.Post) split the same way as backslash ones.
var namespaceSeparators = strings.NewReplacer(`\`, "/", ".", "/")

// TranslationPrefix derives the translation key prefix for a model type:
// the application namespace is removed, the rest is lower-cased and namespace
// separators become "/". The prefix always ends with ".".
//
//	TranslationPrefix(`App\Models\Post`, `App\`) == "models/post."
func TranslationPrefix(modelType, appNamespace string) string {
	prefix := modelType
	if appNamespace != "" {
		prefix = strings.ReplaceAll(prefix, appNamespace, "")
	}
	prefix = strings.ToLower(prefix)
	prefix = namespaceSeparators.Replace(prefix)
	return prefix + "."
}

// Record holds attribute values of a single model instance.
type Record map[string]any

// String returns the value stored under key coerced to a string. Missing and
// nil values yield "".
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
