// Package i18n resolves the translation keys resources use for labels.
//
// Keys follow the "<group path>.<key>" convention: the group path is the
// slash separated translation prefix derived from a model type and the key is
// an attribute name (or "model_title_many" for collection labels). A Catalog
// loads these from YAML or JSON files laid out as <locale>/<group>.yaml.
package i18n

import (
	"errors"
	"strings"
)

var (
	// ErrMissingTranslator is reported when no Translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator is not configured")
	// ErrTranslationNotFound is reported when a key has no message.
	ErrTranslationNotFound = errors.New("i18n: translation not found")
)

// Translator resolves a key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides what to return when a key cannot be
// resolved. err is ErrMissingTranslator, ErrTranslationNotFound or the error
// returned by the translator.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ReturnKey echoes the key back, so unresolved labels stay recognisable.
func ReturnKey(_ string, key string, _ []any, _ error) string {
	return key
}

// Resolve translates key, routing failures through onMissing (ReturnKey when
// nil). Blank translations count as missing.
func Resolve(t Translator, locale, key string, onMissing MissingTranslationHandler, args ...any) string {
	if onMissing == nil {
		onMissing = ReturnKey
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}

	msg, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(msg) != "" {
		return msg
	}
	if err == nil {
		err = ErrTranslationNotFound
	}
	return onMissing(locale, key, args, err)
}
