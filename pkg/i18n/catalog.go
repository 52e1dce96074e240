package i18n

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithFallbackLocale sets the locale consulted when a key is missing in the
// requested locale.
func WithFallbackLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		c.fallback = normalizeLocale(locale)
	}
}

// Catalog is an in-memory Translator keyed by locale.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
	fallback string
}

var _ Translator = (*Catalog)(nil)

// NewCatalog creates an empty catalog.
func NewCatalog(options ...CatalogOption) *Catalog {
	c := &Catalog{messages: make(map[string]map[string]string)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Add stores a message. Markup in the message is stripped. Adding the same key
// twice for a locale is an error. Locales are stored in canonical BCP 47 form,
// so "pt_BR" and "pt-br" share a bucket.
func (c *Catalog) Add(locale, key, message string) error {
	locale = normalizeLocale(locale)
	key = strings.TrimSpace(key)
	if locale == "" {
		return fmt.Errorf("i18n: locale is required")
	}
	if key == "" {
		return fmt.Errorf("i18n: key is required (locale %s)", locale)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string)
		c.messages[locale] = bucket
	}
	if _, exists := bucket[key]; exists {
		return fmt.Errorf("i18n: duplicate key %q for locale %s", key, locale)
	}
	bucket[key] = sanitizeMessage(message)
	return nil
}

// AddMessages stores every message of the map under locale.
func (c *Catalog) AddMessages(locale string, messages map[string]string) error {
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := c.Add(locale, key, messages[key]); err != nil {
			return err
		}
	}
	return nil
}

// Translate implements Translator. Map arguments replace ":name" placeholders.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	c.mu.RLock()
	msg, ok := c.lookupLocked(normalizeLocale(locale), key)
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s (locale %q)", ErrTranslationNotFound, key, locale)
	}
	return substitute(msg, args), nil
}

// Locales returns the loaded locales sorted alphabetically.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of messages stored for locale.
func (c *Catalog) Len(locale string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages[normalizeLocale(locale)])
}

// lookupLocked tries the exact locale, then its base language, then the
// fallback locale.
func (c *Catalog) lookupLocked(locale, key string) (string, bool) {
	if msg, ok := c.messages[locale][key]; ok {
		return msg, true
	}
	if base := baseLanguage(locale); base != "" && base != locale {
		if msg, ok := c.messages[base][key]; ok {
			return msg, true
		}
	}
	if c.fallback != "" && c.fallback != locale {
		if msg, ok := c.messages[c.fallback][key]; ok {
			return msg, true
		}
	}
	return "", false
}

func substitute(msg string, args []any) string {
	if len(args) == 0 || !strings.Contains(msg, ":") {
		return msg
	}

	replacements := make(map[string]string)
	for _, arg := range args {
		switch values := arg.(type) {
		case map[string]any:
			for name, value := range values {
				replacements[name] = fmt.Sprint(value)
			}
		case map[string]string:
			for name, value := range values {
				replacements[name] = value
			}
		}
	}
	if len(replacements) == 0 {
		return msg
	}

	names := make([]string, 0, len(replacements))
	for name := range replacements {
		names = append(names, name)
	}
	// longer names first so ":name" does not clobber ":name_plural"
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) == len(names[j]) {
			return names[i] < names[j]
		}
		return len(names[i]) > len(names[j])
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, ":"+name, replacements[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// normalizeLocale returns the canonical BCP 47 form of locale. Underscore
// separated and mixed-case tags are accepted; unparseable values are kept
// as trimmed.
func normalizeLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return trimmed
	}
	return tag.String()
}

func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}
