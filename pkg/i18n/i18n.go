package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// I18n holds translation catalogs. It is immutable after New returns.
type I18n struct {
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Called when a key is missing in every fallback language.
	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
}

// Option configures an I18n during construction.
type Option func(*I18n) error

// New builds an I18n from opts.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations adds translations for lang and namespace. Nested maps are
// flattened into dotted keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler sets a function called for keys that are not found
// in any fallback language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T returns the translation of key with placeholders replaced. It tries
// lang, then its base language, then the default language, and returns key
// when none has it.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, l := range i.fallbacks(lang) {
		if translation, ok := i.translations[buildKey(l, namespace, key)]; ok {
			return replacePlaceholdersWithMerge(translation, placeholders...)
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}

	return key
}

// Has reports whether key exists for lang without falling back.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.translations[buildKey(lang, namespace, key)]
	return ok
}

// Languages returns the loaded languages, default first, the rest sorted.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// Supports reports whether lang or its base language has any translations.
func (i *I18n) Supports(lang string) bool {
	return slices.Contains(i.languages, lang) || slices.Contains(i.languages, baseLanguage(lang))
}

func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
}

func (i *I18n) fallbacks(lang string) []string {
	out := []string{lang}
	if base := baseLanguage(lang); base != lang {
		out = append(out, base)
	}
	if !slices.Contains(out, i.defaultLang) {
		out = append(out, i.defaultLang)
	}
	return out
}

func (i *I18n) buildLanguagesList() []string {
	set := map[string]bool{}
	for key := range i.translations {
		lang, _, _ := strings.Cut(key, ":")
		set[lang] = true
	}
	delete(set, i.defaultLang)

	return append([]string{i.defaultLang}, slices.Sorted(maps.Keys(set))...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}

// baseLanguage strips the region from a language tag ("en-US" to "en").
func baseLanguage(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}
