// Package i18n localizes validation messages.
//
// Catalogs are flat maps keyed by "lang:namespace:key". They are loaded at
// construction from YAML files laid out as {lang}/{namespace}.yaml, or from
// maps passed with WithTranslations, and never change afterwards, so an
// *I18n is safe for concurrent use.
//
// Lookups fall back from a regional tag to its base language ("de-AT" to
// "de") and then to the default language. A key missing everywhere is
// returned as is.
//
// Default returns an instance backed by the embedded catalogs, which carry
// every key produced by the validator and richtext packages under the
// "messages" namespace:
//
//	tr := i18n.NewTranslator(i18n.Default(), "de", i18n.MessagesNamespace)
//	errs.Translate(tr.TranslateMessage)
//
// Placeholders use the {{name}} form and are replaced in a single pass.
package i18n
