// Package i18n provides the message catalog used to render validation
// messages. A Translator resolves dot-separated keys ("errors.messages.url")
// per language and substitutes named "%{name}" placeholders.
//
// Translations are loaded through a TranslationAdapter: MapAdapter for
// in-memory data, FileAdapter for a single file, FSAdapter for every file in
// a directory of any fs.FS (embed.FS, os.DirFS). MergeAdapters layers several
// sources so application files can override individual embedded keys. YAML
// and JSON files are supported, picked by extension when no Parser is given;
// each file is rooted at language codes:
//
//	en:
//	  errors:
//	    messages:
//	      greater_than: "must be greater than %{count}"
//
// Usage:
//
//	translator, err := i18n.NewTranslator(ctx,
//	    i18n.NewDirectoryAdapter(nil, "./locales"),
//	    i18n.WithMissingTranslationsLogging(true),
//	)
//	if err != nil {
//	    return err
//	}
//	msg := translator.Tv("en", "errors.messages.greater_than", map[string]any{"count": 5})
//
// Missing keys fall back to the key itself unless WithFallbackToKey(false)
// is set. MatchLanguage maps a requested locale onto the loaded languages.
package i18n
