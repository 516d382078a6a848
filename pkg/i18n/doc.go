// Package i18n loads translation bundles and renders localized text, most
// importantly the messages of validation error trees.
//
// Bundles come from JSON, YAML or TOML files through a TranslationAdapter:
// MapAdapter for in-memory data, FileAdapter for one file, DirectoryAdapter
// for a directory and FSAdapter for an fs.FS such as an embed.FS. Each bundle
// is keyed by language code and then by message id; nested groups are
// addressed with dots, so "validation.minimum" reads the "minimum" entry of
// the "validation" group. Placeholders use the %{name} form.
//
// # Usage
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewMultiParser(), translationsFS, "translations"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	doc, err := validator.ToDocument(tree, translator.Localizer("de-AT"))
//
// Translator.Localizer binds a language and satisfies validator.Localizer.
// Language codes are resolved against the loaded bundles with
// golang.org/x/text/language matching, so regional variants fall back to
// their base language and unknown languages to the default one. Unlike T,
// Localize never substitutes the key for a missing message: it returns an
// error wrapping validator.ErrMessageNotFound.
//
// # HTTP Middleware
//
// Middleware stores the request language in the context; LocalizerFromContext
// reads it back:
//
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(
//		i18n.WithSupportedLanguages(translator.SupportedLanguages()...),
//	)))
package i18n
