// Package i18n translates validation messages.
//
// Translations are grouped by language and addressed with dotted keys that
// walk nested maps. Values may carry "%{name}" placeholders:
//
//	de:
//	  validation:
//	    min_length: "Mindestens %{min} Zeichen"
//
// Translators are loaded through an adapter: MapAdapter for in-memory data,
// FileAdapter for a single JSON or YAML file and FSAdapter for a directory
// of an fs.FS such as an embed.FS.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(i18n.NewYAMLParser(), "messages.yaml"))
//	if err != nil {
//		return err
//	}
//	errs := tr.Errors("de", filter.Errors())
//
// Messages and Errors translate validator output by its TranslationKey and
// TranslationValues. A key missing in the requested language is looked up in
// the default language; a message with no translation keeps its text.
package i18n
