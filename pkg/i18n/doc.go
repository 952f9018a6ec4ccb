// Package i18n loads translation catalogs and resolves keys per language.
//
// Catalogs are nested maps keyed by language at the top level and looked up
// with dot-separated keys:
//
//	en:
//	  validation:
//	    required: "The %{attribute} field is required."
//	  attributes:
//	    email: "e-mail address"
//
// Load them through an adapter and bind the translator to a language:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(os.DirFS("lang")),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	loc := tr.For("en")
//	loc.Translate("attributes.email") // "e-mail address"
//	loc.Translate("unknown.key")      // "unknown.key"
//
// A Localizer returns the key unchanged when no translation exists. Callers
// use that to detect a missing translation.
//
// Middleware negotiates the language from the "lang" query parameter or the
// Accept-Language header (golang.org/x/text/language matching) and stores it
// in the request context for ForContext.
package i18n
