// Package i18n provides message catalogs used to render validation issues in
// different languages.
//
// A Catalog is loaded once through an Adapter (MapAdapter for in-memory data,
// FSAdapter for YAML/JSON files in any fs.FS) and is read-only afterwards.
// Templates are addressed with dot-separated keys and use "%{name}"
// placeholders:
//
//	en:
//	  schema:
//	    min_length: "Value must be at least %{min} characters long"
//
// Requested languages are matched against the loaded ones with
// golang.org/x/text/language, so "de-AT" or a full Accept-Language value
// resolves to "de"; anything unmatched resolves to the default language.
//
// # Usage
//
//	catalog, err := i18n.Default(ctx)
//	if err != nil {
//	    return err
//	}
//	res := userSchema.Validate(input)
//	msgs := schema.Localize(res.Issues, catalog, "de-DE")
//
// Default bundles English and German messages for every schema issue code.
package i18n
