package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CrateIdent returns the identifier Rust code uses to refer to the library
// crate. Cargo maps hyphens in target names to underscores, so we do too.
func CrateIdent(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// TypeName derives an UpperCamelCase type name from an application name:
// "test_app" becomes "TestApp", "my-tool" becomes "MyTool". Segments are
// split on underscores and hyphens; the rest of each segment is kept as is.
// The result always starts with a letter, so "_1x" becomes "App1X".
func TypeName(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	// Casers are stateful, so each call gets its own.
	titler := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(titler.String(s))
	}
	out := b.String()
	if out == "" || !unicode.IsLetter(rune(out[0])) {
		return "App" + out
	}
	return out
}
