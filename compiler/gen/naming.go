package gen

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules      = ruleset()
	titleCaser = cases.Title(language.English)

	// Kind names are lower snake_case so they camelize unambiguously.
	kindNameRx = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

	// Unit symbols keep their case (mA, kWh, MHz) and may use underscores
	// as word separators (earth_mass).
	symbolRx = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(_[A-Za-z0-9]+)*$`)
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"AU", "SI"} {
		rules.AddAcronym(w)
	}
	return rules
}

// typeName camelizes a catalog kind name into the exported Go type name.
func typeName(kind string) string {
	return rules.Camelize(kind)
}

// exportSymbol turns a unit symbol into the exported accessor suffix.
// Unlike Camelize it preserves the inner case of each part, so "mA"
// becomes "MA" and "kWh" becomes "KWh" rather than "Ma" and "Kwh".
func exportSymbol(symbol string) string {
	parts := strings.Split(symbol, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

// receiver returns the method receiver identifier for a type name.
func receiver(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r))
}

// validKindName reports whether the catalog kind name can be camelized
// into a Go type name.
func validKindName(name string) bool {
	return kindNameRx.MatchString(name) && !token.Lookup(name).IsKeyword()
}

// validSymbol reports whether the unit symbol can become an accessor suffix.
func validSymbol(symbol string) bool {
	return symbolRx.MatchString(symbol)
}

// validFieldIdent reports whether the storage field name is usable as a Go
// struct field identifier.
func validFieldIdent(name string) bool {
	if name == "" || token.Lookup(name).IsKeyword() {
		return false
	}
	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// categoryTitle renders a catalog category name for documentation,
// e.g. "electromagnetic" becomes "Electromagnetic".
func categoryTitle(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}
