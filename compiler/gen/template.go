package gen

import (
	"strings"
	"sync"
	"text/template"
)

// Template wraps text/template with the codegen helper functions
// attached. Custom templates extend the generated package with
// project-specific files; they are executed on the graph and written
// next to the generated code.
type Template struct {
	*template.Template
}

// NewTemplate creates an empty template with the helper functions attached.
func NewTemplate(name string) *Template {
	t := &Template{}
	funcs := template.FuncMap{
		"lower":         strings.ToLower,
		"title":         categoryTitle,
		"defaultHeader": func() string { return DefaultHeader },
	}
	t.Template = template.New(name).Funcs(funcs)
	return t
}

// Parse parses text as a template body for t.
func (t *Template) Parse(text string) (*Template, error) {
	if _, err := t.Template.Parse(text); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is like Parse but panics on error. It simplifies declaring
// package-level templates.
func MustParse(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// GraphTemplate is a template executed on the whole graph whose output
// is written to its own file.
type GraphTemplate struct {
	// Name of the defined template block.
	Name string
	// Format is the output file path relative to the target directory.
	Format string
	// Skip reports whether the template is skipped for the given graph.
	Skip func(*Graph) bool
}

// graphTemplates are the built-in graph-level templates.
var graphTemplates = []GraphTemplate{
	{Name: "doc", Format: "doc.go"},
}

var (
	templates *Template
	initOnce  sync.Once
)

// initTemplates parses the built-in templates once.
func initTemplates() {
	initOnce.Do(func() {
		templates = MustParse(NewTemplate("templates").Parse(docTemplate))
	})
}

// docTemplate renders the package documentation file listing every
// generated kind grouped by catalog category.
const docTemplate = `{{ define "doc" }}// {{ or $.Config.Header defaultHeader }}

// Package {{ $.PackageName }} provides compile-time dimension-checked
// physical quantity types generated from a unit catalog.
//
// Quantities are grouped by category:
//
{{- range $c := $.Categories }}
// {{ title $c }}:
{{- range $k := $.KindsOf $c }}
//   - {{ $k.Name }}, stored in {{ $k.Canonical.Name }} ({{ $k.Canonical.Display }})
{{- end }}
//
{{- end }}
// Arithmetic between kinds follows the catalog's dimension relations;
// operators that change dimension return the derived kind.
package {{ $.PackageName }}
{{ end }}`
