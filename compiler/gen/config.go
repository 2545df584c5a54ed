package gen

import (
	"path/filepath"
	"strings"
)

// Config holds the global codegen configuration shared by the graph and
// every emitter that works on it.
type Config struct {
	// Header allows setting a comment placed at the top of every generated
	// file. If empty, the default "Code generated by quanta" header is used.
	Header string

	// Package is the Go package path of the generated quantity package.
	Package string

	// Target is the filesystem directory that generated files are written to.
	Target string

	// Features carries the opt-in codegen features enabled for this run.
	Features []Feature

	// Workers bounds the number of concurrent emission goroutines.
	// Zero means one goroutine per quantity kind.
	Workers int

	// Templates carries custom templates executed on the graph in
	// addition to the built-in support templates.
	Templates []*Template

	// Hooks wrap the generation phase. They are chained so the first
	// hook wraps the call outermost and therefore runs first.
	Hooks []Hook
}

// Generator is the interface that wraps the Generate method.
type Generator interface {
	// Generate emits the artifacts for the given relation graph.
	Generate(*Graph) error
}

// GenerateFunc allows an ordinary function to be used as a Generator.
type GenerateFunc func(*Graph) error

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// Hook decorates a Generator with additional behavior, for example
// logging or timing the run.
type Hook func(Generator) Generator

// FeatureEnabled reports whether the named feature is enabled in the
// configuration. Unknown feature names are rejected.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := featureByName(name); !ok {
		return false, NewConfigError("features", name, "unknown feature name")
	}
	for _, f := range c.Features {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// PackageName returns the trailing element of the configured package
// path, which is the package identifier generated files declare. It
// falls back to the target directory name when no package path is set.
func (c *Config) PackageName() string {
	pkg := c.Package
	if pkg == "" {
		return filepath.Base(c.Target)
	}
	if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
		return pkg[i+1:]
	}
	return pkg
}
