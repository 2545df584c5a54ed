// Package golang emits the Go quantity package for a compiled catalog.
//
// This package implements the gen.Backend interface on top of the
// Jennifer emitter.
//
// Usage:
//
//	import (
//	    "github.com/syssam/quanta/compiler/gen"
//	    "github.com/syssam/quanta/compiler/gen/golang"
//	)
//
//	e := gen.NewEmitter(graph, outDir)
//	backend := golang.NewBackend(e)
//	e.WithBackend(backend)
//	e.Generate(ctx)
//
// Generated code structure:
//
//	{output}/
//	├── doc.go              # Package documentation
//	├── {kind}.go           # Quantity struct, unit accessors, operators
//	├── codec.go            # JSON and MessagePack helpers (serde feature)
//	├── gonum.go            # gonum/unit bridges (interop feature)
//	└── internal/
//	    └── snapshot.go     # Catalog snapshot (snapshot feature)
package golang

import (
	"context"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// Generate is a convenience function to generate the quantity package
// for the given graph. This is the recommended entry point.
//
// The function applies hooks registered in g.Config.Hooks around the
// whole generation, runs the Jennifer emitter for the per-kind and
// feature files, and finally renders the template-based support files.
//
// Example:
//
//	import "github.com/syssam/quanta/compiler/gen/golang"
//	err := golang.Generate(graph)
func Generate(g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := validateFeatures(g); err != nil {
		return err
	}

	base := gen.GenerateFunc(func(g *gen.Graph) error {
		e := gen.NewEmitter(g, g.Config.Target)
		if g.Config.Package != "" {
			e.WithPackage(g.PackageName())
		}
		if g.Config.Workers > 0 {
			e.WithWorkers(g.Config.Workers)
		}
		e.WithBackend(NewBackend(e))
		if err := e.Generate(context.Background()); err != nil {
			return err
		}
		return gen.GenerateSupport(g)
	})

	// Apply hooks in reverse order so the first registered hook wraps
	// the whole chain and observes the generation first.
	var generator gen.Generator = base
	for i := len(g.Config.Hooks) - 1; i >= 0; i-- {
		generator = g.Config.Hooks[i](generator)
	}

	return generator.Generate(g)
}

// validateFeatures rejects feature combinations the Go backend cannot
// express. The complex storage types have no float64 bridge, so the
// codec and interop features require the float constraint.
func validateFeatures(g *gen.Graph) error {
	numext, _ := g.Config.FeatureEnabled(gen.FeatureNumExtended.Name)
	if numext {
		for _, name := range []string{gen.FeatureSerde.Name, gen.FeatureInterop.Name} {
			if on, _ := g.Config.FeatureEnabled(name); on {
				return gen.NewConfigError("Features", name,
					fmt.Sprintf("feature %s requires float storage; disable %s", name, gen.FeatureNumExtended.Name))
			}
		}
	}
	if on, _ := g.Config.FeatureEnabled(gen.FeatureInterop.Name); on {
		if err := validateInterop(g); err != nil {
			return err
		}
	}
	return nil
}

// Backend implements gen.Backend for Go output. It emits one file per
// quantity kind plus one file per enabled feature.
type Backend struct {
	helper gen.BackendHelper
}

// NewBackend creates a new Go backend.
// The helper parameter is usually a *gen.Emitter.
func NewBackend(helper gen.BackendHelper) *Backend {
	return &Backend{helper: helper}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "golang"
}

// GenKind generates the quantity file for one kind ({kind}.go).
// Includes: quantity struct, unit constructors and accessors, scalar
// arithmetic, cross-kind operators and the reciprocal operator.
func (b *Backend) GenKind(k *gen.Kind) *jen.File {
	return genKind(b.helper, k)
}

// SupportsFeature reports if the feature is supported by the Go backend.
func (b *Backend) SupportsFeature(feature string) bool {
	switch feature {
	case gen.FeatureSerde.Name, gen.FeatureInterop.Name, gen.FeatureSnapshot.Name:
		return true
	default:
		return false
	}
}

// GenFeature generates the file of one feature.
func (b *Backend) GenFeature(feature string) *jen.File {
	switch feature {
	case gen.FeatureSerde.Name:
		return genCodec(b.helper)
	case gen.FeatureInterop.Name:
		return genInterop(b.helper)
	case gen.FeatureSnapshot.Name:
		return genSnapshot(b.helper)
	default:
		return nil
	}
}

// Verify Backend implements gen.Backend at compile time.
var _ gen.Backend = (*Backend)(nil)
