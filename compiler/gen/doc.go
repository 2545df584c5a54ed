// Package gen compiles quantity catalogs into generated Go source.
//
// The package turns a declarative catalog of quantity kinds, units and
// dimension relations into a package of generic quantity types whose
// arithmetic is checked at compile time.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Catalog (catalog.Catalog: kinds, units, relations)
//	        ↓
//	   Graph (validated kinds + derived operators)
//	        ↓
//	   Backend (language-specific emission)
//	        ↓
//	   Generated code (units/)
//
// # Key Types
//
// The package provides several key types:
//
//   - Graph: Holds all validated kinds and derived operators
//   - Kind: One quantity kind with its storage field and units
//   - Unit: A unit of measure with its conversion literals
//   - Op: A derived cross-kind operator (receiver, verb, operand, result)
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
// The backend interfaces follow the Interface Segregation Principle:
//
//	MinimalBackend (basic backend support)
//	├── Name() string
//	└── KindGenerator (per-kind code)
//	    └── GenKind
//
//	Backend (full interface, extends MinimalBackend)
//	└── FeatureGenerator (feature detection and generation)
//
// Custom backends can implement MinimalBackend for basic support, or
// Backend for feature support. The emitter detects the optional
// capabilities by type assertion.
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - ShapeError: Catalog record shape errors
//   - ConversionError: Unusable unit conversion literals
//   - RelationError: Inconsistent dimension relations
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//
// Example error handling:
//
//	graph, err := gen.NewGraph(config, cat)
//	if err != nil {
//	    if gen.IsRelationError(err) {
//	        // Handle relation-specific error
//	    }
//	    return err
//	}
//
// All of them are fatal: a catalog that does not validate produces no
// output at all.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./units"),
//	    gen.WithPackage("github.com/org/project/units"),
//	    gen.WithFeatures(gen.FeatureSerde, gen.FeatureInterop),
//	)
//
// # Usage
//
// The recommended way to generate code is through the golang package:
//
//	import "github.com/syssam/quanta/compiler/gen/golang"
//
//	err := golang.Generate(graph)
//
// Or manually configure the emitter:
//
//	import (
//	    "github.com/syssam/quanta/compiler/gen"
//	    "github.com/syssam/quanta/compiler/gen/golang"
//	)
//
//	e := gen.NewEmitter(graph, outDir).WithWorkers(4)
//	e.WithBackend(golang.NewBackend(e))
//	err := e.Generate(ctx)
//
// # Generated Output
//
// The emitter produces the following structure:
//
//	{output}/
//	├── doc.go              // Package documentation (template writer)
//	├── {kind}.go           // One file per quantity kind
//	├── codec.go            // JSON/MessagePack helpers (serde feature)
//	├── gonum.go            // gonum unit bridges (interop feature)
//	└── internal/
//	    └── snapshot.go     // Catalog snapshot (snapshot feature)
package gen
