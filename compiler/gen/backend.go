package gen

import "github.com/dave/jennifer/jen"

// KindGenerator generates per-kind code.
// GenKind is called once per quantity kind in the graph.
type KindGenerator interface {
	// GenKind generates the quantity type file ({kind}.go)
	GenKind(k *Kind) *jen.File
}

// FeatureGenerator generates feature-specific code.
type FeatureGenerator interface {
	// SupportsFeature checks if the backend supports a feature
	SupportsFeature(feature string) bool
	// GenFeature generates feature-specific code
	GenFeature(feature string) *jen.File
}

// MinimalBackend requires only per-kind generation.
// This is the minimum interface a backend must implement.
type MinimalBackend interface {
	// Name returns the backend name (e.g., "golang")
	Name() string
	KindGenerator
}

// Backend is the full backend interface. Backends may implement
// MinimalBackend only; feature capabilities are detected by the emitter
// via type assertion.
type Backend interface {
	MinimalBackend
	FeatureGenerator
}

// BackendHelper provides helper methods for backend implementations.
// Emitter implements this interface, allowing backend packages to use
// helper methods without importing the full emitter.
type BackendHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// NumConstraint returns the Jennifer code of the numeric constraint
	// the generated types are parameterized over. It widens from NumLike
	// to NumExtended when the numext feature is enabled.
	NumConstraint() jen.Code

	// RuntimePkg returns the import path of the quanta runtime package.
	RuntimePkg() string

	// Graph returns the compiled relation graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
