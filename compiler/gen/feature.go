package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureSerde provides a feature-flag for JSON and MessagePack codec
	// support on the generated quantity types.
	FeatureSerde = Feature{
		Name:        "serde",
		Stage:       Stable,
		Default:     false,
		Description: "Serde generates JSON and MessagePack encoding helpers for every quantity kind",
		cleanup: func(c *Config) error {
			return removeFile(filepath.Join(c.Target, "codec.go"))
		},
	}

	// FeatureInterop provides a feature-flag for bridging generated types to
	// the gonum unit package.
	FeatureInterop = Feature{
		Name:        "interop",
		Stage:       Beta,
		Default:     false,
		Description: "Interop generates conversion bridges between quantity kinds and gonum.org/v1/gonum/unit types",
		cleanup: func(c *Config) error {
			return removeFile(filepath.Join(c.Target, "gonum.go"))
		},
	}

	// FeatureNumExtended provides a feature-flag for widening the numeric
	// type constraint of the generated package from the float kinds to the
	// complex kinds as well.
	FeatureNumExtended = Feature{
		Name:        "numext",
		Stage:       Alpha,
		Default:     false,
		Description: "NumExtended widens the generated type constraint to complex64 and complex128 storage",
	}

	// FeatureSnapshot stores a snapshot of the compiled catalog inside the
	// generated package so consumers can introspect the data it was built
	// from.
	FeatureSnapshot = Feature{
		Name:        "snapshot",
		Stage:       Experimental,
		Default:     false,
		Description: "Snapshot embeds the compiled catalog and a content-derived run ID in the generated package",
		cleanup: func(c *Config) error {
			return remove(filepath.Join(c.Target, "internal"), "snapshot.go")
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureSerde,
		FeatureInterop,
		FeatureNumExtended,
		FeatureSnapshot,
	}
)

// featureByName resolves a feature-flag from its command line name.
func featureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and actively being tested in
	// the integration environment.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their APIs.
	Alpha

	// Beta features are Alpha features that were added to the project
	// documentation, and no breaking-changes are expected for them.
	Beta

	// Stable features are Beta features that have been running in production
	// codegen pipelines for a while.
	Stable
)

// String returns the lowercase stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the quanta codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// removeFile removes the named file, tolerating its absence.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
