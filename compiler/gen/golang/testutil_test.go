package golang

import (
	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
)

// motion returns a small catalog exercising the whole operator surface:
// a scaled unit, an affine unit, one derived quotient and one reciprocal
// pair.
func motion() *catalog.Catalog {
	return catalog.New("1").
		AddKinds(
			catalog.Kind("distance").
				Category("base").
				Interop("Length").
				Canonical("meters", "m").
				Unit("kilometers", "km", 1000).
				Spec(),
			catalog.Kind("time").
				Category("base").
				Canonical("seconds", "s").
				Spec(),
			catalog.Kind("temperature").
				Category("base").
				Canonical("degrees kelvin", "K").
				UnitAffine("degrees celsius", "C", 1, 273.15).
				Spec(),
			catalog.Kind("velocity").
				Category("mechanical").
				Canonical("meters per second", "mps").
				Spec(),
			catalog.Kind("frequency").
				Category("mechanical").
				Canonical("hertz", "Hz").
				Spec(),
		).
		AddRelations(
			catalog.Div("distance", "time", "velocity"),
			catalog.Reciprocal("time", "frequency"),
		)
}

// newTestGraph compiles the catalog with the given features enabled.
func newTestGraph(c *catalog.Catalog, features ...gen.Feature) *gen.Graph {
	g, err := gen.NewGraph(&gen.Config{
		Package:  "github.com/test/project/units",
		Target:   "/tmp/units",
		Features: features,
	}, c)
	if err != nil {
		panic("newTestGraph: " + err.Error())
	}
	return g
}

// newTestHelper wraps the compiled graph in a real emitter, the
// BackendHelper implementation generation runs with.
func newTestHelper(c *catalog.Catalog, features ...gen.Feature) gen.BackendHelper {
	return gen.NewEmitter(newTestGraph(c, features...), "/tmp/units").WithPackage("units")
}
