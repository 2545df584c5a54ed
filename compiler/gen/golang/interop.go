package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// gonumPkg is the import path of the gonum unit package the interop
// bridges target.
const gonumPkg = "gonum.org/v1/gonum/unit"

// gonumTypes lists the gonum unit types a catalog may bridge to. The
// bridge converts through the canonical SI value, so only kinds whose
// canonical unit is the SI base unit of the matching dimension may
// declare one of these.
var gonumTypes = map[string]bool{
	"Length":            true,
	"Mass":              true,
	"Time":              true,
	"Temperature":       true,
	"Mole":              true,
	"Current":           true,
	"LuminousIntensity": true,
}

// validateInterop rejects catalogs that bridge to a gonum type the
// generator does not know.
func validateInterop(g *gen.Graph) error {
	for _, k := range g.Kinds {
		name := k.InteropType()
		if name == "" || gonumTypes[name] {
			continue
		}
		return gen.NewShapeError(k.Label(), "", fmt.Sprintf("unknown gonum unit type %s", name), nil)
	}
	return nil
}

// genInterop generates gonum.go with conversions between generated
// kinds and their gonum unit counterparts. This is part of the interop
// feature.
func genInterop(h gen.BackendHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	f.ImportName(gonumPkg, "unit")

	for _, k := range h.Graph().Kinds {
		if k.InteropType() == "" {
			continue
		}
		genKindInterop(h, f, k)
	}
	return f
}

// genKindInterop generates the two bridge functions of one kind. Both
// directions pass through the canonical value, so no unit conversion
// happens here.
func genKindInterop(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	r := k.Receiver()
	foreign := jen.Qual(gonumPkg, k.InteropType())

	f.Commentf("ToGonum returns the quantity as a gonum unit.%s.", k.InteropType())
	f.Func().Params(jen.Id(r).Add(instance(k.Name))).Id("ToGonum").Params().Add(foreign.Clone()).Block(
		jen.Return(foreign.Clone().Call(jen.Float64().Call(jen.Id(r).Dot(k.Field.Ident)))),
	)

	f.Commentf("%sFromGonum converts a gonum unit.%s into %s %s.", k.Name, k.InteropType(), indefinite(k.Name), k.Name)
	f.Func().Id(k.Name+"FromGonum").Types(typeParam(h)).Params(
		jen.Id("v").Add(foreign.Clone()),
	).Add(instance(k.Name)).Block(
		jen.Return(instance(k.Name).Values(jen.Dict{
			jen.Id(k.Field.Ident): jen.Id("T").Call(jen.Id("v")),
		})),
	)
}
