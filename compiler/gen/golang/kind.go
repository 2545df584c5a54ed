package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// genKind generates the quantity file for one kind ({kind}.go).
func genKind(h gen.BackendHelper, k *gen.Kind) *jen.File {
	f := h.NewFile(h.Pkg())

	genKindStruct(h, f, k)

	// One constructor and one accessor per unit, catalog order.
	for _, u := range k.Units {
		genFromUnit(h, f, k, u)
		genToUnit(h, f, k, u)
	}

	genUnitInfo(h, f, k)
	genScalarOps(h, f, k)
	genOperators(h, f, k)
	genReciprocal(h, f, k)

	return f
}

// genKindStruct generates the quantity struct with its storage field.
func genKindStruct(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	f.Comment(k.Description())
	f.Type().Id(k.Name).Types(typeParam(h)).StructFunc(func(g *jen.Group) {
		doc := k.Field.Doc
		if doc == "" {
			doc = fmt.Sprintf("%s is the quantity expressed in %s.", k.Field.Ident, k.Canonical.Name)
		}
		g.Comment(doc)
		g.Id(k.Field.Ident).Id("T").Tag(map[string]string{
			"json":    k.Field.Name,
			"msgpack": k.Field.Name,
		})
	})
}

// genFromUnit generates the package-level constructor of one unit.
func genFromUnit(h gen.BackendHelper, f *jen.File, k *gen.Kind, u *gen.Unit) {
	name := k.Name + "From" + u.Accessor
	f.Commentf("%s constructs %s %s from a value in %s.", name, indefinite(k.Name), k.Name, u.Name)
	f.Func().Id(name).Types(typeParam(h)).Params(jen.Id("v").Id("T")).Add(instance(k.Name)).Block(
		jen.Return(instance(k.Name).Values(jen.Dict{
			jen.Id(k.Field.Ident): toCanonicalExpr(u),
		})),
	)
}

// toCanonicalExpr renders the canonical value of the unit value v,
// following canonical = v*scale + offset. Identity factors are elided.
func toCanonicalExpr(u *gen.Unit) *jen.Statement {
	expr := jen.Id("v")
	if u.Scale != 1 {
		expr.Op("*").Add(constT(u.Scale))
	}
	if u.Offset != 0 {
		expr.Op("+").Add(constT(u.Offset))
	}
	return expr
}

// genToUnit generates the accessor returning the quantity in one unit.
func genToUnit(h gen.BackendHelper, f *jen.File, k *gen.Kind, u *gen.Unit) {
	name := "To" + u.Accessor
	f.Commentf("%s returns the quantity expressed in %s.", name, u.Name)
	f.Func().Params(jen.Id(k.Receiver()).Add(instance(k.Name))).Id(name).Params().Id("T").Block(
		jen.Return(fromCanonicalExpr(k, u)),
	)
}

// fromCanonicalExpr renders the unit value of the stored canonical
// quantity, following value = (canonical - offset) / scale.
func fromCanonicalExpr(k *gen.Kind, u *gen.Unit) *jen.Statement {
	stored := jen.Id(k.Receiver()).Dot(k.Field.Ident)
	switch {
	case u.Identity():
		return stored
	case u.Offset == 0:
		return stored.Op("/").Add(constT(u.Scale))
	case u.Scale == 1:
		return stored.Op("-").Add(constT(u.Offset))
	default:
		return jen.Parens(stored.Op("-").Add(constT(u.Offset))).Op("/").Add(constT(u.Scale))
	}
}

// genUnitInfo generates the canonical unit metadata and String.
func genUnitInfo(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	f.Commentf("UnitName returns the canonical unit name of %s.", k.Name)
	f.Func().Params(instance(k.Name)).Id("UnitName").Params().String().Block(
		jen.Return(jen.Lit(k.Canonical.Name)),
	)

	f.Commentf("UnitSymbol returns the canonical unit symbol of %s, e.g. %q.", k.Name, k.Canonical.Display)
	f.Func().Params(instance(k.Name)).Id("UnitSymbol").Params().String().Block(
		jen.Return(jen.Lit(k.Canonical.Display)),
	)

	f.Comment("String formats the quantity with its canonical unit symbol.")
	f.Func().Params(jen.Id(k.Receiver()).Add(instance(k.Name))).Id("String").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("%v "+escapePercent(k.Canonical.Display)),
			jen.Id(k.Receiver()).Dot(k.Field.Ident),
		)),
	)
}
