package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// primMultiplier describes one primitive scaling method (MulF64 etc.).
type primMultiplier struct {
	suffix string
	prim   string
}

// primMultipliers are the primitive factor types every kind can be
// scaled by without converting the factor manually.
var primMultipliers = []primMultiplier{
	{"F64", "float64"},
	{"F32", "float32"},
	{"Int", "int"},
	{"I64", "int64"},
}

// genScalarOps generates the dimension-preserving arithmetic of a kind:
// same-kind addition and subtraction, scalar scaling, the dimensionless
// ratio and negation.
func genScalarOps(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	r, ident := k.Receiver(), k.Field.Ident
	s := scalarName(k)

	valueRecv := func() *jen.Statement { return jen.Id(r).Add(instance(k.Name)) }
	ptrRecv := func() *jen.Statement { return jen.Id(r).Op("*").Add(instance(k.Name)) }
	wrap := func(expr jen.Code) jen.Code {
		return instance(k.Name).Values(jen.Dict{jen.Id(ident): expr})
	}

	f.Commentf("Add returns the sum %s + o.", r)
	f.Func().Params(valueRecv()).Id("Add").Params(jen.Id("o").Add(instance(k.Name))).Add(instance(k.Name)).Block(
		jen.Return(wrap(jen.Id(r).Dot(ident).Op("+").Id("o").Dot(ident))),
	)

	f.Commentf("AddAssign accumulates o into %s.", r)
	f.Func().Params(ptrRecv()).Id("AddAssign").Params(jen.Id("o").Add(instance(k.Name))).Block(
		jen.Id(r).Dot(ident).Op("+=").Id("o").Dot(ident),
	)

	f.Commentf("Sub returns the difference %s - o.", r)
	f.Func().Params(valueRecv()).Id("Sub").Params(jen.Id("o").Add(instance(k.Name))).Add(instance(k.Name)).Block(
		jen.Return(wrap(jen.Id(r).Dot(ident).Op("-").Id("o").Dot(ident))),
	)

	f.Commentf("SubAssign subtracts o from %s.", r)
	f.Func().Params(ptrRecv()).Id("SubAssign").Params(jen.Id("o").Add(instance(k.Name))).Block(
		jen.Id(r).Dot(ident).Op("-=").Id("o").Dot(ident),
	)

	f.Commentf("Mul returns %s scaled by %s.", r, s)
	f.Func().Params(valueRecv()).Id("Mul").Params(jen.Id(s).Id("T")).Add(instance(k.Name)).Block(
		jen.Return(wrap(jen.Id(r).Dot(ident).Op("*").Id(s))),
	)

	f.Commentf("MulAssign scales %s in place.", r)
	f.Func().Params(ptrRecv()).Id("MulAssign").Params(jen.Id(s).Id("T")).Block(
		jen.Id(r).Dot(ident).Op("*=").Id(s),
	)

	f.Commentf("Div returns %s divided by the scalar %s.", r, s)
	f.Func().Params(valueRecv()).Id("Div").Params(jen.Id(s).Id("T")).Add(instance(k.Name)).Block(
		jen.Return(wrap(jen.Id(r).Dot(ident).Op("/").Id(s))),
	)

	f.Commentf("DivAssign divides %s in place.", r)
	f.Func().Params(ptrRecv()).Id("DivAssign").Params(jen.Id(s).Id("T")).Block(
		jen.Id(r).Dot(ident).Op("/=").Id(s),
	)

	f.Commentf("Ratio returns the dimensionless ratio %s / o.", r)
	f.Func().Params(valueRecv()).Id("Ratio").Params(jen.Id("o").Add(instance(k.Name))).Id("T").Block(
		jen.Return(jen.Id(r).Dot(ident).Op("/").Id("o").Dot(ident)),
	)

	f.Commentf("Neg returns %s with its sign flipped.", r)
	f.Func().Params(valueRecv()).Id("Neg").Params().Add(instance(k.Name)).Block(
		jen.Return(wrap(jen.Op("-").Id(r).Dot(ident))),
	)

	for _, m := range primMultipliers {
		f.Commentf("Mul%s returns %s scaled by the %s factor %s.", m.suffix, r, m.prim, s)
		f.Func().Params(valueRecv()).Id("Mul" + m.suffix).Params(jen.Id(s).Id(m.prim)).Add(instance(k.Name)).Block(
			jen.Return(wrap(jen.Id(r).Dot(ident).Op("*").Add(primConv(h, m.prim, s)))),
		)
	}
}
