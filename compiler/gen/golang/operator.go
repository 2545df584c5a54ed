package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// genOperators generates the cross-kind operators the relation graph
// derived for the kind. The graph already rejected every ambiguous
// signature, so each operator maps to exactly one result kind.
func genOperators(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	for _, op := range k.Ops {
		genOperator(h, f, k, op)
	}
}

func genOperator(h gen.BackendHelper, f *jen.File, k *gen.Kind, op *gen.Op) {
	r := k.Receiver()
	p := operandName(k, op.Operand)
	sign := "*"
	if op.Verb == gen.VerbDiv {
		sign = "/"
	}

	f.Commentf("%s returns the %s %s %s %s.", op.MethodName(), op.Result.Name, r, sign, p)
	f.Func().Params(jen.Id(r).Add(instance(k.Name))).Id(op.MethodName()).Params(
		jen.Id(p).Add(instance(op.Operand.Name)),
	).Add(instance(op.Result.Name)).Block(
		jen.Return(instance(op.Result.Name).Values(jen.Dict{
			jen.Id(op.Result.Field.Ident): jen.Id(r).Dot(k.Field.Ident).Op(sign).Id(p).Dot(op.Operand.Field.Ident),
		})),
	)
}

// genReciprocal generates the Inv operator and the package-level Per
// constructors when the kind has a reciprocal partner.
func genReciprocal(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	inv := k.Inverse
	if inv == nil {
		return
	}
	r := k.Receiver()

	f.Commentf("Inv returns the reciprocal %s 1 / %s.", inv.Name, r)
	f.Func().Params(jen.Id(r).Add(instance(k.Name))).Id("Inv").Params().Add(instance(inv.Name)).Block(
		jen.Return(instance(inv.Name).Values(jen.Dict{
			jen.Id(inv.Field.Ident): jen.Id("T").Call(jen.Lit(1)).Op("/").Id(r).Dot(k.Field.Ident),
		})),
	)

	// Per constructors divide a bare scalar by the partner quantity,
	// one per supported numeric parameter type.
	genPer(h, f, k, "", jen.Id("T"), jen.Id("v"))
	for _, m := range primMultipliers {
		genPer(h, f, k, m.suffix, jen.Id(m.prim), primConv(h, m.prim, "v"))
	}
}

// genPer generates one package-level reciprocal constructor, e.g.
// PerTime(v, t) building the frequency v/t.
func genPer(h gen.BackendHelper, f *jen.File, k *gen.Kind, suffix string, param jen.Code, conv *jen.Statement) {
	inv := k.Inverse
	p := operandName(k, inv)
	if p == "v" {
		// The scalar parameter occupies v.
		p = "o"
	}
	name := "Per" + inv.Name + suffix

	f.Commentf("%s constructs %s %s as the scalar v divided by %s.", name, indefinite(k.Name), k.Name, p)
	f.Func().Id(name).Types(typeParam(h)).Params(
		jen.Id("v").Add(param),
		jen.Id(p).Add(instance(inv.Name)),
	).Add(instance(k.Name)).Block(
		jen.Return(instance(k.Name).Values(jen.Dict{
			jen.Id(k.Field.Ident): conv.Op("/").Id(p).Dot(inv.Field.Ident),
		})),
	)
}
