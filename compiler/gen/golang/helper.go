package golang

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// floatLit renders a conversion literal with its shortest round-trip
// representation, keeping scientific notation for the large factors
// (5.9722e+24 instead of the expanded decimal form).
func floatLit(v float64) *jen.Statement {
	return jen.Id(strconv.FormatFloat(v, 'g', -1, 64))
}

// constT converts a conversion literal into the storage type. Constant
// conversions are valid for every constraint member, complex included,
// so the literal strategy does not depend on the numext feature.
func constT(v float64) *jen.Statement {
	return jen.Id("T").Call(floatLit(v))
}

// primConv converts the named primitive parameter into the storage
// type. Under the numext feature the conversion routes through the
// runtime bridge: Go has no conversion from a non-constant float64 to
// a complex type parameter.
func primConv(h gen.BackendHelper, prim, name string) *jen.Statement {
	if !h.FeatureEnabled(gen.FeatureNumExtended.Name) {
		return jen.Id("T").Call(jen.Id(name))
	}
	arg := jen.Id(name)
	if prim != "float64" {
		arg = jen.Float64().Call(jen.Id(name))
	}
	return jen.Qual(h.RuntimePkg(), "FromFloat64").Index(jen.Id("T")).Call(arg)
}

// scalarName returns the scalar parameter identifier, stepping aside
// when the receiver occupies v.
func scalarName(k *gen.Kind) string {
	if k.Receiver() == "v" {
		return "o"
	}
	return "v"
}

// operandName returns the parameter identifier for an operand kind,
// stepping aside when it would collide with the receiver.
func operandName(k, operand *gen.Kind) string {
	name := operand.Receiver()
	if name != k.Receiver() {
		return name
	}
	if k.Receiver() != "o" {
		return "o"
	}
	return "x"
}

// typeParam declares the [T constraint] list of a generated declaration.
func typeParam(h gen.BackendHelper) jen.Code {
	return jen.Id("T").Add(h.NumConstraint())
}

// instance renders the instantiated type {name}[T].
func instance(name string) *jen.Statement {
	return jen.Id(name).Index(jen.Id("T"))
}

// escapePercent doubles format verbs in unit display strings so they
// survive the generated Sprintf call.
func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// indefinite returns the article for a kind name in doc comments
// ("an Amount", "a Distance").
func indefinite(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}
