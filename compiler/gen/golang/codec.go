package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/quanta/compiler/gen"
)

// msgpackPkg is the import path of the MessagePack codec the generated
// methods are built on.
const msgpackPkg = "github.com/vmihailenco/msgpack/v5"

// genCodec generates codec.go with JSON and MessagePack methods for
// every kind. On the wire a quantity is its canonical-unit value, a
// bare number. This is part of the serde feature.
func genCodec(h gen.BackendHelper) *jen.File {
	f := h.NewFile(h.Pkg())
	f.ImportName("encoding/json", "json")
	f.ImportName(msgpackPkg, "msgpack")

	for _, k := range h.Graph().Kinds {
		genKindCodec(h, f, k)
	}
	return f
}

// genKindCodec generates the four codec methods of one kind.
func genKindCodec(h gen.BackendHelper, f *jen.File, k *gen.Kind) {
	r, ident := k.Receiver(), k.Field.Ident

	f.Commentf("MarshalJSON encodes the %s as its value in %s.", k.Name, k.Canonical.Name)
	f.Func().Params(jen.Id(r).Add(instance(k.Name))).Id("MarshalJSON").Params().Params(
		jen.Index().Byte(), jen.Error(),
	).Block(
		jen.Return(jen.Qual("encoding/json", "Marshal").Call(jen.Id(r).Dot(ident))),
	)

	f.Commentf("UnmarshalJSON decodes a value in %s into the %s.", k.Canonical.Name, k.Name)
	f.Func().Params(jen.Id(r).Op("*").Add(instance(k.Name))).Id("UnmarshalJSON").Params(
		jen.Id("data").Index().Byte(),
	).Error().Block(
		jen.Return(jen.Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id(r).Dot(ident))),
	)

	f.Commentf("EncodeMsgpack encodes the %s as its value in %s.", k.Name, k.Canonical.Name)
	f.Func().Params(jen.Id(r).Add(instance(k.Name))).Id("EncodeMsgpack").Params(
		jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder"),
	).Error().Block(
		jen.Return(jen.Id("enc").Dot("Encode").Call(jen.Id(r).Dot(ident))),
	)

	f.Commentf("DecodeMsgpack decodes a value in %s into the %s.", k.Canonical.Name, k.Name)
	f.Func().Params(jen.Id(r).Op("*").Add(instance(k.Name))).Id("DecodeMsgpack").Params(
		jen.Id("dec").Op("*").Qual(msgpackPkg, "Decoder"),
	).Error().Block(
		jen.Return(jen.Id("dec").Dot("Decode").Call(jen.Op("&").Id(r).Dot(ident))),
	)
}
