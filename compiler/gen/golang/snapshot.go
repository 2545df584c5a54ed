package golang

import (
	"github.com/dave/jennifer/jen"
	"github.com/google/uuid"

	"github.com/syssam/quanta"
	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
)

// genSnapshot generates internal/snapshot.go embedding the catalog the
// run was generated from. The snapshot lets later runs and debugging
// tools reconstruct the exact generator input without the original
// catalog file. This is part of the snapshot feature.
func genSnapshot(h gen.BackendHelper) *jen.File {
	f := h.NewFile("internal")
	f.PackageComment("Package internal holds the catalog snapshot of the latest generation run.")

	catalogPkg := h.RuntimePkg() + "/catalog"
	f.ImportName(catalogPkg, "catalog")

	data, _ := catalog.MarshalCatalog(h.Graph().Catalog)
	runID := uuid.NewSHA1(uuid.NameSpaceOID, data)

	f.Comment("CatalogJSON is the catalog this package was generated from, encoded as JSON.")
	f.Const().Id("CatalogJSON").Op("=").Lit(string(data))

	f.Comment("GeneratorVersion is the quanta version that produced this package.")
	f.Const().Id("GeneratorVersion").Op("=").Lit(quanta.Version)

	f.Comment("RunID identifies the generation run. It is derived from the catalog,")
	f.Comment("so regenerating from an unchanged catalog yields the same ID.")
	f.Const().Id("RunID").Op("=").Lit(runID.String())

	f.Comment("Catalog decodes the embedded catalog snapshot.")
	f.Func().Id("Catalog").Params().Params(
		jen.Op("*").Qual(catalogPkg, "Catalog"),
		jen.Error(),
	).Block(
		jen.Return(jen.Qual(catalogPkg, "UnmarshalCatalog").Call(
			jen.Index().Byte().Call(jen.Id("CatalogJSON")),
		)),
	)
	return f
}
