package golang

import (
	"io"
	"testing"

	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
)

func BenchmarkNewGraph_SI(b *testing.B) {
	cat := catalog.SI()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gen.NewGraph(&gen.Config{Package: "units"}, cat); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenKind(b *testing.B) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := genKind(helper, k).Render(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_SI(b *testing.B) {
	cat := catalog.SI()
	dir := b.TempDir()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, err := gen.NewGraph(&gen.Config{Target: dir, Package: "units"}, cat)
		if err != nil {
			b.Fatal(err)
		}
		if err := Generate(g); err != nil {
			b.Fatal(err)
		}
	}
}
