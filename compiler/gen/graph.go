package gen

import (
	"fmt"

	"github.com/syssam/quanta/catalog"
)

// Graph holds all validated kinds of a catalog together with the
// operators the relation graph derives for them. A graph that was built
// without an error is consistent: every operator signature resolves to
// exactly one result kind.
type Graph struct {
	*Config

	// Kinds in catalog order.
	Kinds []*Kind
	kinds map[string]*Kind

	// Facts are the normalized product relations.
	Facts []*ProductFact
	facts map[factKey]struct{}

	// Pairs are the reciprocal relations.
	Pairs []*ReciprocalPair

	// Catalog is the source catalog, kept for snapshot generation.
	Catalog *catalog.Catalog
}

// factKey identifies a product fact regardless of factor order.
type factKey struct {
	lo, hi, product string
}

func newFactKey(f *ProductFact) factKey {
	a, b := f.A.Label(), f.B.Label()
	if a > b {
		a, b = b, a
	}
	return factKey{lo: a, hi: b, product: f.Product.Label()}
}

// NewGraph creates a graph for code generation from the given catalog.
// It fails if the catalog cannot produce a consistent quantity package.
func NewGraph(c *Config, cat *catalog.Catalog) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if cat == nil || len(cat.Kinds) == 0 {
		return nil, NewShapeError("", "", "catalog declares no kinds", nil)
	}
	g := &Graph{
		Config:  c,
		Catalog: cat,
		kinds:   make(map[string]*Kind, len(cat.Kinds)),
		facts:   make(map[factKey]struct{}),
	}
	typeNames := make(map[string]string, len(cat.Kinds))
	for _, spec := range cat.Kinds {
		if _, ok := g.kinds[spec.Name]; ok {
			return nil, NewShapeError(spec.Name, "", "declared twice in the catalog", nil)
		}
		k, err := NewKind(c, spec)
		if err != nil {
			return nil, err
		}
		if prev, ok := typeNames[k.Name]; ok {
			return nil, NewShapeError(spec.Name, "",
				fmt.Sprintf("camelizes to Go type %s already taken by kind %s", k.Name, prev), nil)
		}
		typeNames[k.Name] = spec.Name
		g.Kinds = append(g.Kinds, k)
		g.kinds[spec.Name] = k
	}
	idx := newRelationIndex()
	for _, rel := range cat.Relations {
		if err := g.addRelation(idx, rel); err != nil {
			return nil, err
		}
	}
	for _, k := range g.Kinds {
		sortOps(k.Ops)
	}
	return g, nil
}

// addRelation normalizes one catalog relation into a product fact or a
// reciprocal pair and derives its operators. Duplicate declarations of
// the same fact are dropped silently; contradictions fail the build.
func (g *Graph) addRelation(idx *relationIndex, spec *catalog.RelationSpec) error {
	decl := spec.String()
	switch spec.Op {
	case catalog.OpMul:
		if spec.Left == catalog.Scalar || spec.Right == catalog.Scalar {
			return NewRelationError(decl, "", "scalar factors do not change dimension; drop the relation or declare a reciprocal")
		}
		a, err := g.resolve(decl, spec.Left)
		if err != nil {
			return err
		}
		b, err := g.resolve(decl, spec.Right)
		if err != nil {
			return err
		}
		// A * B = scalar means B is the reciprocal of A.
		if spec.Result == catalog.Scalar {
			return g.addPair(a, b, decl)
		}
		product, err := g.resolve(decl, spec.Result)
		if err != nil {
			return err
		}
		return g.addFact(idx, &ProductFact{A: a, B: b, Product: product, decl: decl})
	case catalog.OpDiv:
		switch {
		case spec.Left == catalog.Scalar:
			// scalar / A = B declares a reciprocal pair.
			if spec.Right == catalog.Scalar || spec.Result == catalog.Scalar {
				return NewRelationError(decl, "", "a reciprocal relation needs two concrete kinds")
			}
			a, err := g.resolve(decl, spec.Right)
			if err != nil {
				return err
			}
			b, err := g.resolve(decl, spec.Result)
			if err != nil {
				return err
			}
			return g.addPair(a, b, decl)
		case spec.Right == catalog.Scalar:
			return NewRelationError(decl, "", "dividing by scalar does not change dimension; drop the relation")
		case spec.Result == catalog.Scalar:
			return NewRelationError(decl, "", "a quotient declared dimensionless must be written as a reciprocal, e.g. scalar / time = frequency")
		}
		// A / B = C is the product fact C * B = A.
		a, err := g.resolve(decl, spec.Left)
		if err != nil {
			return err
		}
		b, err := g.resolve(decl, spec.Right)
		if err != nil {
			return err
		}
		quot, err := g.resolve(decl, spec.Result)
		if err != nil {
			return err
		}
		return g.addFact(idx, &ProductFact{A: quot, B: b, Product: a, decl: decl})
	default:
		return NewRelationError(decl, "", fmt.Sprintf("unknown operation %q", spec.Op))
	}
}

func (g *Graph) resolve(decl, name string) (*Kind, error) {
	k, ok := g.kinds[name]
	if !ok {
		return nil, NewRelationError(decl, "", fmt.Sprintf("unknown kind %s", name))
	}
	return k, nil
}

func (g *Graph) addFact(idx *relationIndex, f *ProductFact) error {
	key := newFactKey(f)
	if _, ok := g.facts[key]; ok {
		return nil
	}
	if err := idx.derive(f); err != nil {
		return err
	}
	g.facts[key] = struct{}{}
	g.Facts = append(g.Facts, f)
	return nil
}

func (g *Graph) addPair(a, b *Kind, decl string) error {
	p, err := pair(a, b, decl)
	if err != nil {
		return err
	}
	if p != nil {
		g.Pairs = append(g.Pairs, p)
	}
	return nil
}

// Kind returns the kind with the given catalog name, or nil.
func (g *Graph) Kind(name string) *Kind {
	return g.kinds[name]
}

// Categories returns the catalog categories in first-seen order.
func (g *Graph) Categories() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, k := range g.Kinds {
		c := k.Category()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// KindsOf returns the kinds of one category in catalog order.
func (g *Graph) KindsOf(category string) []*Kind {
	var out []*Kind
	for _, k := range g.Kinds {
		if k.Category() == category {
			out = append(out, k)
		}
	}
	return out
}

// featureEnabled reports whether the feature is enabled in the config.
func (g *Graph) featureEnabled(f Feature) bool {
	enabled, _ := g.Config.FeatureEnabled(f.Name)
	return enabled
}
