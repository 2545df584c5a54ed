package catalog

// KindBuilder builds a KindSpec through chained calls, ending with Spec.
//
//	catalog.Kind("area").
//		Category("geometry").
//		Description("area (aka surface area)").
//		Canonical("square meters", "m2").
//		DisplaySymbol("m²").
//		Unit("square kilometers", "km2", 1e6).
//		Spec()
type KindBuilder struct {
	spec KindSpec
}

// Kind starts building a kind with the given catalog name.
func Kind(name string) *KindBuilder {
	return &KindBuilder{spec: KindSpec{Name: name}}
}

// Category sets the output file group of the kind.
func (b *KindBuilder) Category(category string) *KindBuilder {
	b.spec.Category = category
	return b
}

// Description sets the doc text of the generated type.
func (b *KindBuilder) Description(description string) *KindBuilder {
	b.spec.Description = description
	return b
}

// Interop names the external library type this kind bridges to under the
// interop feature.
func (b *KindBuilder) Interop(name string) *KindBuilder {
	b.spec.Interop = name
	return b
}

// Canonical declares the canonical unit (scale 1, offset 0) and, when no
// field was declared explicitly, the storage field named after its symbol.
func (b *KindBuilder) Canonical(name, symbol string) *KindBuilder {
	b.spec.Units = append(b.spec.Units, &UnitSpec{
		Name:      name,
		Symbol:    symbol,
		Scale:     1,
		Canonical: true,
	})
	if len(b.spec.Fields) == 0 {
		b.spec.Fields = append(b.spec.Fields, &FieldSpec{Name: symbol})
	}
	return b
}

// DisplaySymbol overrides the display symbol of the most recently added
// unit, e.g. m² for the code symbol m2.
func (b *KindBuilder) DisplaySymbol(display string) *KindBuilder {
	if n := len(b.spec.Units); n > 0 {
		b.spec.Units[n-1].Display = display
	}
	return b
}

// Unit adds a linear unit: canonical = value * scale.
func (b *KindBuilder) Unit(name, symbol string, scale float64) *KindBuilder {
	b.spec.Units = append(b.spec.Units, &UnitSpec{Name: name, Symbol: symbol, Scale: scale})
	return b
}

// UnitAffine adds an affine unit: canonical = value*scale + offset.
// Temperature scales are the only users.
func (b *KindBuilder) UnitAffine(name, symbol string, scale, offset float64) *KindBuilder {
	b.spec.Units = append(b.spec.Units, &UnitSpec{Name: name, Symbol: symbol, Scale: scale, Offset: offset})
	return b
}

// Field declares a storage field explicitly. Calling it more than once
// yields a kind the compiler rejects; that is intentional, loaders and
// tests need to express malformed shapes.
func (b *KindBuilder) Field(name, doc string) *KindBuilder {
	b.spec.Fields = append(b.spec.Fields, &FieldSpec{Name: name, Doc: doc})
	return b
}

// Spec returns the built KindSpec.
func (b *KindBuilder) Spec() *KindSpec {
	return &b.spec
}

// Mul declares left x right = result.
func Mul(left, right, result string) *RelationSpec {
	return &RelationSpec{Left: left, Op: OpMul, Right: right, Result: result}
}

// Div declares left / right = result.
func Div(left, right, result string) *RelationSpec {
	return &RelationSpec{Left: left, Op: OpDiv, Right: right, Result: result}
}

// Reciprocal declares scalar / kind = inverse, the reciprocal pairing
// between two kinds (time and frequency).
func Reciprocal(kind, inverse string) *RelationSpec {
	return &RelationSpec{Left: Scalar, Op: OpDiv, Right: kind, Result: inverse}
}
