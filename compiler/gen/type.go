package gen

import (
	"fmt"
	"math"
	"strings"

	"github.com/syssam/quanta/catalog"
)

// The following types and their exported methods are used by the codegen
// to generate the assets.
type (
	// Kind represents one quantity kind of the catalog: a validated
	// storage field, a canonical unit, the conversion units, and the
	// cross-kind operators derived from the relation graph.
	Kind struct {
		*Config
		spec *catalog.KindSpec
		// Name holds the exported Go type name, e.g. "Distance".
		Name string
		// Field holds the single storage field of the quantity struct.
		// It carries the quantity expressed in the canonical unit.
		Field *Field
		// Canonical is the unit the storage field is expressed in.
		Canonical *Unit
		// Units holds all units in catalog order, canonical included.
		Units []*Unit
		// Ops holds the cross-kind operators with this kind as the
		// receiver, sorted for deterministic emission.
		Ops []*Op
		// Inverse is set when a reciprocal relation pairs this kind with
		// another, e.g. Frequency for Time and Time for Frequency.
		Inverse *Kind
	}

	// Field is the storage field of a generated quantity struct.
	Field struct {
		// Name as declared in the catalog, e.g. "m". Codec tags use it.
		Name string
		// Ident is the exported Go field name, e.g. "M".
		Ident string
		// Doc is an optional doc comment for the field.
		Doc string
	}

	// Unit is a unit of measure attached to a quantity kind. Conversion
	// follows canonical = value*Scale + Offset, and its inverse
	// value = (canonical - Offset) / Scale.
	Unit struct {
		// Name is the human readable unit name, e.g. "kilometers".
		Name string
		// Symbol is the catalog symbol, e.g. "km". Symbols keep their case.
		Symbol string
		// Accessor is the exported suffix used by generated accessors,
		// e.g. "Km" producing DistanceFromKm and ToKm.
		Accessor string
		// Display is the symbol used by String, e.g. "m²" for "m2".
		Display string
		// Scale and Offset are the conversion literals to the canonical unit.
		Scale  float64
		Offset float64
		// Canonical marks the unit the storage field is expressed in.
		Canonical bool
	}
)

// Affine reports whether converting this unit needs an offset term.
func (u *Unit) Affine() bool {
	return u.Offset != 0
}

// Identity reports whether conversion through this unit is a no-op.
func (u *Unit) Identity() bool {
	return u.Scale == 1 && u.Offset == 0
}

// reservedIdents holds identifiers the emitters attach to every generated
// quantity type. Storage fields and unit accessors must not shadow them.
var reservedIdents = names(
	"Add",
	"AddAssign",
	"DecodeMsgpack",
	"Div",
	"DivAssign",
	"EncodeMsgpack",
	"Inv",
	"MarshalJSON",
	"Mul",
	"MulAssign",
	"MulF32",
	"MulF64",
	"MulI64",
	"MulInt",
	"Neg",
	"Ratio",
	"String",
	"Sub",
	"SubAssign",
	"ToGonum",
	"UnitName",
	"UnitSymbol",
	"UnmarshalJSON",
)

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

// NewKind validates one catalog kind and builds its generator model.
// The returned kind carries no operators yet; the graph attaches them
// after all kinds are known.
func NewKind(c *Config, spec *catalog.KindSpec) (*Kind, error) {
	if spec == nil {
		return nil, NewShapeError("", "", "nil kind record", nil)
	}
	if !validKindName(spec.Name) {
		return nil, NewShapeError(spec.Name, "", "kind name must be lower snake_case and not a Go keyword", nil)
	}
	k := &Kind{
		Config: c,
		spec:   spec,
		Name:   typeName(spec.Name),
	}
	if err := k.setField(spec); err != nil {
		return nil, err
	}
	if err := k.setUnits(spec); err != nil {
		return nil, err
	}
	return k, nil
}

// setField validates the record shape: exactly one named storage field.
func (k *Kind) setField(spec *catalog.KindSpec) error {
	switch n := len(spec.Fields); {
	case n == 0:
		return NewShapeError(spec.Name, "", "declares no storage field; exactly one named numeric field is required", nil)
	case n > 1:
		fields := make([]string, n)
		for i, f := range spec.Fields {
			fields[i] = f.Name
		}
		return NewShapeError(spec.Name, strings.Join(fields, ", "),
			fmt.Sprintf("declares %d storage fields; exactly one named numeric field is required", n), nil)
	}
	f := spec.Fields[0]
	if f.Name == "" {
		return NewShapeError(spec.Name, "", "declares an unnamed storage field; the field must carry a name", nil)
	}
	if !validFieldIdent(f.Name) {
		return NewShapeError(spec.Name, f.Name, "storage field name is not usable as a Go identifier", nil)
	}
	ident := exportSymbol(f.Name)
	if _, ok := reservedIdents[ident]; ok {
		return NewShapeError(spec.Name, f.Name,
			fmt.Sprintf("storage field would shadow the generated %s method", ident), nil)
	}
	k.Field = &Field{Name: f.Name, Ident: ident, Doc: f.Doc}
	return nil
}

// setUnits validates the unit table: every conversion literal usable,
// exactly one canonical unit, and no two units sharing an accessor.
func (k *Kind) setUnits(spec *catalog.KindSpec) error {
	if len(spec.Units) == 0 {
		return NewShapeError(spec.Name, "", "declares no units; at least the canonical unit is required", nil)
	}
	taken := make(map[string]string, len(spec.Units))
	for _, us := range spec.Units {
		u, err := newUnit(spec.Name, us)
		if err != nil {
			return err
		}
		if prev, ok := taken[u.Accessor]; ok {
			return NewShapeError(spec.Name, u.Symbol,
				fmt.Sprintf("unit maps to accessor %s already taken by unit %s", u.Accessor, prev), nil)
		}
		taken[u.Accessor] = u.Symbol
		if _, ok := reservedIdents[u.Accessor]; ok {
			return NewShapeError(spec.Name, u.Symbol,
				fmt.Sprintf("unit accessor %s would shadow a generated method", u.Accessor), nil)
		}
		if _, ok := reservedIdents["To"+u.Accessor]; ok {
			return NewShapeError(spec.Name, u.Symbol,
				fmt.Sprintf("unit accessor To%s would shadow a generated method", u.Accessor), nil)
		}
		if u.Canonical {
			if k.Canonical != nil {
				return NewShapeError(spec.Name, u.Symbol,
					fmt.Sprintf("declares a second canonical unit; %s is already canonical", k.Canonical.Symbol), nil)
			}
			k.Canonical = u
		}
		k.Units = append(k.Units, u)
	}
	if k.Canonical == nil {
		return NewShapeError(spec.Name, "", "declares no canonical unit", nil)
	}
	if !k.Canonical.Identity() {
		return NewConversionError(spec.Name, k.Canonical.Symbol, k.Canonical.Scale,
			"canonical unit must have scale 1 and offset 0")
	}
	return nil
}

func newUnit(kind string, spec *catalog.UnitSpec) (*Unit, error) {
	if spec.Name == "" {
		return nil, NewShapeError(kind, spec.Symbol, "unit has no name", nil)
	}
	if !validSymbol(spec.Symbol) {
		return nil, NewShapeError(kind, spec.Symbol, "unit symbol cannot become a Go accessor", nil)
	}
	switch {
	case math.IsNaN(spec.Scale) || math.IsInf(spec.Scale, 0):
		return nil, NewConversionError(kind, spec.Symbol, spec.Scale, "scale literal must be finite")
	case spec.Scale == 0:
		return nil, NewConversionError(kind, spec.Symbol, spec.Scale, "scale literal must not be zero; the reverse conversion divides by it")
	case math.IsNaN(spec.Offset) || math.IsInf(spec.Offset, 0):
		return nil, NewConversionError(kind, spec.Symbol, spec.Offset, "offset literal must be finite")
	}
	return &Unit{
		Name:      spec.Name,
		Symbol:    spec.Symbol,
		Accessor:  exportSymbol(spec.Symbol),
		Display:   spec.DisplaySymbol(),
		Scale:     spec.Scale,
		Offset:    spec.Offset,
		Canonical: spec.Canonical,
	}, nil
}

// Label returns the catalog name of the kind, e.g. "distance".
func (k *Kind) Label() string {
	return k.spec.Name
}

// FileName returns the generated file name of the kind, e.g. "distance.go".
func (k *Kind) FileName() string {
	return k.spec.Name + ".go"
}

// Receiver returns the method receiver identifier of the generated type.
func (k *Kind) Receiver() string {
	return receiver(k.Name)
}

// Category returns the catalog category, e.g. "mechanical".
func (k *Kind) Category() string {
	return k.spec.Category
}

// Description returns the kind description for doc comments. A default
// is synthesized when the catalog carries none.
func (k *Kind) Description() string {
	if k.spec.Description != "" {
		return k.spec.Description
	}
	return fmt.Sprintf("%s represents a %s quantity stored in %s.",
		k.Name, strings.ReplaceAll(k.spec.Name, "_", " "), k.Canonical.Name)
}

// InteropType returns the foreign unit type this kind bridges to, or the
// empty string when the kind takes no part in interop generation.
func (k *Kind) InteropType() string {
	return k.spec.Interop
}

// HasAffineUnits reports whether any unit of the kind converts with an
// offset term.
func (k *Kind) HasAffineUnits() bool {
	for _, u := range k.Units {
		if u.Affine() {
			return true
		}
	}
	return false
}
