// Package catalog defines the quantity catalog: the plain-data description
// of quantity kinds, their units and the dimension relations between them.
// The compiler consumes a Catalog and emits Go source; nothing in this
// package performs validation beyond what loaders need to report I/O and
// decode failures. Shape and consistency checking happen in compiler/gen.
package catalog

import (
	"encoding/json"
	"fmt"
)

// Operator names used by RelationSpec.Op.
const (
	OpMul = "mul"
	OpDiv = "div"
)

// Scalar is the reserved operand name for dimensionless values in
// relations, e.g. scalar / time = frequency.
const Scalar = "scalar"

// Catalog is the root document: every kind the generator emits and every
// dimension relation between them.
type Catalog struct {
	Version   string          `json:"version,omitempty" yaml:"version,omitempty"`
	Kinds     []*KindSpec     `json:"kinds" yaml:"kinds"`
	Relations []*RelationSpec `json:"relations,omitempty" yaml:"relations,omitempty"`
}

// KindSpec describes one quantity kind (distance, mass, ...).
type KindSpec struct {
	// Name is the catalog identifier, lower snake case.
	Name string `json:"name" yaml:"name"`
	// Category groups kinds into output files (base, mechanical, ...).
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	// Description seeds the doc comment of the generated type.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Interop names the external library type this kind bridges to under
	// the interop feature. Empty means no bridge is emitted.
	Interop string `json:"interop,omitempty" yaml:"interop,omitempty"`
	// Fields declares the storage of the generated record. A valid kind
	// has exactly one named field; the slice form exists so loaders can
	// represent malformed input for the compiler to reject.
	Fields []*FieldSpec `json:"fields" yaml:"fields"`
	// Units lists every unit the kind converts to and from, including the
	// canonical one.
	Units []*UnitSpec `json:"units" yaml:"units"`
}

// FieldSpec declares a storage field of a kind record.
type FieldSpec struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// UnitSpec describes one unit of measure of a kind. Scale and Offset map a
// value in this unit into the canonical unit: canonical = value*Scale +
// Offset. The canonical unit has Scale 1 and Offset 0.
type UnitSpec struct {
	Name      string  `json:"name" yaml:"name"`
	Symbol    string  `json:"symbol" yaml:"symbol"`
	Display   string  `json:"display,omitempty" yaml:"display,omitempty"`
	Scale     float64 `json:"scale" yaml:"scale"`
	Offset    float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Canonical bool    `json:"canonical,omitempty" yaml:"canonical,omitempty"`
}

// RelationSpec is a ternary dimension fact: Left Op Right = Result. Right
// may be Scalar for reciprocal facts. Commuted and inverse forms are never
// declared; the compiler derives them.
type RelationSpec struct {
	Left   string `json:"left" yaml:"left"`
	Op     string `json:"op" yaml:"op"`
	Right  string `json:"right" yaml:"right"`
	Result string `json:"result" yaml:"result"`
}

// New returns an empty catalog with the given version.
func New(version string) *Catalog {
	return &Catalog{Version: version}
}

// AddKinds appends kinds and returns the catalog for chaining.
func (c *Catalog) AddKinds(kinds ...*KindSpec) *Catalog {
	c.Kinds = append(c.Kinds, kinds...)
	return c
}

// AddRelations appends relations and returns the catalog for chaining.
func (c *Catalog) AddRelations(relations ...*RelationSpec) *Catalog {
	c.Relations = append(c.Relations, relations...)
	return c
}

// Kind returns the kind with the given name, or nil.
func (c *Catalog) Kind(name string) *KindSpec {
	for _, k := range c.Kinds {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// Canonical returns the unit marked canonical, or nil if the kind has none.
func (k *KindSpec) Canonical() *UnitSpec {
	for _, u := range k.Units {
		if u.Canonical {
			return u
		}
	}
	return nil
}

// DisplaySymbol returns the symbol used when formatting values of the unit.
func (u *UnitSpec) DisplaySymbol() string {
	if u.Display != "" {
		return u.Display
	}
	return u.Symbol
}

// String returns the relation in declaration form, e.g. "mass x velocity =
// momentum".
func (r *RelationSpec) String() string {
	op := "x"
	if r.Op == OpDiv {
		op = "/"
	}
	return fmt.Sprintf("%s %s %s = %s", r.Left, op, r.Right, r.Result)
}

// MarshalCatalog marshals the catalog to JSON. Used by the snapshot feature
// to embed the exact input of a generation run.
func MarshalCatalog(c *Catalog) ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("catalog: marshal: %w", err)
	}
	return b, nil
}

// UnmarshalCatalog unmarshals a catalog from JSON.
func UnmarshalCatalog(b []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	return c, nil
}
