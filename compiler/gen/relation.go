package gen

import (
	"fmt"
	"sort"
)

// Verb is the arithmetic operation of a generated cross-kind operator.
type Verb int

const (
	// VerbMul emits a multiplication operator.
	VerbMul Verb = iota
	// VerbDiv emits a division operator.
	VerbDiv
)

// String returns the method name prefix of the verb.
func (v Verb) String() string {
	if v == VerbMul {
		return "Mul"
	}
	return "Div"
}

// sign returns the arithmetic sign of the verb for error messages.
func (v Verb) sign() string {
	if v == VerbMul {
		return "*"
	}
	return "/"
}

// The relation graph is described by the following types.
type (
	// Op is one generated cross-kind operator. The receiver kind holds
	// the op, so Distance carrying {VerbDiv, Time, Velocity} emits
	// func (d Distance[T]) DivTime(t Time[T]) Velocity[T].
	Op struct {
		// Verb selects multiplication or division.
		Verb Verb
		// Operand is the parameter kind.
		Operand *Kind
		// Result is the kind the operator returns.
		Result *Kind
	}

	// ProductFact is one normalized relation: A * B = Product. Division
	// declarations are rewritten into product form before derivation, so
	// distance / time = velocity becomes velocity * time = distance.
	ProductFact struct {
		A, B, Product *Kind
		// decl is the catalog declaration the fact came from.
		decl string
	}

	// ReciprocalPair links two kinds whose product is dimensionless,
	// e.g. time and frequency. Each side gains an Inv operator and a
	// package-level Per function.
	ReciprocalPair struct {
		Kind, Inverse *Kind
		decl          string
	}
)

// MethodName returns the generated method name, e.g. "DivTime".
func (o *Op) MethodName() string {
	return o.Verb.String() + o.Operand.Name
}

// opKey identifies one operator signature: receiver, verb and operand.
// Relations deriving the same key must agree on the result kind.
type opKey struct {
	recv    string
	verb    Verb
	operand string
}

type opEntry struct {
	result string
	decl   string
}

// relationIndex derives operators from normalized facts, deduplicates
// repeated derivations and rejects contradicting ones.
type relationIndex struct {
	ops map[opKey]opEntry
}

func newRelationIndex() *relationIndex {
	return &relationIndex{ops: make(map[opKey]opEntry)}
}

// derive attaches the four operators a product fact implies:
// A.Mul(B) = P, B.Mul(A) = P, P.Div(A) = B and P.Div(B) = A.
// Self products collapse to two operators.
func (x *relationIndex) derive(f *ProductFact) error {
	if err := x.add(f.A, VerbMul, f.B, f.Product, f.decl); err != nil {
		return err
	}
	if err := x.add(f.B, VerbMul, f.A, f.Product, f.decl); err != nil {
		return err
	}
	if err := x.add(f.Product, VerbDiv, f.A, f.B, f.decl); err != nil {
		return err
	}
	return x.add(f.Product, VerbDiv, f.B, f.A, f.decl)
}

// add registers one derived operator on its receiver kind. Deriving the
// same signature with the same result twice is a no-op; deriving it with
// a different result is a contradiction between two declarations.
func (x *relationIndex) add(recv *Kind, verb Verb, operand, result *Kind, decl string) error {
	key := opKey{recv: recv.Label(), verb: verb, operand: operand.Label()}
	if prev, ok := x.ops[key]; ok {
		if prev.result == result.Label() {
			return nil
		}
		return NewRelationError(decl, prev.decl,
			fmt.Sprintf("operator %s %s %s would return both %s and %s",
				recv.Label(), verb.sign(), operand.Label(), prev.result, result.Label()))
	}
	x.ops[key] = opEntry{result: result.Label(), decl: decl}
	recv.Ops = append(recv.Ops, &Op{Verb: verb, Operand: operand, Result: result})
	return nil
}

// pair links two kinds as reciprocals. A kind joins at most one pair.
func pair(a, b *Kind, decl string) (*ReciprocalPair, error) {
	if a == b {
		return nil, NewRelationError(decl, "", "a kind cannot be its own reciprocal")
	}
	for _, side := range [2][2]*Kind{{a, b}, {b, a}} {
		k, inv := side[0], side[1]
		if k.Inverse != nil && k.Inverse != inv {
			return nil, NewRelationError(decl, "",
				fmt.Sprintf("%s already has reciprocal %s", k.Label(), k.Inverse.Label()))
		}
	}
	if a.Inverse == b {
		return nil, nil // same pair declared twice
	}
	a.Inverse, b.Inverse = b, a
	return &ReciprocalPair{Kind: a, Inverse: b, decl: decl}, nil
}

// sortOps orders a kind's operators for deterministic emission:
// multiplications before divisions, then by operand name.
func sortOps(ops []*Op) {
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Verb != ops[j].Verb {
			return ops[i].Verb < ops[j].Verb
		}
		return ops[i].Operand.Name < ops[j].Operand.Name
	})
}
