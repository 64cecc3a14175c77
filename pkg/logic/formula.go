// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package logic

import (
	"fmt"

	"github.com/consensys/go-lattice/pkg/sexp"
)

// kind discriminates the shapes a formula can take.  It is deliberately not
// exported: callers dispatch through the Is* tag tests instead.
type kind int

const (
	boolConst kind = iota
	intConst
	lvar
	avarRef
	exists
	rel
	conj
)

// Formula is a logical formula in the restricted vocabulary consumed by
// universes and the variable environment: Boolean and integer constants,
// logical-variable occurrences, resolved abstract-variable occurrences,
// existential quantification, binary relations between a variable and a
// constant, and conjunction.  Formulas arrive already parsed; this type has
// value semantics so diagnostics can hold the offending formula without
// aliasing.
//
// Every formula carries a target abstract domain (Untyped by default) and an
// approximation direction (Exact by default), attached with WithType and
// WithApprox.
type Formula struct {
	kind kind
	aty  AType
	appx Approx
	name string
	sort Sort
	avar AVar
	b    bool
	z    int64
	sig  Sig
	args []Formula
}

// ===================================================================
// Constructors
// ===================================================================

// True constructs the true constant.
func True() Formula {
	return Formula{kind: boolConst, aty: Untyped, b: true}
}

// False constructs the false constant.
func False() Formula {
	return Formula{kind: boolConst, aty: Untyped, b: false}
}

// NewBool constructs a Boolean constant.
func NewBool(b bool) Formula {
	return Formula{kind: boolConst, aty: Untyped, b: b}
}

// NewInt constructs an integer constant.
func NewInt(z int64) Formula {
	return Formula{kind: intConst, aty: Untyped, z: z}
}

// NewVar constructs an occurrence of the logical variable with the given
// name.
func NewVar(name string) Formula {
	return Formula{kind: lvar, aty: Untyped, name: name}
}

// NewAVarRef constructs an occurrence of an already-resolved abstract
// variable.  Its target domain is the domain of the variable itself.
func NewAVarRef(av AVar) Formula {
	return Formula{kind: avarRef, aty: av.Type(), avar: av}
}

// NewExists constructs the existential quantification of a fresh variable
// with the given name and sort.
func NewExists(name string, sort Sort) Formula {
	return Formula{kind: exists, aty: Untyped, name: name, sort: sort}
}

// NewRel constructs the binary relation "lhs sig rhs".
func NewRel(lhs Formula, sig Sig, rhs Formula) Formula {
	if !sig.IsRelational() {
		panic(fmt.Sprintf("connective %s used as a relation", sig))
	}
	//
	return Formula{kind: rel, aty: Untyped, sig: sig, args: []Formula{lhs, rhs}}
}

// NewConj constructs the conjunction of the given formulas.
func NewConj(conjuncts ...Formula) Formula {
	return Formula{kind: conj, aty: Untyped, sig: And, args: conjuncts}
}

// WithType returns a copy of this formula targeted at the given abstract
// domain.
func (f Formula) WithType(aty AType) Formula {
	f.aty = aty
	return f
}

// WithApprox returns a copy of this formula carrying the given approximation
// direction.
func (f Formula) WithApprox(appx Approx) Formula {
	f.appx = appx
	return f
}

// ===================================================================
// Tag tests
// ===================================================================

// IsTrue checks whether this formula is the constant true.
func (f Formula) IsTrue() bool { return f.kind == boolConst && f.b }

// IsFalse checks whether this formula is the constant false.
func (f Formula) IsFalse() bool { return f.kind == boolConst && !f.b }

// IsBoolConstant checks whether this formula is a Boolean constant.
func (f Formula) IsBoolConstant() bool { return f.kind == boolConst }

// IsIntConstant checks whether this formula is an integer constant.
func (f Formula) IsIntConstant() bool { return f.kind == intConst }

// IsVar checks whether this formula is a logical-variable occurrence.
func (f Formula) IsVar() bool { return f.kind == lvar }

// IsAVar checks whether this formula is a resolved abstract-variable
// occurrence.
func (f Formula) IsAVar() bool { return f.kind == avarRef }

// IsVariable checks whether this formula is a variable occurrence of either
// kind, logical or abstract.
func (f Formula) IsVariable() bool { return f.kind == lvar || f.kind == avarRef }

// IsExists checks whether this formula is an existential quantifier.
func (f Formula) IsExists() bool { return f.kind == exists }

// IsRel checks whether this formula is a binary relation.
func (f Formula) IsRel() bool { return f.kind == rel }

// IsConj checks whether this formula is a conjunction.
func (f Formula) IsConj() bool { return f.kind == conj }

// ===================================================================
// Accessors
// ===================================================================

// Type returns the abstract domain this formula is targeted at, or Untyped.
func (f Formula) Type() AType { return f.aty }

// Approx returns the approximation direction this formula carries.
func (f Formula) Approx() Approx { return f.appx }

// Name returns the variable name of a logical-variable occurrence or an
// existential quantifier.
func (f Formula) Name() string {
	if f.kind != lvar && f.kind != exists {
		panic("formula has no variable name")
	}
	//
	return f.name
}

// Sort returns the declared sort of an existential quantifier.
func (f Formula) Sort() Sort {
	if f.kind != exists {
		panic("formula has no sort")
	}
	//
	return f.sort
}

// Bool returns the value of a Boolean constant.
func (f Formula) Bool() bool {
	if f.kind != boolConst {
		panic("formula is not a Boolean constant")
	}
	//
	return f.b
}

// Int returns the value of an integer constant.
func (f Formula) Int() int64 {
	if f.kind != intConst {
		panic("formula is not an integer constant")
	}
	//
	return f.z
}

// AVar returns the abstract variable of a resolved occurrence.
func (f Formula) AVar() AVar {
	if f.kind != avarRef {
		panic("formula is not an abstract-variable occurrence")
	}
	//
	return f.avar
}

// Sig returns the relational symbol of a binary relation.
func (f Formula) Sig() Sig {
	if f.kind != rel {
		panic("formula is not a relation")
	}
	//
	return f.sig
}

// Lhs returns the left operand of a binary relation.
func (f Formula) Lhs() Formula {
	if f.kind != rel {
		panic("formula is not a relation")
	}
	//
	return f.args[0]
}

// Rhs returns the right operand of a binary relation.
func (f Formula) Rhs() Formula {
	if f.kind != rel {
		panic("formula is not a relation")
	}
	//
	return f.args[1]
}

// Conjuncts returns the sub-formulas of a conjunction.
func (f Formula) Conjuncts() []Formula {
	if f.kind != conj {
		panic("formula is not a conjunction")
	}
	//
	return f.args
}

// ===================================================================
// Equality & printing
// ===================================================================

// Equals checks structural equality of two formulas.  The target domain and
// approximation direction are interpretation policy rather than formula
// content, hence both are ignored.
func (f Formula) Equals(g Formula) bool {
	if f.kind != g.kind {
		return false
	}
	//
	switch f.kind {
	case boolConst:
		return f.b == g.b
	case intConst:
		return f.z == g.z
	case lvar:
		return f.name == g.name
	case avarRef:
		return f.avar == g.avar
	case exists:
		return f.name == g.name && f.sort == g.sort
	default:
		if f.sig != g.sig || len(f.args) != len(g.args) {
			return false
		}
		//
		for i := range f.args {
			if !f.args[i].Equals(g.args[i]) {
				return false
			}
		}
		//
		return true
	}
}

// Lisp renders this formula as an S-expression.
func (f Formula) Lisp() sexp.SExp {
	switch f.kind {
	case boolConst:
		if f.b {
			return sexp.NewSymbol("true")
		}
		//
		return sexp.NewSymbol("false")
	case intConst:
		return sexp.NewSymbol(fmt.Sprintf("%d", f.z))
	case lvar:
		return sexp.NewSymbol(f.name)
	case avarRef:
		return sexp.NewSymbol(f.avar.String())
	case exists:
		return sexp.NewList([]sexp.SExp{
			sexp.NewSymbol("∃"),
			sexp.NewSymbol(f.name),
			sexp.NewSymbol(f.sort.String()),
		})
	case rel:
		return sexp.NewList([]sexp.SExp{
			sexp.NewSymbol(f.sig.String()),
			f.args[0].Lisp(),
			f.args[1].Lisp(),
		})
	default:
		elements := make([]sexp.SExp, len(f.args)+1)
		elements[0] = sexp.NewSymbol(And.String())
		//
		for i, arg := range f.args {
			elements[i+1] = arg.Lisp()
		}
		//
		return sexp.NewList(elements)
	}
}

func (f Formula) String() string {
	return f.Lisp().String()
}
