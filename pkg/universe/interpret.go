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
package universe

import (
	"github.com/consensys/go-lattice/pkg/logic"
	"github.com/consensys/go-lattice/pkg/util"
)

// Interpret attempts to extract an element of the integer universe U from a
// formula.  Sequential-only.
//
// The only supported shapes are constants, existential quantification and
// relations "variable ⟨symbol⟩ constant" where the symbol matches the order
// of U: the order symbol itself under any approximation, the strict-order
// symbol (collapsed through the cover function), disequality under
// under-approximation (widened through the cover function) and equality
// under over-approximation.  Everything else yields no value rather than an
// error, since the caller may well interpret the formula in another
// universe.
func Interpret[U Universe[int64]](f logic.Formula) util.Option[TotalOrder[U, int64]] {
	var u U
	//
	switch {
	case f.IsTrue():
		return util.Some(Bot[U, int64]())
	case f.IsFalse():
		return util.Some(Top[U, int64]())
	case f.IsExists():
		// Integers embed exactly; reals over-approximate to integers, which
		// is sound only when under-approximating the formula.
		if f.Sort() == logic.Int || (f.Sort() == logic.Real && f.Approx() == logic.Under) {
			return util.Some(Bot[U, int64]())
		}
	case isVOpZ(f):
		k := f.Rhs().Int()
		//
		switch {
		case f.Sig() == u.OrderSig():
			return elementOf[U](k)
		case f.Sig() == u.StrictOrderSig():
			return elementOf[U](u.Next(k))
		case f.Sig() == logic.Neq && f.Approx() == logic.Under:
			return elementOf[U](u.Next(k))
		case f.Sig() == logic.Eq && f.Approx() == logic.Over:
			return elementOf[U](k)
		}
	}
	//
	return util.None[TotalOrder[U, int64]]()
}

// Admit an interpreted bound as an element of U.  A bound escaping a
// one-sided carrier belongs to a wider universe, not this one, hence the
// formula has no interpretation here.  The range ends themselves are
// admitted, as the bot and top elements.
func elementOf[U Universe[int64]](value int64) util.Option[TotalOrder[U, int64]] {
	var u U
	//
	if value < min(u.Bot(), u.Top()) || value > max(u.Bot(), u.Top()) {
		return util.None[TotalOrder[U, int64]]()
	}
	//
	return util.Some(TotalOrder[U, int64]{value})
}

// InterpretConjunction interprets a conjunction into the join of its
// conjuncts' interpretations, accumulating one sub-error per failing
// conjunct rather than stopping at the first, so a user sees every reason
// the formula was rejected.  A non-conjunction formula is treated as a
// single conjunct.  Sequential-only.
func InterpretConjunction[U Universe[int64]](f logic.Formula) logic.Result[TotalOrder[U, int64]] {
	var (
		u         U
		conjuncts []logic.Formula
	)
	//
	if f.IsConj() {
		conjuncts = f.Conjuncts()
	} else {
		conjuncts = []logic.Formula{f}
	}
	//
	element := Bot[U, int64]()
	err := logic.NewError(u.Name(), f, "the conjunction could not be fully interpreted")
	failed := false
	//
	for _, conjunct := range conjuncts {
		if r := Interpret[U](conjunct); r.HasValue() {
			element = element.Join(r.Unwrap())
		} else {
			failed = true
			//
			err.AddSubError(logic.NewError(u.Name(), conjunct,
				"the formula has no interpretation in this universe"))
		}
	}
	//
	if failed {
		return logic.Err[TotalOrder[U, int64]](err)
	}
	//
	return logic.Ok(element)
}

// InterpretBool attempts to extract an element of the Boolean universe U
// from a formula.  Sequential-only.
//
// Unlike the integer path, a constant the order cannot represent exactly is
// a fatal diagnostic rather than a silent mismatch: the knowledge order
// rejects true (and its dual rejects false) because over-approximating the
// constant would lose it entirely.
func InterpretBool[U BoolUniverse](f logic.Formula) logic.Result[TotalOrder[U, bool]] {
	var u U
	//
	if f.IsExists() {
		if u.AcceptsSort(f.Sort()) {
			return logic.Ok(Bot[U, bool]())
		}
		//
		return logic.Err[TotalOrder[U, bool]](logic.NewError(u.Name(), f,
			"existential quantification of sort "+f.Sort().String()+" is not supported in this domain"))
	}
	//
	return logic.Map(u.InterpretConstant(f), func(v bool) TotalOrder[U, bool] {
		return TotalOrder[U, bool]{v}
	})
}

// Deinterpret turns this element back into a canonical relational formula
// over a variable with the given name: top de-interprets to the constant
// false (unsatisfiable), bot to the constant true (no information), and any
// other value v to "name ⟨order symbol⟩ v".  Sequential-only.
func (e TotalOrder[U, V]) Deinterpret(name string) logic.Formula {
	var u U
	//
	if e.IsTop() {
		return logic.False()
	} else if e.IsBot() {
		return logic.True()
	}
	//
	return logic.NewRel(logic.NewVar(name), u.OrderSig(), constantOf(e.value))
}

// Matches the shape "variable ⟨relational symbol⟩ integer constant".
func isVOpZ(f logic.Formula) bool {
	return f.IsRel() && f.Lhs().IsVariable() && f.Rhs().IsIntConstant()
}

// Renders a carrier value as a constant formula.
func constantOf[V any](value V) logic.Formula {
	switch v := any(value).(type) {
	case int64:
		return logic.NewInt(v)
	case bool:
		return logic.NewBool(v)
	default:
		panic("unsupported carrier type")
	}
}
