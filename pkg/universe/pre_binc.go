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

import "github.com/consensys/go-lattice/pkg/logic"

// PreBInc is the increasing-truth Boolean order: bot is false, top is true
// and the order is implication.  Unlike the knowledge order it hides no
// information behind its top, hence unary negation is exact here.  Integer
// constants interpret by the arithmetic convention: zero is false, any
// other value is true.
type PreBInc struct{}

// PreBDec is the decreasing-truth Boolean order: the dual of PreBInc, with
// bot true and top false.
type PreBDec struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ BoolUniverse = PreBInc{}
	_ BoolUniverse = PreBDec{}
)

// ===================================================================
// PreBInc
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (PreBInc) Name() string { return "BInc" }

// Bot returns false.  Parallel-safe.
func (PreBInc) Bot() bool { return false }

// Top returns true.  Parallel-safe.
func (PreBInc) Top() bool { return true }

// Next returns the cover above x, saturating at top.  Parallel-safe.
func (PreBInc) Next(x bool) bool { return true }

// Prev returns the cover below x, saturating at bot.  Parallel-safe.
func (PreBInc) Prev(x bool) bool { return false }

// Join returns logical disjunction.  Parallel-safe.
func (PreBInc) Join(x, y bool) bool { return x || y }

// Meet returns logical conjunction.  Parallel-safe.
func (PreBInc) Meet(x, y bool) bool { return x && y }

// Order is implication.  Parallel-safe.
func (PreBInc) Order(x, y bool) bool { return !x || y }

// StrictOrder is strict implication.  Parallel-safe.
func (PreBInc) StrictOrder(x, y bool) bool { return !x && y }

// OrderSig returns ≤, reading false below true.
func (PreBInc) OrderSig() logic.Sig { return logic.Leq }

// StrictOrderSig returns <.
func (PreBInc) StrictOrderSig() logic.Sig { return logic.Lt }

// Check accepts every carrier value.
func (PreBInc) Check(v bool) {}

// Fun1 evaluates unary negation, which is exact in this order.
// Parallel-safe.
func (u PreBInc) Fun1(sig logic.Sig, x bool) bool {
	if sig == logic.Not {
		return !x
	}
	//
	panic(unsupportedFun(u.Name(), sig))
}

// Fun2 evaluates a binary connective.  Parallel-safe.
func (u PreBInc) Fun2(sig logic.Sig, x, y bool) bool {
	switch sig {
	case logic.And:
		return x && y
	case logic.Or:
		return x || y
	case logic.Imply:
		return !x || y
	case logic.Equiv, logic.Eq:
		return x == y
	case logic.Xor, logic.Neq:
		return x != y
	default:
		panic(unsupportedFun(u.Name(), sig))
	}
}

// IsSupportedFun holds for the binary connectives and for unary negation.
func (PreBInc) IsSupportedFun(sig logic.Sig) bool {
	switch sig {
	case logic.And, logic.Or, logic.Imply, logic.Equiv, logic.Xor, logic.Eq, logic.Neq, logic.Not:
		return true
	default:
		return false
	}
}

// IsOrderPreserving holds for conjunction and disjunction only: every other
// supported connective is antitone or non-monotone in at least one argument
// with respect to the truth order.
func (PreBInc) IsOrderPreserving(sig logic.Sig) bool {
	return sig == logic.And || sig == logic.Or
}

// InterpretConstant accepts Boolean constants as themselves and integer
// constants by the zero-is-false convention.  Sequential-only.
func (u PreBInc) InterpretConstant(f logic.Formula) logic.Result[bool] {
	return interpretTruthConstant(u.Name(), f)
}

// AcceptsSort accepts existential declarations of integer variables, which
// this order models as truth values.
func (PreBInc) AcceptsSort(sort logic.Sort) bool { return sort == logic.Int }

// FormulaOfConstant renders a carrier value as a constant formula.
// Sequential-only.
func (PreBInc) FormulaOfConstant(v bool) logic.Formula { return logic.NewBool(v) }

// ===================================================================
// PreBDec
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (PreBDec) Name() string { return "BDec" }

// Bot returns true.  Parallel-safe.
func (PreBDec) Bot() bool { return true }

// Top returns false.  Parallel-safe.
func (PreBDec) Top() bool { return false }

// Next returns the cover above x, saturating at top.  Parallel-safe.
func (PreBDec) Next(x bool) bool { return false }

// Prev returns the cover below x, saturating at bot.  Parallel-safe.
func (PreBDec) Prev(x bool) bool { return true }

// Join returns logical conjunction.  Parallel-safe.
func (PreBDec) Join(x, y bool) bool { return x && y }

// Meet returns logical disjunction.  Parallel-safe.
func (PreBDec) Meet(x, y bool) bool { return x || y }

// Order is converse implication.  Parallel-safe.
func (PreBDec) Order(x, y bool) bool { return x || !y }

// StrictOrder is strict converse implication.  Parallel-safe.
func (PreBDec) StrictOrder(x, y bool) bool { return x && !y }

// OrderSig returns ≥, reading true below false.
func (PreBDec) OrderSig() logic.Sig { return logic.Geq }

// StrictOrderSig returns >.
func (PreBDec) StrictOrderSig() logic.Sig { return logic.Gt }

// Check accepts every carrier value.
func (PreBDec) Check(v bool) {}

// Fun1 evaluates unary negation, which is exact in this order.
// Parallel-safe.
func (u PreBDec) Fun1(sig logic.Sig, x bool) bool {
	if sig == logic.Not {
		return !x
	}
	//
	panic(unsupportedFun(u.Name(), sig))
}

// Fun2 evaluates a binary connective through the dualized truth tables.
// Parallel-safe.
func (u PreBDec) Fun2(sig logic.Sig, x, y bool) bool {
	switch sig {
	case logic.And:
		return x || y
	case logic.Or:
		return x && y
	case logic.Imply:
		return !y || x
	case logic.Equiv, logic.Eq:
		return x == y
	case logic.Xor, logic.Neq:
		return x != y
	default:
		panic(unsupportedFun(u.Name(), sig))
	}
}

// IsSupportedFun holds for the binary connectives and for unary negation.
func (PreBDec) IsSupportedFun(sig logic.Sig) bool {
	return PreBInc{}.IsSupportedFun(sig)
}

// IsOrderPreserving holds for conjunction and disjunction only.
func (PreBDec) IsOrderPreserving(sig logic.Sig) bool {
	return sig == logic.And || sig == logic.Or
}

// InterpretConstant accepts Boolean constants as themselves and integer
// constants by the zero-is-false convention.  Sequential-only.
func (u PreBDec) InterpretConstant(f logic.Formula) logic.Result[bool] {
	return interpretTruthConstant(u.Name(), f)
}

// AcceptsSort accepts existential declarations of integer variables.
func (PreBDec) AcceptsSort(sort logic.Sort) bool { return sort == logic.Int }

// FormulaOfConstant renders a carrier value as a constant formula.
// Sequential-only.
func (PreBDec) FormulaOfConstant(v bool) logic.Formula { return logic.NewBool(v) }

// Interpretation of constants shared by both truth orders: Boolean
// constants are themselves, integer constants follow the zero-is-false
// convention, anything else fails.
func interpretTruthConstant(name string, f logic.Formula) logic.Result[bool] {
	switch {
	case f.IsBoolConstant():
		return logic.Ok(f.Bool())
	case f.IsIntConstant():
		return logic.Ok(f.Int() != 0)
	default:
		return logic.Err[bool](logic.NewError(name, f,
			"only Boolean and integer constants can be interpreted in this domain"))
	}
}
