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
	"fmt"

	"github.com/consensys/go-lattice/pkg/logic"
)

// PreB is the Boolean knowledge order: bot is false ("known false"), top is
// "unknown", stored as true but concretizing to {true, false}.  Only the
// constant false is exactly representable; the constant true would have to
// be over-approximated to "unknown", which loses it entirely, hence its
// interpretation fails.
//
// Unary negation is not representable in this order: negating false must be
// over-approximated to "unknown" while negating true is exact, and that
// asymmetric collapse cannot be expressed as a sound truth table.  This is
// a structural limitation of the knowledge order, not of the
// implementation.
type PreB struct{}

// PreBDual is the dualized knowledge order: bot is "unknown" (stored true),
// top is false.  It accepts the constant true and rejects false,
// symmetrically to PreB, and evaluates connectives through the dualized
// truth tables.
type PreBDual struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ BoolUniverse = PreB{}
	_ BoolUniverse = PreBDual{}
)

// ===================================================================
// PreB
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (PreB) Name() string { return "B" }

// Bot returns false.  Parallel-safe.
func (PreB) Bot() bool { return false }

// Top returns the "unknown" representative.  Parallel-safe.
func (PreB) Top() bool { return true }

// Next returns the cover above x, saturating at top.  Parallel-safe.
func (PreB) Next(x bool) bool { return true }

// Prev returns the cover below x, saturating at bot.  Parallel-safe.
func (PreB) Prev(x bool) bool { return false }

// Join returns logical disjunction.  Parallel-safe.
func (PreB) Join(x, y bool) bool { return x || y }

// Meet returns logical conjunction.  Parallel-safe.
func (PreB) Meet(x, y bool) bool { return x && y }

// Order is implication.  Parallel-safe.
func (PreB) Order(x, y bool) bool { return !x || y }

// StrictOrder is strict implication.  Parallel-safe.
func (PreB) StrictOrder(x, y bool) bool { return !x && y }

// OrderSig returns ⇒.
func (PreB) OrderSig() logic.Sig { return logic.Imply }

// StrictOrderSig returns <.
func (PreB) StrictOrderSig() logic.Sig { return logic.Lt }

// Check accepts every carrier value.
func (PreB) Check(v bool) {}

// Fun1 panics: no unary connective is representable in the knowledge order.
func (u PreB) Fun1(sig logic.Sig, x bool) bool {
	panic(unsupportedFun(u.Name(), sig))
}

// Fun2 evaluates a binary connective.  Parallel-safe.
func (u PreB) Fun2(sig logic.Sig, x, y bool) bool {
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

// IsSupportedFun holds for the binary connectives and, notably, not for
// unary negation.
func (PreB) IsSupportedFun(sig logic.Sig) bool {
	switch sig {
	case logic.And, logic.Or, logic.Imply, logic.Equiv, logic.Xor, logic.Eq, logic.Neq:
		return true
	default:
		return false
	}
}

// IsOrderPreserving holds for every supported connective: adding knowledge
// to an argument never removes knowledge from the result.
func (u PreB) IsOrderPreserving(sig logic.Sig) bool {
	return u.IsSupportedFun(sig)
}

// InterpretConstant accepts the constant false, and only it.
// Sequential-only.
func (u PreB) InterpretConstant(f logic.Formula) logic.Result[bool] {
	if !f.IsBoolConstant() {
		return logic.Err[bool](logic.NewError(u.Name(), f,
			"only Boolean constants can be interpreted in this domain"))
	}
	//
	if f.Bool() {
		return logic.Err[bool](logic.NewError(u.Name(), f,
			"the constant true has no exact representation in the knowledge order"))
	}
	//
	return logic.Ok(false)
}

// AcceptsSort accepts existential declarations of Boolean variables.
func (PreB) AcceptsSort(sort logic.Sort) bool { return sort == logic.Bool }

// FormulaOfConstant renders a carrier value as a constant formula.
// Sequential-only.
func (PreB) FormulaOfConstant(v bool) logic.Formula { return logic.NewBool(v) }

// ===================================================================
// PreBDual
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (PreBDual) Name() string { return "BDual" }

// Bot returns the "unknown" representative.  Parallel-safe.
func (PreBDual) Bot() bool { return true }

// Top returns false.  Parallel-safe.
func (PreBDual) Top() bool { return false }

// Next returns the cover above x, saturating at top.  Parallel-safe.
func (PreBDual) Next(x bool) bool { return false }

// Prev returns the cover below x, saturating at bot.  Parallel-safe.
func (PreBDual) Prev(x bool) bool { return true }

// Join returns logical conjunction.  Parallel-safe.
func (PreBDual) Join(x, y bool) bool { return x && y }

// Meet returns logical disjunction.  Parallel-safe.
func (PreBDual) Meet(x, y bool) bool { return x || y }

// Order is converse implication.  Parallel-safe.
func (PreBDual) Order(x, y bool) bool { return x || !y }

// StrictOrder is strict converse implication.  Parallel-safe.
func (PreBDual) StrictOrder(x, y bool) bool { return x && !y }

// OrderSig returns ⇐.
func (PreBDual) OrderSig() logic.Sig { return logic.ImpliedBy }

// StrictOrderSig returns >.
func (PreBDual) StrictOrderSig() logic.Sig { return logic.Gt }

// Check accepts every carrier value.
func (PreBDual) Check(v bool) {}

// Fun1 panics: no unary connective is representable in the dualized
// knowledge order.
func (u PreBDual) Fun1(sig logic.Sig, x bool) bool {
	panic(unsupportedFun(u.Name(), sig))
}

// Fun2 evaluates a binary connective through the dualized truth tables:
// conjunction and disjunction exchange, implication reverses.
// Parallel-safe.
func (u PreBDual) Fun2(sig logic.Sig, x, y bool) bool {
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

// IsSupportedFun holds for the binary connectives and, notably, not for
// unary negation.
func (PreBDual) IsSupportedFun(sig logic.Sig) bool {
	return PreB{}.IsSupportedFun(sig)
}

// IsOrderPreserving holds for every supported connective.
func (u PreBDual) IsOrderPreserving(sig logic.Sig) bool {
	return u.IsSupportedFun(sig)
}

// InterpretConstant accepts the constant true, and only it.
// Sequential-only.
func (u PreBDual) InterpretConstant(f logic.Formula) logic.Result[bool] {
	if !f.IsBoolConstant() {
		return logic.Err[bool](logic.NewError(u.Name(), f,
			"only Boolean constants can be interpreted in this domain"))
	}
	//
	if !f.Bool() {
		return logic.Err[bool](logic.NewError(u.Name(), f,
			"the constant false has no exact representation in the dualized knowledge order"))
	}
	//
	return logic.Ok(true)
}

// AcceptsSort accepts existential declarations of Boolean variables.
func (PreBDual) AcceptsSort(sort logic.Sort) bool { return sort == logic.Bool }

// FormulaOfConstant renders a carrier value as a constant formula.
// Sequential-only.
func (PreBDual) FormulaOfConstant(v bool) logic.Formula { return logic.NewBool(v) }

// Message for the precondition violation of evaluating an unsupported
// connective.
func unsupportedFun(name string, sig logic.Sig) string {
	return fmt.Sprintf("connective %s is not supported in %s", sig, name)
}
