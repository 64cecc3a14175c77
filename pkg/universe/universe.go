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

// Package universe defines totally-ordered abstract domains for constraint
// propagation: stateless universe policies describing an ordered carrier
// (integers under increasing or decreasing order, Booleans under knowledge
// or truth order), and the total-order element wrapping one carrier value
// under one policy.
//
// Every operation belongs to one of two execution regimes, stated in its
// documentation.  Parallel-safe operations are pure functions of their
// arguments: no allocation, no diagnostics, no shared mutable state, so any
// number of concurrent invocations can run without coordination.
// Sequential-only operations (interpretation, de-interpretation, splitting)
// run on a single control thread and may allocate and fail.
package universe

import "github.com/consensys/go-lattice/pkg/logic"

// Universe is the capability contract of one totally-ordered abstract
// domain over carrier type V.  Implementations are stateless zero-size
// types, hence generic code instantiates them on demand ("var u U") rather
// than passing them around.  All operations below are parallel-safe except
// Name and Check.
type Universe[V any] interface {
	// Name of this universe, as reported in diagnostics.
	Name() string
	// Bot returns the least element of the domain, representing the absence
	// of information.
	Bot() V
	// Top returns the greatest element of the domain, representing an
	// unsatisfiable constraint.
	Top() V
	// Next returns the unique cover above x, saturating at top.  An
	// infinity sentinel has no cover, hence also saturates.
	Next(x V) V
	// Prev returns the unique cover below x, saturating at bot.
	Prev(x V) V
	// Join returns the least upper bound of x and y.
	Join(x, y V) V
	// Meet returns the greatest lower bound of x and y.
	Meet(x, y V) V
	// Order holds iff x is below or equal to y in the domain order, which
	// is independent of natural numeric comparison for decreasing domains.
	Order(x, y V) bool
	// StrictOrder holds iff x is strictly below y in the domain order.
	StrictOrder(x, y V) bool
	// OrderSig returns the relational symbol realizing the domain order.
	OrderSig() logic.Sig
	// StrictOrderSig returns the relational symbol realizing the strict
	// domain order.
	StrictOrderSig() logic.Sig
	// Check panics unless v is a member of the domain.  Sequential-only;
	// a violation is a caller bug, never a diagnostic.
	Check(v V)
}

// BoolUniverse extends the universe contract with the Boolean-specific
// operations: connective evaluation and the interpretation of constants and
// existential declarations, both of which differ between the knowledge
// order and the truth order.
type BoolUniverse interface {
	Universe[bool]
	// Fun1 evaluates the unary connective sig on x.  Parallel-safe.
	// Calling it on a symbol for which IsSupportedFun is false is a
	// precondition violation (panic).
	Fun1(sig logic.Sig, x bool) bool
	// Fun2 evaluates the binary connective sig on x and y.  Parallel-safe.
	// Calling it on a symbol for which IsSupportedFun is false is a
	// precondition violation (panic).
	Fun2(sig logic.Sig, x, y bool) bool
	// IsSupportedFun determines, ahead of time, whether evaluating the
	// given connective in this domain is sound.
	IsSupportedFun(sig logic.Sig) bool
	// IsOrderPreserving determines whether the given connective is
	// monotone with respect to the domain order in every argument.
	IsOrderPreserving(sig logic.Sig) bool
	// InterpretConstant interprets a constant formula as a carrier value.
	// Sequential-only.
	InterpretConstant(f logic.Formula) logic.Result[bool]
	// AcceptsSort determines whether an existentially-quantified variable
	// of the given sort can be declared in this domain.
	AcceptsSort(sort logic.Sort) bool
	// FormulaOfConstant renders a carrier value as a constant formula.
	// Sequential-only.
	FormulaOfConstant(v bool) logic.Formula
}

// ===================================================================
// Sign families
// ===================================================================

// Sign restricts an integer universe to one of three carrier ranges: the
// full signed range, the naturals, or the non-positive integers.  An open
// range end is an infinity sentinel rather than a representable value; a
// closed end is the zero boundary itself.
type Sign interface {
	// Bounds returns the numeric carrier range [lo, hi].
	Bounds() (int64, int64)
	// LowerClosed indicates whether lo is a representable value rather
	// than the minus-infinity sentinel.
	LowerClosed() bool
	// UpperClosed indicates whether hi is a representable value rather
	// than the plus-infinity sentinel.
	UpperClosed() bool
	// Abbrev is the letter this family contributes to universe names.
	Abbrev() string
}

// Signed covers the full signed carrier range, with both ends open.
type Signed struct{}

// Positive covers the naturals, closed at zero below and open above.
type Positive struct{}

// Negative covers the non-positive integers, open below and closed at zero
// above.
type Negative struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Sign = Signed{}
	_ Sign = Positive{}
	_ Sign = Negative{}
)

// Bounds returns the full signed carrier range.
func (Signed) Bounds() (int64, int64) { return minInt64, maxInt64 }

// LowerClosed is false: the minimum is the minus-infinity sentinel.
func (Signed) LowerClosed() bool { return false }

// UpperClosed is false: the maximum is the plus-infinity sentinel.
func (Signed) UpperClosed() bool { return false }

// Abbrev contributes nothing to universe names.
func (Signed) Abbrev() string { return "" }

// Bounds returns the carrier range of the naturals.
func (Positive) Bounds() (int64, int64) { return 0, maxInt64 }

// LowerClosed is true: zero is a representable value.
func (Positive) LowerClosed() bool { return true }

// UpperClosed is false: the maximum is the plus-infinity sentinel.
func (Positive) UpperClosed() bool { return false }

// Abbrev contributes "P" to universe names.
func (Positive) Abbrev() string { return "P" }

// Bounds returns the carrier range of the non-positive integers.
func (Negative) Bounds() (int64, int64) { return minInt64, 0 }

// LowerClosed is false: the minimum is the minus-infinity sentinel.
func (Negative) LowerClosed() bool { return false }

// UpperClosed is true: zero is a representable value.
func (Negative) UpperClosed() bool { return true }

// Abbrev contributes "N" to universe names.
func (Negative) Abbrev() string { return "N" }

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)
