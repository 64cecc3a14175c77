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

// ZIncUniverse is the family of increasing integer universes over the
// carrier range selected by S.  An element with value v represents the
// constraint "x ≥ v": growing in the order means learning a better lower
// bound, hence join is max, bot is the low end of the carrier and top the
// high end.
type ZIncUniverse[S Sign] struct{}

// ZDecUniverse is the family of decreasing integer universes over the
// carrier range selected by S: the dual of ZIncUniverse.  An element with
// value v represents the constraint "x ≤ v", join is min, and the domain
// order runs against natural numeric comparison.
type ZDecUniverse[S Sign] struct{}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Universe[int64] = ZIncUniverse[Signed]{}
	_ Universe[int64] = ZDecUniverse[Signed]{}
)

// ===================================================================
// Increasing family
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (ZIncUniverse[S]) Name() string {
	var s S
	return "Z" + s.Abbrev() + "Inc"
}

// Bot returns the low end of the carrier.  Parallel-safe.
func (ZIncUniverse[S]) Bot() int64 {
	var s S
	lo, _ := s.Bounds()
	//
	return lo
}

// Top returns the high end of the carrier.  Parallel-safe.
func (ZIncUniverse[S]) Top() int64 {
	var s S
	_, hi := s.Bounds()
	//
	return hi
}

// Next returns x+1, saturating at top and at a minus-infinity bottom.
// Parallel-safe.
func (u ZIncUniverse[S]) Next(x int64) int64 {
	var s S
	//
	if x == u.Top() || (x == u.Bot() && !s.LowerClosed()) {
		return x
	}
	//
	return x + 1
}

// Prev returns x-1, saturating at bot and at a plus-infinity top.
// Parallel-safe.
func (u ZIncUniverse[S]) Prev(x int64) int64 {
	var s S
	//
	if x == u.Bot() || (x == u.Top() && !s.UpperClosed()) {
		return x
	}
	//
	return x - 1
}

// Join returns the numeric maximum.  Parallel-safe.
func (ZIncUniverse[S]) Join(x, y int64) int64 {
	return max(x, y)
}

// Meet returns the numeric minimum.  Parallel-safe.
func (ZIncUniverse[S]) Meet(x, y int64) int64 {
	return min(x, y)
}

// Order coincides with numeric comparison.  Parallel-safe.
func (ZIncUniverse[S]) Order(x, y int64) bool {
	return x <= y
}

// StrictOrder coincides with strict numeric comparison.  Parallel-safe.
func (ZIncUniverse[S]) StrictOrder(x, y int64) bool {
	return x < y
}

// OrderSig returns ≥, the constraint realized by an element of this
// universe.
func (ZIncUniverse[S]) OrderSig() logic.Sig {
	return logic.Geq
}

// StrictOrderSig returns >.
func (ZIncUniverse[S]) StrictOrderSig() logic.Sig {
	return logic.Gt
}

// Check panics unless v lies within the carrier, where an open range end is
// an infinity sentinel rather than a member.  Sequential-only.
func (u ZIncUniverse[S]) Check(v int64) {
	checkMember[S](u.Name(), v)
}

// ===================================================================
// Decreasing family
// ===================================================================

// Name of this universe, as reported in diagnostics.
func (ZDecUniverse[S]) Name() string {
	var s S
	return "Z" + s.Abbrev() + "Dec"
}

// Bot returns the high end of the carrier: the least informative upper
// bound.  Parallel-safe.
func (ZDecUniverse[S]) Bot() int64 {
	var s S
	_, hi := s.Bounds()
	//
	return hi
}

// Top returns the low end of the carrier.  Parallel-safe.
func (ZDecUniverse[S]) Top() int64 {
	var s S
	lo, _ := s.Bounds()
	//
	return lo
}

// Next returns x-1, saturating at top and at a plus-infinity bottom.
// Parallel-safe.
func (u ZDecUniverse[S]) Next(x int64) int64 {
	var s S
	//
	if x == u.Top() || (x == u.Bot() && !s.UpperClosed()) {
		return x
	}
	//
	return x - 1
}

// Prev returns x+1, saturating at bot and at a minus-infinity top.
// Parallel-safe.
func (u ZDecUniverse[S]) Prev(x int64) int64 {
	var s S
	//
	if x == u.Bot() || (x == u.Top() && !s.LowerClosed()) {
		return x
	}
	//
	return x + 1
}

// Join returns the numeric minimum.  Parallel-safe.
func (ZDecUniverse[S]) Join(x, y int64) int64 {
	return min(x, y)
}

// Meet returns the numeric maximum.  Parallel-safe.
func (ZDecUniverse[S]) Meet(x, y int64) int64 {
	return max(x, y)
}

// Order runs against numeric comparison: x is below y when x is the larger
// value.  Parallel-safe.
func (ZDecUniverse[S]) Order(x, y int64) bool {
	return x >= y
}

// StrictOrder runs against strict numeric comparison.  Parallel-safe.
func (ZDecUniverse[S]) StrictOrder(x, y int64) bool {
	return x > y
}

// OrderSig returns ≤, the constraint realized by an element of this
// universe.
func (ZDecUniverse[S]) OrderSig() logic.Sig {
	return logic.Leq
}

// StrictOrderSig returns <.
func (ZDecUniverse[S]) StrictOrderSig() logic.Sig {
	return logic.Lt
}

// Check panics unless v lies within the carrier.  Membership does not
// depend on the direction of the order, hence this coincides with the
// increasing family.  Sequential-only.
func (u ZDecUniverse[S]) Check(v int64) {
	checkMember[S](u.Name(), v)
}

// Check that v is a representable value of the carrier selected by S: within
// its bounds, where an open end is an infinity sentinel and excluded.
func checkMember[S Sign](name string, v int64) {
	var s S
	lo, hi := s.Bounds()
	//
	if v < lo || v > hi || (v == lo && !s.LowerClosed()) || (v == hi && !s.UpperClosed()) {
		panic(fmt.Sprintf("value %d is not a member of %s", v, name))
	}
}
