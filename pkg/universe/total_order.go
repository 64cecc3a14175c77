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
)

// TotalOrder is one element of a totally-ordered abstract domain: a single
// carrier value whose meaning is defined entirely by the universe policy U.
// The policy is a type parameter rather than a field, hence an element is
// exactly one carrier value wide, copies by value and never aliases.
// Elements are owned exclusively by the thread operating on them; sharing
// happens only by disjoint partitioning.
type TotalOrder[U Universe[V], V any] struct {
	value V
}

// Convenience instantiations over the built-in universes.  Concretizations:
// an element v of ZInc represents {x | x ≥ v}, of ZDec {x | x ≤ v}; the
// P/N variants restrict the carrier to the naturals and the non-positive
// integers.  B is the knowledge order, BInc/BDec the truth orders.
type (
	// ZInc is an increasing signed integer element.
	ZInc = TotalOrder[ZIncUniverse[Signed], int64]
	// ZDec is a decreasing signed integer element.
	ZDec = TotalOrder[ZDecUniverse[Signed], int64]
	// ZPInc is an increasing natural element.
	ZPInc = TotalOrder[ZIncUniverse[Positive], int64]
	// ZPDec is a decreasing natural element.
	ZPDec = TotalOrder[ZDecUniverse[Positive], int64]
	// ZNInc is an increasing non-positive integer element.
	ZNInc = TotalOrder[ZIncUniverse[Negative], int64]
	// ZNDec is a decreasing non-positive integer element.
	ZNDec = TotalOrder[ZDecUniverse[Negative], int64]
	// B is a knowledge-order Boolean element.
	B = TotalOrder[PreB, bool]
	// BDual is a dualized knowledge-order Boolean element.
	BDual = TotalOrder[PreBDual, bool]
	// BInc is an increasing-truth Boolean element.
	BInc = TotalOrder[PreBInc, bool]
	// BDec is a decreasing-truth Boolean element.
	BDec = TotalOrder[PreBDec, bool]
)

// ===================================================================
// Construction
// ===================================================================

// New constructs the element of U holding the given carrier value, checking
// domain membership.  A violation is a caller bug and panics.
// Sequential-only.
func New[U Universe[V], V any](value V) TotalOrder[U, V] {
	var u U
	//
	u.Check(value)
	//
	return TotalOrder[U, V]{value}
}

// Bot returns the least element of U.  Parallel-safe.
func Bot[U Universe[V], V any]() TotalOrder[U, V] {
	var u U
	return TotalOrder[U, V]{u.Bot()}
}

// Top returns the greatest element of U.  Parallel-safe.
func Top[U Universe[V], V any]() TotalOrder[U, V] {
	var u U
	return TotalOrder[U, V]{u.Top()}
}

// NewZInc constructs an increasing signed integer element.
func NewZInc(value int64) ZInc { return New[ZIncUniverse[Signed]](value) }

// NewZDec constructs a decreasing signed integer element.
func NewZDec(value int64) ZDec { return New[ZDecUniverse[Signed]](value) }

// NewZPInc constructs an increasing natural element.
func NewZPInc(value int64) ZPInc { return New[ZIncUniverse[Positive]](value) }

// NewZPDec constructs a decreasing natural element.
func NewZPDec(value int64) ZPDec { return New[ZDecUniverse[Positive]](value) }

// NewZNInc constructs an increasing non-positive integer element.
func NewZNInc(value int64) ZNInc { return New[ZIncUniverse[Negative]](value) }

// NewZNDec constructs a decreasing non-positive integer element.
func NewZNDec(value int64) ZNDec { return New[ZDecUniverse[Negative]](value) }

// NewB constructs a knowledge-order Boolean element.
func NewB(value bool) B { return New[PreB](value) }

// NewBDual constructs a dualized knowledge-order Boolean element.
func NewBDual(value bool) BDual { return New[PreBDual](value) }

// NewBInc constructs an increasing-truth Boolean element.
func NewBInc(value bool) BInc { return New[PreBInc](value) }

// NewBDec constructs a decreasing-truth Boolean element.
func NewBDec(value bool) BDec { return New[PreBDec](value) }

// ===================================================================
// Lattice operations
// ===================================================================

// Value returns the carrier value of this element.  Parallel-safe.
func (e TotalOrder[U, V]) Value() V { return e.value }

// Bot returns the least element of the receiver's universe.  Parallel-safe.
func (e TotalOrder[U, V]) Bot() TotalOrder[U, V] {
	return Bot[U, V]()
}

// Top returns the greatest element of the receiver's universe.
// Parallel-safe.
func (e TotalOrder[U, V]) Top() TotalOrder[U, V] {
	return Top[U, V]()
}

// IsBot checks whether this element is the least element.  Parallel-safe.
func (e TotalOrder[U, V]) IsBot() bool {
	var u U
	return u.Order(e.value, u.Bot())
}

// IsTop checks whether this element is the greatest element.
// Parallel-safe.
func (e TotalOrder[U, V]) IsTop() bool {
	var u U
	return u.Order(u.Top(), e.value)
}

// Join returns the least upper bound of this element and the other.
// Parallel-safe.
func (e TotalOrder[U, V]) Join(other TotalOrder[U, V]) TotalOrder[U, V] {
	var u U
	return TotalOrder[U, V]{u.Join(e.value, other.value)}
}

// Meet returns the greatest lower bound of this element and the other.
// Parallel-safe.
func (e TotalOrder[U, V]) Meet(other TotalOrder[U, V]) TotalOrder[U, V] {
	var u U
	return TotalOrder[U, V]{u.Meet(e.value, other.value)}
}

// Order checks whether this element is below or equal to the other in the
// domain order.  Parallel-safe.
func (e TotalOrder[U, V]) Order(other TotalOrder[U, V]) bool {
	var u U
	return u.Order(e.value, other.value)
}

// StrictOrder checks whether this element is strictly below the other in
// the domain order.  Parallel-safe.
func (e TotalOrder[U, V]) StrictOrder(other TotalOrder[U, V]) bool {
	var u U
	return u.StrictOrder(e.value, other.value)
}

// Entails checks whether this element carries at least as much information
// as the other, i.e. whether the other is below or equal to it.
// Parallel-safe.
func (e TotalOrder[U, V]) Entails(other TotalOrder[U, V]) bool {
	var u U
	return u.Order(other.value, e.value)
}

// Tell joins the other element into this one in place, reporting whether
// the receiver changed.  Parallel-safe on exclusively-owned elements; this
// is the refinement primitive of a propagation loop.
func (e *TotalOrder[U, V]) Tell(other TotalOrder[U, V]) bool {
	var u U
	joined := u.Join(e.value, other.value)
	changed := u.StrictOrder(e.value, joined)
	e.value = joined
	//
	return changed
}

// DTell meets the other element into this one in place, reporting whether
// the receiver changed.  Parallel-safe on exclusively-owned elements.
func (e *TotalOrder[U, V]) DTell(other TotalOrder[U, V]) bool {
	var u U
	met := u.Meet(e.value, other.value)
	changed := u.StrictOrder(met, e.value)
	e.value = met
	//
	return changed
}

// ===================================================================
// Duality & splitting
// ===================================================================

// Dual reinterprets an element under the opposite policy D: the stored
// carrier value is identical, only the meaning of the operations flips.
// No copy, no transformation, no membership re-check.  Parallel-safe.
func Dual[D Universe[V], U Universe[V], V any](x TotalOrder[U, V]) TotalOrder[D, V] {
	return TotalOrder[D, V]{x.value}
}

// Split produces the sub-elements to enumerate when refining a search: none
// when this element is top (no refinement is possible), otherwise a single
// copy of the element itself.  Sequential-only.
func (e TotalOrder[U, V]) Split() []TotalOrder[U, V] {
	if e.IsTop() {
		return nil
	}
	//
	return []TotalOrder[U, V]{e}
}

// ===================================================================
// Printing
// ===================================================================

func (e TotalOrder[U, V]) String() string {
	if e.IsTop() {
		return "⊤"
	} else if e.IsBot() {
		return "⊥"
	}
	//
	return fmt.Sprintf("%v", e.value)
}
