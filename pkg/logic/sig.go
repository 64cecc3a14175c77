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

import "fmt"

// Sig enumerates the logical symbols which can appear in formulas: the binary
// connectives, unary negation and the relational predicates.  Universe
// policies identify the relational symbol realizing their order via this
// type, and Boolean universes evaluate connectives addressed by it.
type Sig int

const (
	// And is the conjunction connective.
	And Sig = iota
	// Or is the disjunction connective.
	Or
	// Imply is the implication connective.
	Imply
	// ImpliedBy is the converse implication connective.  It arises as the
	// order symbol of dualized knowledge orders.
	ImpliedBy
	// Equiv is the equivalence connective.
	Equiv
	// Xor is the exclusive-disjunction connective.
	Xor
	// Not is the unary negation connective.
	Not
	// Eq is the equality predicate.
	Eq
	// Neq is the disequality predicate.
	Neq
	// Leq is the non-strict less-than predicate.
	Leq
	// Lt is the strict less-than predicate.
	Lt
	// Geq is the non-strict greater-than predicate.
	Geq
	// Gt is the strict greater-than predicate.
	Gt
)

// IsRelational determines whether this symbol is a relational predicate, as
// opposed to a connective.
func (s Sig) IsRelational() bool {
	return s >= Eq
}

func (s Sig) String() string {
	switch s {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Imply:
		return "⇒"
	case ImpliedBy:
		return "⇐"
	case Equiv:
		return "⇔"
	case Xor:
		return "⊻"
	case Not:
		return "¬"
	case Eq:
		return "="
	case Neq:
		return "≠"
	case Leq:
		return "≤"
	case Lt:
		return "<"
	case Geq:
		return "≥"
	case Gt:
		return ">"
	default:
		panic(fmt.Sprintf("unknown logical symbol: %d", s))
	}
}
