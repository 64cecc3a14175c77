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

// AType identifies one abstract domain among the coexisting domains of a
// solver.  Domain identifiers are small dense indices handed out by the
// variable environment.
type AType int

// Untyped is the sentinel for "no abstract domain assigned yet".
const Untyped AType = -1

func (a AType) String() string {
	if a == Untyped {
		return "untyped"
	}
	//
	return fmt.Sprintf("%d", int(a))
}

// AVar identifies one occurrence of a variable within one specific abstract
// domain, as a pair of the domain identifier and a per-domain index.  AVars
// are immutable once created.
type AVar struct {
	aty AType
	vid int
}

// NewAVar constructs the abstract variable (aty, vid).
func NewAVar(aty AType, vid int) AVar {
	return AVar{aty, vid}
}

// Type returns the abstract domain this variable occurrence belongs to.
func (a AVar) Type() AType { return a.aty }

// Vid returns the index of this variable within its abstract domain.
func (a AVar) Vid() int { return a.vid }

func (a AVar) String() string {
	return fmt.Sprintf("(%d,%d)", int(a.aty), a.vid)
}
