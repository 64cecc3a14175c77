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

// Sort describes the declared base type of a logical variable.  Universes
// accept existential declarations only for compatible sorts (e.g. Int for
// integer universes), and the variable environment rejects redeclarations
// under an incompatible sort.
type Sort int

const (
	// Bool is the sort of Boolean variables.
	Bool Sort = iota
	// Int is the sort of (unbounded) integer variables.
	Int
	// Real is the sort of real variables.
	Real
)

func (s Sort) String() string {
	switch s {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Real:
		return "Real"
	default:
		panic(fmt.Sprintf("unknown sort: %d", s))
	}
}
