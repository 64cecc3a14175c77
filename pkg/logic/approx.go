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

// Approx describes which logical direction of error an interpretation is
// allowed to introduce.  Under-approximation is sound for negative
// conclusions (if the approximated constraint fails, so does the original);
// over-approximation is sound for positive conclusions.
type Approx int

const (
	// Exact permits no approximation whatsoever.
	Exact Approx = iota
	// Under permits the interpretation to represent a subset of the
	// solutions of the original formula.
	Under
	// Over permits the interpretation to represent a superset of the
	// solutions of the original formula.
	Over
)

func (a Approx) String() string {
	switch a {
	case Exact:
		return "exact"
	case Under:
		return "under"
	case Over:
		return "over"
	default:
		panic(fmt.Sprintf("unknown approximation: %d", a))
	}
}
