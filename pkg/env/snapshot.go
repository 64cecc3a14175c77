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

package env

// Snapshot is a checkpoint of an environment: the watermark of every table
// at the moment it was taken.  Since the environment only ever grows,
// restoring is a truncation back to those watermarks.  A snapshot remains
// valid across any number of restores to it, but restoring a snapshot
// whose watermarks have already been truncated away by an earlier restore
// is undefined.
type Snapshot struct {
	// Occurrence count of each variable declared at the checkpoint.
	avarCounts []int
	// Occurrence count of each abstract domain known at the checkpoint.
	domCounts []int
}

// Snapshot records the current extent of every table of this environment.
func (e *VarEnv) Snapshot() Snapshot {
	avarCounts := make([]int, len(e.lvars))
	domCounts := make([]int, len(e.avar2lvar))
	//
	for i := range e.lvars {
		avarCounts[i] = len(e.lvars[i].avars)
	}
	//
	for d := range e.avar2lvar {
		domCounts[d] = len(e.avar2lvar[d])
	}
	//
	return Snapshot{avarCounts, domCounts}
}

// Restore truncates this environment back to the extent recorded in the
// given snapshot, discarding every variable, occurrence and domain declared
// since.  Capacity is retained, so re-declaring after a restore does not
// reallocate.
func (e *VarEnv) Restore(snap Snapshot) {
	e.lvars = e.lvars[:len(snap.avarCounts)]
	//
	for i := range e.lvars {
		e.lvars[i].avars = e.lvars[i].avars[:snap.avarCounts[i]]
	}
	//
	e.avar2lvar = e.avar2lvar[:len(snap.domCounts)]
	//
	for d := range e.avar2lvar {
		e.avar2lvar[d] = e.avar2lvar[d][:snap.domCounts[d]]
	}
}
