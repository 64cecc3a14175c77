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

// Package env implements the variable environment: the bridge between named
// logical variables and per-domain abstract-variable identifiers.  The
// environment interprets declaration and occurrence formulas, resolves
// lookups in either direction, and supports checkpoint/restore for
// backtracking search.  All operations here are sequential-only.
package env

import (
	"fmt"

	"github.com/consensys/go-lattice/pkg/logic"
	"github.com/consensys/go-lattice/pkg/util"
)

// Name under which this component reports interpretation failures.
const envName = "VarEnv"

// Variable is one logical variable known to the environment: its name, its
// declared sort and the ordered list of its occurrences across abstract
// domains.  A variable has at most one occurrence per domain.
type Variable struct {
	name string
	sort logic.Sort
	// One occurrence per abstract domain this variable is declared in, in
	// declaration order.
	avars []logic.AVar
}

// Name returns the logical name of this variable.
func (v *Variable) Name() string { return v.name }

// Sort returns the declared sort of this variable.
func (v *Variable) Sort() logic.Sort { return v.sort }

// AVars returns the occurrences of this variable, one per abstract domain,
// in declaration order.
func (v *Variable) AVars() []logic.AVar { return v.avars }

// AVarOf returns this variable's occurrence in the given abstract domain,
// if it has one.
func (v *Variable) AVarOf(aty logic.AType) util.Option[logic.AVar] {
	for _, av := range v.avars {
		if av.Type() == aty {
			return util.Some(av)
		}
	}
	//
	return util.None[logic.AVar]()
}

// VarEnv owns the variable records and, per abstract domain, the table
// mapping per-domain indices back to variables.  The two directions are
// kept consistent under all mutation: avar2lvar[d][i] always names a
// variable which itself lists (d,i) among its occurrences.  Growth is
// monotonic; indices are never reused except by Restore.
type VarEnv struct {
	// All known variables, in declaration order.
	lvars []Variable
	// For each abstract domain, the variable index of each of its
	// occurrences.
	avar2lvar [][]int
}

// NewVarEnv constructs an empty environment.
func NewVarEnv() *VarEnv {
	return &VarEnv{}
}

// ===================================================================
// Interpretation
// ===================================================================

// Interpret resolves a formula to an abstract variable.  Existential
// quantification declares a new occurrence (or echoes an existing one);
// a logical-variable occurrence resolves against existing declarations;
// a resolved abstract-variable reference is validated and echoed back.
// Anything else is an unsupported shape.
func (e *VarEnv) Interpret(f logic.Formula) logic.Result[logic.AVar] {
	switch {
	case f.IsExists():
		return e.interpretExistential(f)
	case f.IsVar():
		return e.interpretOccurrence(f)
	case f.IsAVar():
		if !e.ContainsAVar(f.AVar()) {
			return logic.Err[logic.AVar](logic.NewError(envName, f,
				fmt.Sprintf("the abstract variable %s is not declared", f.AVar())))
		}
		//
		return logic.Ok(f.AVar())
	default:
		return logic.Err[logic.AVar](logic.NewError(envName, f,
			"only quantifiers and variable occurrences can be interpreted here"))
	}
}

// Declare the variable of an existential quantifier in the quantifier's
// target domain.  Redeclaration in a further domain is legal; redeclaration
// under an incompatible sort is not.
func (e *VarEnv) interpretExistential(f logic.Formula) logic.Result[logic.AVar] {
	name, sort, aty := f.Name(), f.Sort(), f.Type()
	//
	if aty == logic.Untyped {
		return logic.Err[logic.AVar](logic.NewError(envName, f,
			fmt.Sprintf("the quantification of %s carries no target abstract domain", name)))
	}
	//
	if existing := e.VariableOf(name); existing != nil && existing.sort != sort {
		return logic.Err[logic.AVar](logic.NewError(envName, f,
			fmt.Sprintf("%s was previously declared with sort %s", name, existing.sort)))
	}
	//
	return logic.Ok(e.extendVars(aty, name, sort))
}

// Resolve a bare occurrence of a logical variable.  A typed occurrence must
// already be declared in its target domain; an untyped occurrence must be
// unambiguous.
func (e *VarEnv) interpretOccurrence(f logic.Formula) logic.Result[logic.AVar] {
	name, aty := f.Name(), f.Type()
	variable := e.VariableOf(name)
	//
	if variable == nil {
		return logic.Err[logic.AVar](logic.NewError(envName, f,
			fmt.Sprintf("the variable %s is not declared", name)))
	}
	//
	if aty == logic.Untyped {
		if len(variable.avars) == 1 {
			return logic.Ok(variable.avars[0])
		}
		//
		return logic.Err[logic.AVar](logic.NewError(envName, f,
			fmt.Sprintf("the occurrence of %s is ambiguous: it is declared in %d abstract domains",
				name, len(variable.avars))))
	}
	//
	if av := variable.AVarOf(aty); av.HasValue() {
		return logic.Ok(av.Unwrap())
	}
	//
	return logic.Err[logic.AVar](logic.NewError(envName, f,
		fmt.Sprintf("%s is not declared in abstract domain %s", name, aty)))
}

// Record a new occurrence of the named variable in the given domain,
// extending the domain tables as required.  When the variable already
// occurs there, the existing occurrence is returned instead.
func (e *VarEnv) extendVars(aty logic.AType, name string, sort logic.Sort) logic.AVar {
	for logic.AType(len(e.avar2lvar)) <= aty {
		e.AddDomain()
	}
	//
	av := logic.NewAVar(aty, len(e.avar2lvar[aty]))
	idx := e.indexOf(name)
	//
	if idx >= 0 {
		if existing := e.lvars[idx].AVarOf(aty); existing.HasValue() {
			return existing.Unwrap()
		}
		//
		e.lvars[idx].avars = append(e.lvars[idx].avars, av)
	} else {
		idx = len(e.lvars)
		e.lvars = append(e.lvars, Variable{name, sort, []logic.AVar{av}})
	}
	//
	e.avar2lvar[aty] = append(e.avar2lvar[aty], idx)
	//
	return av
}

// AddDomain registers a further abstract domain, returning its identifier.
func (e *VarEnv) AddDomain() logic.AType {
	aty := logic.AType(len(e.avar2lvar))
	e.avar2lvar = append(e.avar2lvar, nil)
	//
	return aty
}

// ===================================================================
// Lookups
// ===================================================================

// NumVars returns the number of declared variables.
func (e *VarEnv) NumVars() int {
	return len(e.lvars)
}

// NumDoms returns the number of known abstract domains.
func (e *VarEnv) NumDoms() int {
	return len(e.avar2lvar)
}

// NumVarsIn returns the number of variable occurrences in the given
// abstract domain, which is zero for domains the environment has never
// seen.
func (e *VarEnv) NumVarsIn(aty logic.AType) int {
	if aty < 0 || int(aty) >= len(e.avar2lvar) {
		return 0
	}
	//
	return len(e.avar2lvar[aty])
}

// Contains checks whether a variable with the given name is declared.
func (e *VarEnv) Contains(name string) bool {
	return e.indexOf(name) >= 0
}

// ContainsAVar checks whether the given abstract variable is declared.
func (e *VarEnv) ContainsAVar(av logic.AVar) bool {
	aty, vid := av.Type(), av.Vid()
	//
	return aty >= 0 && int(aty) < len(e.avar2lvar) && vid >= 0 && vid < len(e.avar2lvar[aty])
}

// VariableOf returns the record of the named variable, or nil when it is
// not declared.  The returned pointer is valid until the next declaration.
func (e *VarEnv) VariableOf(name string) *Variable {
	if idx := e.indexOf(name); idx >= 0 {
		return &e.lvars[idx]
	}
	//
	return nil
}

// Variable returns the ith declared variable.  Indexing out of range is a
// precondition violation.
func (e *VarEnv) Variable(i int) *Variable {
	return &e.lvars[i]
}

// VariableOfAVar returns the record behind an abstract variable.  Indexing
// with an undeclared abstract variable is a precondition violation.
func (e *VarEnv) VariableOfAVar(av logic.AVar) *Variable {
	return &e.lvars[e.avar2lvar[av.Type()][av.Vid()]]
}

// NameOf returns the logical name behind an abstract variable.
func (e *VarEnv) NameOf(av logic.AVar) string {
	return e.VariableOfAVar(av).name
}

// SortOf returns the declared sort behind an abstract variable.
func (e *VarEnv) SortOf(av logic.AVar) logic.Sort {
	return e.VariableOfAVar(av).sort
}

// Index of the named variable, or -1.
func (e *VarEnv) indexOf(name string) int {
	for i := range e.lvars {
		if e.lvars[i].name == name {
			return i
		}
	}
	//
	return -1
}

// VarIn returns the environment's record of the first variable occurring in
// the given formula, or nil when its leading sub-formula mentions none.
func VarIn(f logic.Formula, e *VarEnv) *Variable {
	switch {
	case f.IsConj():
		if conjuncts := f.Conjuncts(); len(conjuncts) > 0 {
			return VarIn(conjuncts[0], e)
		}
	case f.IsRel():
		return VarIn(f.Lhs(), e)
	case f.IsExists(), f.IsVar():
		return e.VariableOf(f.Name())
	case f.IsAVar():
		if e.ContainsAVar(f.AVar()) {
			return e.VariableOfAVar(f.AVar())
		}
	}
	//
	return nil
}
