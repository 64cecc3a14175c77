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

import (
	"fmt"
	"strings"
)

// Error describes why a formula could not be interpreted in some abstract
// domain.  Errors form trees: interpreting a compound formula accumulates one
// sub-error per failing sub-formula rather than stopping at the first, so a
// user sees every reason the formula was rejected.  An Error is either fatal
// (interpretation produced no usable value) or a warning (advisory, attached
// to an otherwise-successful result).
type Error struct {
	// Indicates whether this error aborted interpretation.
	fatal bool
	// Name of the abstract domain reporting the failure.
	domain string
	// Human-readable explanation.
	description string
	// The formula which could not be interpreted.
	formula Formula
	// Abstract domain tag the formula was targeted at, or Untyped.
	aty AType
	// Failures of sub-formulas, in formula order.
	suberrors []*Error
}

// NewError constructs a fatal interpretation error reported by the named
// domain against the given formula.
func NewError(domain string, formula Formula, description string) *Error {
	return &Error{
		fatal:       true,
		domain:      domain,
		description: description,
		formula:     formula,
		aty:         formula.Type(),
	}
}

// NewWarning constructs a non-fatal interpretation warning reported by the
// named domain against the given formula.
func NewWarning(domain string, formula Formula, description string) *Error {
	return &Error{
		fatal:       false,
		domain:      domain,
		description: description,
		formula:     formula,
		aty:         formula.Type(),
	}
}

// AddSubError attaches the failure of a sub-formula to this error.
func (e *Error) AddSubError(sub *Error) {
	e.suberrors = append(e.suberrors, sub)
}

// IsFatal indicates whether this error aborted interpretation, as opposed to
// being an advisory warning.
func (e *Error) IsFatal() bool { return e.fatal }

// Domain returns the name of the abstract domain which reported this error.
func (e *Error) Domain() string { return e.domain }

// Description returns the human-readable explanation.
func (e *Error) Description() string { return e.description }

// Formula returns the formula which could not be interpreted.
func (e *Error) Formula() Formula { return e.formula }

// Type returns the abstract domain tag the offending formula was targeted
// at, or Untyped.
func (e *Error) Type() AType { return e.aty }

// SubErrors returns the failures of sub-formulas, in formula order.
func (e *Error) SubErrors() []*Error { return e.suberrors }

// Error provides a one-line summary, satisfying the standard error
// interface.  Use String for the full indented tree.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.domain, e.description)
}

func (e *Error) String() string {
	var builder strings.Builder
	//
	e.print(&builder, 0)
	//
	return builder.String()
}

func (e *Error) print(builder *strings.Builder, indent int) {
	severity := "[error]"
	if !e.fatal {
		severity = "[warning]"
	}
	//
	printIndent(builder, indent)
	builder.WriteString(severity)
	builder.WriteString(" Uninterpretable formula.\n")
	printIndent(builder, indent+1)
	fmt.Fprintf(builder, "Abstract domain: %s\n", e.domain)
	printIndent(builder, indent+1)
	fmt.Fprintf(builder, "Abstract type: %s\n", e.aty)
	printIndent(builder, indent+1)
	fmt.Fprintf(builder, "Formula: %s\n", e.formula)
	printIndent(builder, indent+1)
	fmt.Fprintf(builder, "Description: %s\n", e.description)
	//
	for _, sub := range e.suberrors {
		sub.print(builder, indent+2)
	}
}

func printIndent(builder *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		builder.WriteString("  ")
	}
}
