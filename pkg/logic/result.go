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

import "strings"

// Result is the outcome of interpreting a formula: either a success value of
// type T or a fatal Error, together with an ordered list of non-fatal
// warnings accumulated along the way.
type Result[T any] struct {
	// The value itself, meaningful only when err is nil.
	value T
	// Fatal failure, or nil on success.
	err *Error
	// Advisory diagnostics, on success or failure.
	warnings []*Error
}

// Ok constructs a successful result holding the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed result holding the given fatal error.
func Err[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// IsOk indicates whether this result holds a value, as opposed to a fatal
// error.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value, or panics if this result holds an error.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("cannot take the value of a failed result")
	}
	//
	return r.value
}

// Err returns the fatal error, or nil if this result is a success.
func (r Result[T]) Err() *Error {
	return r.err
}

// PushWarning attaches a non-fatal diagnostic to this result.
func (r *Result[T]) PushWarning(warning *Error) {
	r.warnings = append(r.warnings, warning)
}

// Warnings returns the non-fatal diagnostics accumulated by this result.
func (r Result[T]) Warnings() []*Error {
	return r.warnings
}

// Map transforms the success value of a result, carrying failure and
// warnings across unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	var mapped Result[U]
	//
	if r.err != nil {
		mapped = Err[U](r.err)
	} else {
		mapped = Ok(fn(r.value))
	}
	//
	mapped.warnings = r.warnings
	//
	return mapped
}

// PrintDiagnostics renders the full diagnostic report of this result: the
// error tree of a failure (or a success banner), followed by any warnings.
func (r Result[T]) PrintDiagnostics() string {
	var builder strings.Builder
	//
	if r.err != nil {
		builder.WriteString(r.err.String())
	} else {
		builder.WriteString("Successfully interpreted.\n")
	}
	//
	for _, warning := range r.warnings {
		builder.WriteString(warning.String())
	}
	//
	return builder.String()
}
