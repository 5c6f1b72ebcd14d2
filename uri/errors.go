/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "fmt"

// Error is a sentinel error kind of this package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArgument is returned by New when a reference or base is not
	// a string, a *URI or a fmt.Stringer.
	ErrInvalidArgument Error = "invalid argument"
	// ErrMissingBase is returned by New when no reference is given and
	// neither a base nor a locator can stand in for it.
	ErrMissingBase Error = "missing base URI"
)

// ArgumentError describes a value rejected at the New boundary.
// It matches its Kind with errors.Is.
type ArgumentError struct {
	Kind  Error
	Name  string
	Value any
}

// Error returns the string representation of the argument error.
func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("URI %s: %s", e.Name, e.Kind)
	}
	return fmt.Sprintf("URI %s: %s of type %T", e.Name, e.Kind, e.Value)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func newInvalidArgumentError(name string, v any) *ArgumentError {
	return &ArgumentError{Kind: ErrInvalidArgument, Name: name, Value: v}
}
