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

// Package uri provides a lenient URI value type: parsing into named parts,
// resolution of relative references against a base, serialization back to a
// string, and key/value access to the query and fragment components.
//
// The package offers:
//   - URI: a mutable value holding scheme, user, password, host, port, path,
//     query and fragment. Host IPv6 literals keep their brackets.
//   - Parse: a total parser. It never fails and degrades to best-effort
//     extraction on malformed input.
//   - Resolve: reference resolution with dot-segment removal.
//   - Data: an ordered, decoded view of "key=value&..." query or fragment data,
//     read with GetData and written with SetData.
//   - New: construction from strings, *URI values or fmt.Stringer values
//     against an explicit base or an injected Locator.
//
// A URI is not safe for concurrent mutation; it belongs to one owner at a time.
package uri

import (
	"encoding/json"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Part names a component, or a derived view, of a URI.
type Part string

// The parts accepted by Get and Set.
const (
	PartScheme    Part = "scheme"
	PartUser      Part = "user"
	PartPassword  Part = "password"
	PartHost      Part = "host"
	PartPort      Part = "port"
	PartPath      Part = "path"
	PartDirectory Part = "directory"
	PartFile      Part = "file"
	PartQuery     Part = "query"
	PartFragment  Part = "fragment"
)

// URI is a parsed URI reference. Its zero value is the empty reference.
//
// The query and fragment are stored as raw strings; key/value views over
// them are computed on demand by GetData and DataValue.
type URI struct {
	scheme       string
	user         string
	password     string
	host         string
	port         string
	path         string
	query        string
	fragment     string
	hasAuthority bool
}

// Option configures New.
type Option func(*options)

type options struct {
	base    any
	locator Locator
}

// WithBase sets the base a relative reference is resolved against. It
// accepts the same kinds of values as New's reference.
func WithBase(base any) Option {
	return func(o *options) { o.base = base }
}

// WithLocator sets the collaborator that supplies the current location,
// used as the base when WithBase is not given.
func WithLocator(l Locator) Option {
	return func(o *options) { o.locator = l }
}

// New builds a URI from ref, resolved against the configured base.
//
// ref may be nil, a string, a *URI or a fmt.Stringer. A nil ref yields the
// base itself. The base comes from WithBase or, failing that, from the
// WithLocator collaborator; without either, ref is returned unresolved.
//
// New returns ErrInvalidArgument for any other ref or base type, and
// ErrMissingBase when ref is nil and there is nothing to default to.
func New(ref any, opts ...Option) (*URI, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	refURI, err := coerce("reference", ref)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var baseURI *URI
	switch {
	case o.base != nil:
		if baseURI, err = coerce("base", o.base); err != nil {
			return nil, errtrace.Wrap(err)
		}
	case o.locator != nil:
		baseURI = Parse(o.locator.Location())
	}

	if refURI == nil {
		if baseURI == nil {
			return nil, errtrace.Wrap(&ArgumentError{Kind: ErrMissingBase, Name: "reference"})
		}
		return baseURI, nil
	}
	return Resolve(refURI, baseURI), nil
}

// coerce converts a construction argument into a fresh URI. A nil value
// yields a nil URI.
func coerce(name string, v any) (*URI, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return Parse(v), nil
	case *URI:
		if v == nil {
			return nil, nil
		}
		return v.Clone(), nil
	case fmt.Stringer:
		return Parse(v.String()), nil
	default:
		return nil, errtrace.Wrap(newInvalidArgumentError(name, v))
	}
}

// Clone returns a copy of u that shares no state with it.
func (u *URI) Clone() *URI {
	c := *u
	return &c
}

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool {
	return u.scheme != ""
}

// HasAuthority reports whether the URI carries an authority component,
// even an empty one as in "file:///etc/hosts".
func (u *URI) HasAuthority() bool {
	return u.hasAuthority
}

// IsEmpty reports whether the URI has no part at all.
func (u *URI) IsEmpty() bool {
	return u.scheme == "" && !u.hasAuthority && u.path == "" && u.query == "" && u.fragment == ""
}

// Get returns the named part. Unknown parts yield the empty string.
func (u *URI) Get(part Part) string {
	switch part {
	case PartScheme:
		return u.scheme
	case PartUser:
		return u.user
	case PartPassword:
		return u.password
	case PartHost:
		return u.host
	case PartPort:
		return u.port
	case PartPath:
		return u.path
	case PartDirectory:
		dir, _ := splitPath(u.path)
		return dir
	case PartFile:
		_, file := splitPath(u.path)
		return file
	case PartQuery:
		return u.query
	case PartFragment:
		return u.fragment
	}
	return ""
}

// Set replaces the named part and returns u. Setting the directory keeps
// the file and vice versa; setting any authority part turns the authority
// on. Unknown parts are ignored.
func (u *URI) Set(part Part, value string) *URI {
	switch part {
	case PartScheme:
		u.scheme = value
	case PartUser:
		u.user = value
		u.hasAuthority = true
	case PartPassword:
		u.password = value
		u.hasAuthority = true
	case PartHost:
		u.host = value
		u.hasAuthority = true
	case PartPort:
		u.port = value
		u.hasAuthority = true
	case PartPath:
		u.path = value
	case PartDirectory:
		_, file := splitPath(u.path)
		if value != "" && !strings.HasSuffix(value, "/") {
			value += "/"
		}
		u.path = value + file
	case PartFile:
		dir, _ := splitPath(u.path)
		u.path = dir + value
	case PartQuery:
		u.query = value
	case PartFragment:
		u.fragment = value
	}
	return u
}

// Resolve resolves ref against u and returns a new URI. u is not modified.
func (u *URI) Resolve(ref string) *URI {
	return Resolve(Parse(ref), u)
}

// String reassembles the URI. Markers of empty parts are omitted, and an
// authority followed by an empty path gets a "/" path.
func (u *URI) String() string {
	var b strings.Builder
	b.Grow(len(u.scheme) + len(u.user) + len(u.password) + len(u.host) + len(u.port) +
		len(u.path) + len(u.query) + len(u.fragment) + 8)

	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority {
		b.WriteString(authorityPrefix)
		writeAuthority(&b, u.user, u.password, u.host, u.port)
		if !strings.HasPrefix(u.path, "/") {
			b.WriteByte('/')
		}
	}
	b.WriteString(u.path)
	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// writeAuthority writes "user:password@host:port", skipping the markers of
// empty parts.
func writeAuthority(b *strings.Builder, user, password, host, port string) {
	if user != "" {
		b.WriteString(user)
		if password != "" {
			b.WriteByte(':')
			b.WriteString(password)
		}
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as
// a JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.String()))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a URI.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	*u = *Parse(s)
	return nil
}
