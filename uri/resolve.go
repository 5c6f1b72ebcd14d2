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

import "strings"

// Resolve resolves the reference ref against base and returns a new URI.
// Neither argument is modified.
//
//   - A reference with a scheme is already absolute and is returned as is.
//   - A reference with an authority keeps it and only borrows the base scheme.
//   - A reference with an absolute path borrows the base scheme and authority.
//   - A reference with a relative path is merged with the base directory.
//   - A reference with no path keeps the base path.
//   - An empty reference resolves to the base itself.
//
// The query and fragment always come from the reference; those of the base
// are only carried over by an empty reference. A nil base leaves the
// reference unresolved.
func Resolve(ref, base *URI) *URI {
	if base == nil || ref.IsAbsolute() {
		return ref.Clone()
	}
	if ref.IsEmpty() {
		return base.Clone()
	}

	t := &URI{
		scheme:   base.scheme,
		query:    ref.query,
		fragment: ref.fragment,
	}

	if ref.hasAuthority {
		t.copyAuthority(ref)
		t.path = removeDotSegments(ref.path)
		return t
	}

	t.copyAuthority(base)
	switch {
	case ref.path == "":
		t.path = base.path
	case strings.HasPrefix(ref.path, "/"):
		t.path = removeDotSegments(ref.path)
	default:
		t.path = removeDotSegments(mergePath(base.path, base.hasAuthority, ref.path))
	}
	return t
}

// copyAuthority copies the authority component of src into u.
func (u *URI) copyAuthority(src *URI) {
	u.user = src.user
	u.password = src.password
	u.host = src.host
	u.port = src.port
	u.hasAuthority = src.hasAuthority
}
