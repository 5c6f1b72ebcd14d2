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

import (
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ASCII returns u serialized with ASCII characters only, for transports
// that cannot carry anything else. Each component is brought to NFC; the
// host then goes through IDNA ToASCII and the other components have their
// non-ASCII characters percent-encoded as UTF-8. u itself is not modified.
//
// A host that IDNA rejects is percent-encoded like the other components.
func (u *URI) ASCII() string {
	var b strings.Builder
	b.Grow(len(u.String()))

	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority {
		b.WriteString(authorityPrefix)
		var auth strings.Builder
		writeAuthority(&auth, nfc(u.user), nfc(u.password), asciiHost(u.host), u.port)
		percentEncodeNonASCII(auth.String(), &b)
		if !strings.HasPrefix(u.path, "/") {
			b.WriteByte('/')
		}
	}
	percentEncodeNonASCII(nfc(u.path), &b)
	if u.query != "" {
		b.WriteByte('?')
		percentEncodeNonASCII(nfc(u.query), &b)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		percentEncodeNonASCII(nfc(u.fragment), &b)
	}
	return b.String()
}

// nfc returns s in Unicode Normalization Form C.
func nfc(s string) string {
	return norm.NFC.String(s)
}

// asciiHost converts a registered name to its IDNA ASCII form. IP literals
// and names IDNA rejects are returned in NFC.
func asciiHost(host string) string {
	host = nfc(host)
	if host == "" || strings.HasPrefix(host, "[") {
		return host
	}
	if ascii, err := idna.ToASCII(host); err == nil {
		return ascii
	}
	return host
}
