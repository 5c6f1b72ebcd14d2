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
	"unicode"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// writeEscaped writes the %XX form of a single octet.
func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&0x0F])
}

// encodeComponent percent-encodes every octet of s outside the RFC 3986
// unreserved set. A space becomes "%20", never "+".
func encodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		if isUnreserved(s[i]) {
			b.WriteByte(s[i])
			continue
		}
		writeEscaped(&b, s[i])
	}
	return b.String()
}

// decodeComponent decodes percent-encoded octets in s. When plusAsSpace is
// set, '+' decodes to a space. A run of escapes that does not form valid
// UTF-8, and any malformed escape, is kept as written.
func decodeComponent(s string, plusAsSpace bool) string {
	if !strings.ContainsRune(s, '%') && (!plusAsSpace || !strings.ContainsRune(s, '+')) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		switch s[i] {
		case '+':
			if plusAsSpace {
				b.WriteByte(' ')
			} else {
				b.WriteByte('+')
			}
			i++
			continue
		case '%':
		default:
			b.WriteByte(s[i])
			i++
			continue
		}

		start := i
		var decoded []byte
		for i+2 < len(s) && s[i] == '%' {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				break
			}
			decoded = append(decoded, hi<<4|lo)
			i += 3
		}

		if i == start {
			b.WriteByte('%')
			i++
			continue
		}

		if utf8.Valid(decoded) {
			b.Write(decoded)
		} else {
			b.WriteString(s[start:i])
		}
	}
	return b.String()
}

// percentEncodeNonASCII percent-encodes the UTF-8 octets of every non-ASCII
// rune of s and copies the rest unchanged.
func percentEncodeNonASCII(s string, b *strings.Builder) {
	for _, ru := range s {
		if ru <= unicode.MaxASCII {
			b.WriteRune(ru)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], ru)
		for i := 0; i < n; i++ {
			writeEscaped(b, buf[i])
		}
	}
}
