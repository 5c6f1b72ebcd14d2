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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package uri

import (
	"strings"
	"testing"
)

func TestURI_ASCII(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple ASCII", "http://example.com/a/b", "http://example.com/a/b"},
		{"Bare host", "http://example.com", "http://example.com/"},
		{"Non-ASCII path", "http://example.com/résumé", "http://example.com/r%C3%A9sum%C3%A9"},
		{"Non-ASCII query", "http://example.com/?p=résumé", "http://example.com/?p=r%C3%A9sum%C3%A9"},
		{"Non-ASCII fragment", "http://example.com/#résumé", "http://example.com/#r%C3%A9sum%C3%A9"},
		{"Non-ASCII userinfo", "ftp://résumé@example.com/", "ftp://r%C3%A9sum%C3%A9@example.com/"},
		{"IDNA host", "http://résumé.example.org/", "http://xn--rsum-bpad.example.org/"},
		{"All parts", "http://user:p@résumé.com:8080/p?q=v#f", "http://user:p@xn--rsum-bpad.com:8080/p?q=v#f"},
		{"IPv6 host untouched", "http://[::1]:8080/é", "http://[::1]:8080/%C3%A9"},
		{"Long ASCII label", "http://" + strings.Repeat("a", 63) + ".com/", "http://" + strings.Repeat("a", 63) + ".com/"},
		{"NFC before encoding", "http://example.com/e\u0301", "http://example.com/%C3%A9"},
		{"Relative reference", "../été", "../%C3%A9t%C3%A9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := Parse(tc.input)
			before := u.String()
			if got := u.ASCII(); got != tc.expected {
				t.Errorf("ASCII() = %q, want %q", got, tc.expected)
			}
			if after := u.String(); after != before {
				t.Errorf("ASCII() modified the URI: %q became %q", before, after)
			}
		})
	}
}

func TestAsciiHost(t *testing.T) {
	testCases := []struct {
		host     string
		expected string
	}{
		{"", ""},
		{"example.com", "example.com"},
		{"bücher.example", "xn--bcher-kva.example"},
		{"[fe80::1]", "[fe80::1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.host, func(t *testing.T) {
			if got := asciiHost(tc.host); got != tc.expected {
				t.Errorf("asciiHost(%q) = %q, want %q", tc.host, got, tc.expected)
			}
		})
	}
}
