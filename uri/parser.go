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

// authorityPrefix introduces the authority component.
const authorityPrefix = "//"

// Parse decomposes s into the parts of a URI. Parsing never fails: parts
// missing from s are left empty, and a string without any delimiter ends up
// entirely in the path.
func Parse(s string) *URI {
	u := &URI{}
	rest := s

	if i := strings.IndexByte(rest, '#'); i != -1 {
		u.fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i != -1 {
		u.query = rest[i+1:]
		rest = rest[:i]
	}

	if scheme, after, ok := extractScheme(rest); ok {
		u.scheme = scheme
		rest = after
	}

	if strings.HasPrefix(rest, authorityPrefix) {
		rest = rest[len(authorityPrefix):]
		authority := rest
		rest = ""
		if i := strings.IndexByte(authority, '/'); i != -1 {
			authority, rest = authority[:i], authority[i:]
		}
		u.setAuthority(authority)
	}

	u.path = rest
	return u
}

// extractScheme attempts to extract a scheme from the beginning of s. It
// returns the scheme, the remainder after the ':' and whether a scheme
// was found.
func extractScheme(s string) (string, string, bool) {
	if s == "" || !isASCIILetter(s[0]) {
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == ':':
			return s[:i], s[i+1:], true
		case !isSchemeChar(c):
			return "", s, false
		}
	}
	return "", s, false
}

// setAuthority stores the userinfo, host and port found in authority.
func (u *URI) setAuthority(authority string) {
	userinfo, host, port := splitAuthority(authority)
	u.hasAuthority = true
	u.user, u.password = "", ""
	if userinfo != "" {
		u.user, u.password, _ = strings.Cut(userinfo, ":")
	}
	u.host = host
	u.port = port
}

// splitAuthority parses an authority string into its userinfo, host and
// port components. A bracketed IP literal is kept whole as the host.
func splitAuthority(authority string) (string, string, string) {
	var userinfo, host, port string

	hostport := authority
	if endUserinfo := strings.LastIndex(authority, "@"); endUserinfo != -1 {
		userinfo = authority[:endUserinfo]
		hostport = authority[endUserinfo+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndex(hostport, "]")
		if endBracket == -1 {
			return userinfo, hostport, ""
		}
		host = hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			port = hostport[endBracket+2:]
		}
		return userinfo, host, port
	}

	if endHost := strings.LastIndex(hostport, ":"); endHost != -1 {
		return userinfo, hostport[:endHost], hostport[endHost+1:]
	}
	return userinfo, hostport, ""
}
