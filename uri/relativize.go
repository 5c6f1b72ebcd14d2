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

// sameOrigin reports whether u and base share scheme and authority, which
// is required for any reference shorter than the full URI.
func (u *URI) sameOrigin(base *URI) bool {
	return base != nil &&
		u.scheme == base.scheme &&
		u.hasAuthority == base.hasAuthority &&
		u.user == base.user &&
		u.password == base.password &&
		u.host == base.host &&
		u.port == base.port
}

// ToRelative returns the shortest reference that resolves to u against
// base, such as "../c/file.html?q=1". When scheme or authority differ it
// returns the full URI.
func (u *URI) ToRelative(base *URI) string {
	if !u.sameOrigin(base) {
		return u.String()
	}

	targetDir, file := splitPath(u.path)
	baseDir, _ := splitPath(base.path)
	if u.hasAuthority {
		if targetDir == "" {
			targetDir = "/"
		}
		if baseDir == "" {
			baseDir = "/"
		}
	}

	baseSegs := strings.Split(baseDir, "/")
	targetSegs := strings.Split(targetDir, "/")

	// Find the length of the common directory prefix.
	commonLen := 0
	for commonLen < len(baseSegs) && commonLen < len(targetSegs) && baseSegs[commonLen] == targetSegs[commonLen] {
		commonLen++
	}

	var b strings.Builder
	for i := commonLen; i < len(baseSegs)-1; i++ {
		b.WriteString("../")
	}
	for i := commonLen; i < len(targetSegs)-1; i++ {
		b.WriteString(targetSegs[i])
		b.WriteByte('/')
	}
	b.WriteString(file)

	relPath := b.String()
	switch {
	case relPath == "":
		relPath = "./"
	case startsWithSchemeLike(relPath):
		relPath = "./" + relPath
	}
	return u.buildRelativeRef(relPath)
}

// ToAbsolute returns u as a host-relative reference, "/path?query#fragment",
// when it shares scheme and authority with base, and the full URI otherwise.
func (u *URI) ToAbsolute(base *URI) string {
	if !u.sameOrigin(base) {
		return u.String()
	}
	path := u.path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return u.buildRelativeRef(path)
}

// startsWithSchemeLike reports whether the first segment of a relative path
// contains a ':', which would be read back as a scheme.
func startsWithSchemeLike(relPath string) bool {
	firstColon := strings.IndexByte(relPath, ':')
	if firstColon == -1 {
		return false
	}
	firstSlash := strings.IndexByte(relPath, '/')
	return firstSlash == -1 || firstColon < firstSlash
}

// buildRelativeRef appends the query and fragment of u to relPath.
func (u *URI) buildRelativeRef(relPath string) string {
	var b strings.Builder
	b.WriteString(relPath)
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
