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

// isDotSegment reports whether seg is "." or "..".
func isDotSegment(seg string) bool {
	return seg == "." || seg == ".."
}

// splitPath splits a path into its directory (everything up to and
// including the last '/') and file parts. A path whose last segment is a
// dot segment has no file part.
func splitPath(path string) (string, string) {
	lastSlash := strings.LastIndex(path, "/")
	if isDotSegment(path[lastSlash+1:]) {
		return path, ""
	}
	return path[:lastSlash+1], path[lastSlash+1:]
}

// removeDotSegments normalizes a path by resolving "." and ".." segments.
// A ".." never climbs above the first segment, and a path ending in a dot
// segment keeps a trailing '/'.
func removeDotSegments(path string) string {
	absolute := strings.HasPrefix(path, "/")
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	dirty := false
	for _, seg := range segments {
		if isDotSegment(seg) {
			dirty = true
			break
		}
	}
	if !dirty {
		return path
	}

	output := make([]string, 0, len(segments))
	for i, seg := range segments {
		switch seg {
		case ".":
		case "..":
			if len(output) > 0 {
				output = output[:len(output)-1]
			}
		default:
			output = append(output, seg)
			continue
		}
		// The final dot segment names a directory.
		if i == len(segments)-1 {
			output = append(output, "")
		}
	}

	result := strings.Join(output, "/")
	if absolute {
		return "/" + result
	}
	return result
}

// mergePath joins a relative reference path to the directory of the base
// path. A base with an authority and an empty path has directory "/".
func mergePath(basePath string, hasBaseAuthority bool, relPath string) string {
	if basePath == "" && hasBaseAuthority {
		return "/" + relPath
	}
	lastSlash := strings.LastIndex(basePath, "/")
	return basePath[:lastSlash+1] + relPath
}
