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

//go:build js && wasm

package uri

import "syscall/js"

// Document is the Locator of the hosting browser document: the last
// <base href> element resolved against location.href, or location.href
// alone when the document has no such element.
var Document Locator = documentLocator{}

type documentLocator struct{}

func (documentLocator) Location() string {
	global := js.Global()
	location := global.Get("location")
	if location.IsUndefined() || location.IsNull() {
		return ""
	}
	href := Parse(location.Get("href").String())

	document := global.Get("document")
	if document.IsUndefined() || document.IsNull() {
		return href.String()
	}
	bases := document.Call("querySelectorAll", "base[href]")
	if n := bases.Length(); n > 0 {
		return href.Resolve(bases.Index(n-1).Call("getAttribute", "href").String()).String()
	}
	return href.String()
}
