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

// Locator supplies the location of the current document, the base New
// falls back to when no explicit base is given.
type Locator interface {
	Location() string
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func() string

// Location calls f.
func (f LocatorFunc) Location() string { return f() }

// StaticLocation returns a Locator that always reports location.
func StaticLocation(location string) Locator {
	return LocatorFunc(func() string { return location })
}
