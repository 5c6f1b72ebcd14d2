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
	"slices"
	"strings"
)

// DataPart selects the component holding key/value data. Its zero value is
// QueryPart.
type DataPart struct {
	fragment bool
}

var (
	// QueryPart selects the query component.
	QueryPart = DataPart{}
	// FragmentPart selects the fragment component.
	FragmentPart = DataPart{fragment: true}
)

// String returns the part name.
func (p DataPart) String() string {
	if p.fragment {
		return string(PartFragment)
	}
	return string(PartQuery)
}

// Data is an ordered set of decoded key/value pairs. Keys are unique; the
// order is the order in which keys were first set.
//
// A nil *Data is an empty set for reading.
type Data struct {
	keys   []string
	values map[string]string
}

// NewData returns a Data holding the given key, value pairs in order. A
// trailing key without a value gets the empty value.
func NewData(kv ...string) *Data {
	d := &Data{values: make(map[string]string, (len(kv)+1)/2)}
	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		d.Set(kv[i], v)
	}
	return d
}

// ParseData decodes "key=value&key=value" data. In the query part '+'
// decodes to a space; in the fragment it is kept. Empty keys are skipped.
// When a key repeats, the last value wins and the key keeps the position
// of its first occurrence.
func ParseData(s string, part DataPart) *Data {
	d := NewData()
	if s == "" {
		return d
	}
	plusAsSpace := !part.fragment
	for _, pair := range strings.Split(s, "&") {
		k, v, _ := strings.Cut(pair, "=")
		key := decodeComponent(k, plusAsSpace)
		if key == "" {
			continue
		}
		d.Set(key, decodeComponent(v, plusAsSpace))
	}
	return d
}

// Get returns the value of key and whether it is present.
func (d *Data) Get(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set updates key in place, or appends it when absent.
func (d *Data) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Del removes key.
func (d *Data) Del(key string) {
	if !d.Has(key) {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// Len returns the number of keys.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Map returns the pairs as a map.
func (d *Data) Map() map[string]string {
	m := make(map[string]string, d.Len())
	if d == nil {
		return m
	}
	for k, v := range d.values {
		m[k] = v
	}
	return m
}

// Encode returns the pairs as "key=value&key=value", percent-encoding keys
// and values. A space is written as "%20".
func (d *Data) Encode() string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(encodeComponent(k))
		b.WriteByte('=')
		b.WriteString(encodeComponent(d.values[k]))
	}
	return b.String()
}

// String is an alias for Encode.
func (d *Data) String() string {
	return d.Encode()
}

// component returns the raw string stored for part.
func (u *URI) component(part DataPart) *string {
	if part.fragment {
		return &u.fragment
	}
	return &u.query
}

// GetData decodes the key/value data of part. The result is a fresh view;
// changing it does not change u.
func (u *URI) GetData(part DataPart) *Data {
	return ParseData(*u.component(part), part)
}

// DataValue returns the decoded value of key in part and whether it is
// present.
func (u *URI) DataValue(key string, part DataPart) (string, bool) {
	return u.GetData(part).Get(key)
}

// SetData writes d into part and returns u. With merge, the existing pairs
// are kept in order, keys of d already present are updated in place and new
// ones are appended; without merge, part is replaced by d.
func (u *URI) SetData(d *Data, merge bool, part DataPart) *URI {
	if !merge {
		*u.component(part) = d.Encode()
		return u
	}

	current := u.GetData(part)
	if d != nil {
		for _, k := range d.keys {
			current.Set(k, d.values[k])
		}
	}
	*u.component(part) = current.Encode()
	return u
}

// SetDataValue sets a single key in part, keeping the other pairs, and
// returns u.
func (u *URI) SetDataValue(key, value string, part DataPart) *URI {
	return u.SetData(NewData(key, value), true, part)
}

// ClearData empties part and returns u.
func (u *URI) ClearData(part DataPart) *URI {
	*u.component(part) = ""
	return u
}
