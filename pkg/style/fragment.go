// Package style composes style maps from layered, possibly nested fragments.
//
// A widget usually builds its style from its own defaults, a caller-supplied
// fragment and a few computed values:
//
//	s := style.List(
//	    style.Of(style.Map{"width": size, "height": size}),
//	    container,
//	    callerStyle,
//	)
//	flat := style.Flatten(s)
//
// Later fragments win: a key present in several fragments takes the value of
// the last one.
package style

import "maps"

// Map is a single, flat set of style properties.
type Map map[string]any

// Clone returns a shallow copy of m. Cloning a nil map returns an empty map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	maps.Copy(out, m)
	return out
}

// Take returns the value stored under key and a copy of m without it.
// The receiver is not modified.
func (m Map) Take(key string) (any, bool, Map) {
	rest := m.Clone()
	v, ok := rest[key]
	delete(rest, key)
	return v, ok, rest
}

type fragmentKind uint8

const (
	kindEmpty fragmentKind = iota
	kindSingle
	kindList
)

// Fragment is one layer of a style description: nothing, a single Map,
// or an ordered list of fragments. The zero value is the empty fragment.
type Fragment struct {
	kind   fragmentKind
	single Map
	list   []Fragment
}

// None returns the empty fragment.
func None() Fragment {
	return Fragment{}
}

// Of wraps a Map as a fragment. A nil map yields the empty fragment.
func Of(m Map) Fragment {
	if m == nil {
		return Fragment{}
	}
	return Fragment{kind: kindSingle, single: m}
}

// List groups fragments in order.
func List(fragments ...Fragment) Fragment {
	if len(fragments) == 0 {
		return Fragment{}
	}
	return Fragment{kind: kindList, list: fragments}
}

// IsEmpty reports whether the fragment contributes no properties.
func (f Fragment) IsEmpty() bool {
	switch f.kind {
	case kindSingle:
		return len(f.single) == 0
	case kindList:
		for _, child := range f.list {
			if !child.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Flatten merges f into one Map, left to right. Nested lists are expanded in
// place and empty fragments are skipped. The result is always non-nil and
// never aliases a map held by f.
func Flatten(f Fragment) Map {
	out := Map{}
	flattenInto(out, f)
	return out
}

func flattenInto(dst Map, f Fragment) {
	switch f.kind {
	case kindSingle:
		maps.Copy(dst, f.single)
	case kindList:
		for _, child := range f.list {
			flattenInto(dst, child)
		}
	}
}
