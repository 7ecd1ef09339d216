package sema

import (
	"maps"
	"slices"
)

// Scope maps names to declared types. Nested bodies check against a snapshot.
type Scope map[string]Type

func NewScope() Scope {
	return make(Scope)
}

func (s Scope) Lookup(name string) (Type, bool) {
	t, ok := s[name]
	return t, ok
}

func (s Scope) Bind(name string, t Type) {
	s[name] = t
}

// Snapshot returns an independent copy. Bindings added to the copy are not
// seen by s.
func (s Scope) Snapshot() Scope {
	ret := maps.Clone(s)
	if ret == nil {
		ret = make(Scope)
	}
	return ret
}

// Names returns the bound names in sorted order.
func (s Scope) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
