package domain

import "unique"

// InternedString is a comparable handle to a path string.
// Equal paths share one allocation, so it makes a cheap map key for event sets.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// IsZero reports whether no string was interned.
func (is InternedString) IsZero() bool {
	return is.h == unique.Handle[string]{}
}
