// Package sema infers expression types and checks programs against the
// typing and scoping rules of the editing language.
package sema

type Type uint8

const (
	Unknown Type = iota
	Int
	Float
	String
	Video
	Audio
	Bool
)

var typeNames = map[Type]string{
	Unknown: "unknown",
	Int:     "int",
	Float:   "float",
	String:  "string",
	Video:   "video",
	Audio:   "audio",
	Bool:    "bool",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// TypeOf maps a declared type name to its Type.
func TypeOf(name string) Type {
	for t, n := range typeNames {
		if n == name && t != Unknown {
			return t
		}
	}
	return Unknown
}

func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

func (t Type) IsMedia() bool {
	return t == Video || t == Audio
}

// Accepts reports whether a value of type v may initialize a declaration of
// type t. Media declarations take a file path.
func (t Type) Accepts(v Type) bool {
	if t == v {
		return true
	}
	return t.IsMedia() && v == String
}
