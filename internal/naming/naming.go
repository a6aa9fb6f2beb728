// Package naming converts schema identifiers into ReScript identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MapContainer is the prefix of a rendered map type. Names carrying it are
// already complete type expressions.
const MapContainer = "Js_map"

// EscapedType is the quoted-identifier form of the reserved word "type".
const EscapedType = `\"type"`

var primitiveAliases = map[string]string{
	"int32":     "int",
	"boolean":   "bool",
	"undefined": "unit",
}

// LowerInitial lowercases the first character of s, escapes the keyword
// "type" and maps schema primitives to their ReScript names. The result is
// stable under repeated application.
func LowerInitial(s string) string {
	if strings.HasPrefix(s, MapContainer) {
		return s
	}
	out := mapFirst(s, unicode.ToLower)
	if out == "type" {
		return EscapedType
	}
	if alias, ok := primitiveAliases[out]; ok {
		return alias
	}
	return out
}

// UpperInitial uppercases the first character of s.
func UpperInitial(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}
