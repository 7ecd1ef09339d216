package codegen

import "strings"

// reservedNames cannot be bound by the generated script: Python keywords,
// the constants Python forbids assigning, and the moviepy names it calls.
var reservedNames = func() map[string]bool {
	ret := make(map[string]bool)
	for _, name := range strings.Fields(`
		False None True and as assert async await break class continue def
		del elif else except finally for from global if import in is lambda
		load nonlocal not or pass raise return try while with yield
		VideoFileClip AudioFileClip concatenate_videoclips vfx
	`) {
		ret[name] = true
	}
	return ret
}()

// number renders a numeric literal without leading zeros, which Python
// reads as an obsolete octal form.
func number(text string) string {
	intPart, frac, isFloat := strings.Cut(text, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if isFloat {
		return intPart + "." + frac
	}
	return intPart
}
