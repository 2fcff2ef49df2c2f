package jsbind

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var argPlaceholder = regexp.MustCompile(`arguments\[\d+]`)

// countArgs returns how many positional placeholders a definition already
// consumes, so generated call sites can splice their own arguments after it.
func countArgs(def string) int {
	return len(argPlaceholder.FindAllString(def, -1))
}

// placeholders renders n positional placeholders starting at offset.
func placeholders(offset, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("arguments[%d]", offset+i)
	}
	return out
}

// isIdentifier reports whether s is usable as a JavaScript identifier.
// It accepts the common subset: a letter, '_' or '$' followed by letters,
// digits, '_' or '$', possibly dotted (a.b.c) for nested paths.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !isIdentifierPart(part) {
			return false
		}
	}
	return true
}

func isIdentifierPart(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// isDecimal reports whether s is entirely decimal digits.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// enclosedBy reports whether s starts and ends with the given quote rune.
func enclosedBy(s, quote string) bool {
	return len(s) >= 2*len(quote) && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote)
}

// attrPath renders an attribute access on root. Identifiers use dot access,
// decimal or otherwise non-identifier names use bracket access, and names
// already bracketed ("[3]") are appended verbatim.
func attrPath(root, name string) string {
	switch {
	case name == "":
		return root
	case strings.HasPrefix(name, "["):
		return root + name
	case isDecimal(name) || !isIdentifier(name):
		return fmt.Sprintf("%s[%q]", root, name)
	default:
		return root + "." + name
	}
}
