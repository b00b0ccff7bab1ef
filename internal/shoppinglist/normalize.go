package shoppinglist

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cleanName is the name as stored: trimmed, otherwise as typed.
func cleanName(s string) string {
	return strings.TrimSpace(s)
}

// nameKey is the case-insensitive identity of an item name. Compatibility
// forms and inner whitespace runs compare equal.
func nameKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(norm.NFKC.String(s)), " "))
}
