package recipe

import (
	"regexp"
	"strings"
)

var listSep = regexp.MustCompile(`[\n,]+`)

// ParseIngredients splits free text on newlines and commas, trims each
// entry and drops empty ones.
func ParseIngredients(text string) []string {
	out := []string{}
	for _, part := range listSep.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
