package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
)

// SanitizeFilename turns a title into a safe file stem: whitespace runs become
// underscores and characters illegal on common filesystems are dropped.
func SanitizeFilename(name string) string {
	s := spaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
	s = illegalChars.ReplaceAllString(s, "")
	if s == "" {
		return "recipe"
	}
	return s
}

// PlainText renders r as a readable text document.
func PlainText(r *Recipe) string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "Untitled Recipe"
	}
	b.WriteString(title + "\n" + strings.Repeat("=", len([]rune(title))) + "\n\n")
	if r.Description != "" {
		b.WriteString("Description:\n" + r.Description + "\n\n")
	}
	if r.PrepTime != "" {
		b.WriteString("Prep Time: " + r.PrepTime + "\n")
	}
	if r.CookTime != "" {
		b.WriteString("Cook Time: " + r.CookTime + "\n")
	}
	if r.PrepTime != "" || r.CookTime != "" {
		b.WriteString("\n")
	}
	if len(r.Ingredients) > 0 {
		b.WriteString("Ingredients:\n")
		for _, ing := range r.Ingredients {
			b.WriteString("- " + string(ing) + "\n")
		}
		b.WriteString("\n")
	}
	if len(r.Steps) > 0 {
		b.WriteString("Steps:\n")
		for i, step := range r.Steps {
			b.WriteString(strconv.Itoa(i+1) + ". " + string(step) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SaveFile writes PlainText(r) to dir under a name derived from the title
// and returns the path written.
func SaveFile(dir string, r *Recipe) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, SanitizeFilename(r.Title)+".txt")
	if err := os.WriteFile(p, []byte(PlainText(r)), 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}
