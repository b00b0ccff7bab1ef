package shoppinglist

import (
	"strings"

	"github.com/idilsaglam/basket/internal/model"
)

// PlainText renders the list for the clipboard: a header per category and a
// checkbox line per item, in display order. An empty list yields "".
func PlainText(items []model.Item) string {
	v := Render(items)
	if v.Empty {
		return ""
	}
	var b strings.Builder
	b.WriteString("Shopping List:\n")
	for _, g := range v.Groups {
		b.WriteString("\n--- ")
		b.WriteString(string(g.Category))
		b.WriteString(" ---\n")
		for _, r := range g.Rows {
			if r.Checked {
				b.WriteString("[x] ")
			} else {
				b.WriteString("[ ] ")
			}
			b.WriteString(r.Name)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
