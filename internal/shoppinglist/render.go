package shoppinglist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/basket/internal/model"
)

// Row is one displayed item.
type Row struct {
	ID      string
	Name    string
	Checked bool
}

// Group is the rows of one category, already sorted.
type Group struct {
	Category model.Category
	Rows     []Row
}

// View is the display projection of a list. Presenters draw checked rows
// struck through and disable copy/clear when Empty is set.
type View struct {
	Groups   []Group
	Total    int
	Checked  int
	Empty    bool
	CanCopy  bool
	CanClear bool
}

// Rows flattens the groups in display order.
func (v View) Rows() []Row {
	var out []Row
	for _, g := range v.Groups {
		out = append(out, g.Rows...)
	}
	return out
}

// Render groups items by category, sorts categories and names, and counts
// checked items. It does not modify items.
func Render(items []model.Item) View {
	v := View{Total: len(items), Empty: len(items) == 0}
	v.CanCopy, v.CanClear = !v.Empty, !v.Empty
	if v.Empty {
		return v
	}

	byCat := make(map[model.Category][]Row)
	var cats []string
	for _, it := range items {
		if it.Checked {
			v.Checked++
		}
		if _, ok := byCat[it.Category]; !ok {
			cats = append(cats, string(it.Category))
		}
		byCat[it.Category] = append(byCat[it.Category], Row{ID: it.ID, Name: it.Name, Checked: it.Checked})
	}

	col := newCollator()
	col.SortStrings(cats)
	for _, c := range cats {
		rows := byCat[model.Category(c)]
		sortRows(col, rows)
		v.Groups = append(v.Groups, Group{Category: model.Category(c), Rows: rows})
	}
	return v
}

// sortRows orders by name; the id breaks ties so the order is total.
func sortRows(col *collate.Collator, rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := col.CompareString(rows[i].Name, rows[j].Name); c != 0 {
			return c < 0
		}
		return rows[i].ID < rows[j].ID
	})
}

func newCollator() *collate.Collator {
	return collate.New(language.English)
}
