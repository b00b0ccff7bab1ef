package shoppinglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/basket/internal/model"
)

func TestRenderEmpty(t *testing.T) {
	v := Render(nil)
	assert.True(t, v.Empty)
	assert.False(t, v.CanCopy)
	assert.False(t, v.CanClear)
	assert.Empty(t, v.Groups)
	assert.Empty(t, v.Rows())
}

func TestRenderGroupsAndSorts(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "Salt", Category: model.SpicesHerbs},
		{ID: "2", Name: "Flour", Category: model.Baking, Checked: true},
		{ID: "3", Name: "basil", Category: model.SpicesHerbs},
		{ID: "4", Name: "Sugar", Category: model.Baking},
		{ID: "5", Name: "Cumin", Category: model.SpicesHerbs},
	}
	v := Render(items)

	assert.False(t, v.Empty)
	assert.True(t, v.CanCopy)
	assert.True(t, v.CanClear)
	assert.Equal(t, 5, v.Total)
	assert.Equal(t, 1, v.Checked)

	require.Len(t, v.Groups, 2)
	assert.Equal(t, model.Baking, v.Groups[0].Category)
	assert.Equal(t, model.SpicesHerbs, v.Groups[1].Category)

	var got []string
	for _, r := range v.Rows() {
		got = append(got, r.Name)
	}
	assert.Equal(t, []string{"Flour", "Sugar", "basil", "Cumin", "Salt"}, got)
	assert.True(t, v.Groups[0].Rows[0].Checked)
}

func TestRenderCaseOrderWithinSameLetters(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "Apple", Category: model.Fruits},
		{ID: "2", Name: "apple", Category: model.Fruits},
	}
	rows := Render(items).Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "apple", rows[0].Name, "lower case sorts first, as in a locale-aware compare")
	assert.Equal(t, "Apple", rows[1].Name)
}

func TestRenderDoesNotModifyInput(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "Salt", Category: model.SpicesHerbs},
		{ID: "2", Name: "Flour", Category: model.Baking},
	}
	_ = Render(items)
	assert.Equal(t, "Salt", items[0].Name)
}

func TestRenderIsIndependentOfCheckedState(t *testing.T) {
	items := []model.Item{
		{ID: "1", Name: "Salt", Category: model.SpicesHerbs},
		{ID: "2", Name: "Pepper", Category: model.SpicesHerbs},
	}
	before := Render(items).Rows()
	items[0].Checked = true
	after := Render(items).Rows()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}
