package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidRecipe(t *testing.T) {
	r, err := Decode([]byte(`{
		"title": " Tomato Soup ",
		"description": "Warm and simple.",
		"prep_time": "10 minutes",
		"ingredients": ["4 tomatoes", 2, {"odd": true}, null],
		"steps": ["Chop.", "Simmer."]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Tomato Soup", r.Title)
	assert.Equal(t, "10 minutes", r.PrepTime)
	assert.Empty(t, r.CookTime)
	assert.Equal(t, []Line{"4 tomatoes", "2", invalidEntry, invalidEntry}, r.Ingredients)
	assert.Equal(t, []string{"4 tomatoes", "2", invalidEntry, invalidEntry}, r.IngredientNames())
}

func TestDecodeAcceptsEmptyLists(t *testing.T) {
	r, err := Decode([]byte(`{"title":"Water","ingredients":[],"steps":[]}`))
	require.NoError(t, err)
	assert.Empty(t, r.Ingredients)
}

func TestDecodeRejectsIncompletePayloads(t *testing.T) {
	for name, body := range map[string]string{
		"missing title":       `{"ingredients":[],"steps":[]}`,
		"blank title":         `{"title":"   ","ingredients":[],"steps":[]}`,
		"numeric title":       `{"title":5,"ingredients":[],"steps":[]}`,
		"missing steps":       `{"title":"Soup","ingredients":["a"]}`,
		"ingredients as text": `{"title":"Soup","ingredients":"a, b","steps":[]}`,
		"null ingredients":    `{"title":"Soup","ingredients":null,"steps":[]}`,
		"array":               `[1,2,3]`,
		"garbage":             `<html>`,
	} {
		t.Run(name, func(t *testing.T) {
			r, err := Decode([]byte(body))
			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidRecipe)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDecodeReportsMissingFields(t *testing.T) {
	_, err := Decode([]byte(`{"title":"Soup"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ingredients")
	assert.Contains(t, err.Error(), "Steps")
}

func TestDecodeServiceError(t *testing.T) {
	r, err := Decode([]byte(`{"error":"Request must be JSON"}`))
	assert.Nil(t, r)
	var serr *ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Request must be JSON", serr.Message)
	assert.NotErrorIs(t, err, ErrInvalidRecipe)
}

func TestParseIngredients(t *testing.T) {
	got := ParseIngredients("eggs, flour\n\n  milk ,,\nsalt")
	assert.Equal(t, []string{"eggs", "flour", "milk", "salt"}, got)
	assert.Equal(t, []string{}, ParseIngredients("  , \n "))
}
