// Package recipe holds the recipe returned by the generation service and the
// stateless things done with it: validation, sharing and export.
package recipe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecipe marks payloads that decoded but lack required fields.
var ErrInvalidRecipe = errors.New("recipe data is incomplete or invalid")

const invalidEntry = "Invalid entry"

// Line is an ingredient or step. The service may send strings or numbers;
// anything else decodes to a placeholder rather than failing the recipe.
type Line string

func (l *Line) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*l = invalidEntry
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = Line(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*l = Line(n.String())
		return nil
	}
	*l = invalidEntry
	return nil
}

// Recipe is a validated generation result.
type Recipe struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	PrepTime    string `json:"prep_time,omitempty"`
	CookTime    string `json:"cook_time,omitempty"`
	Ingredients []Line `json:"ingredients" validate:"required"`
	Steps       []Line `json:"steps" validate:"required"`
}

// IngredientNames returns the ingredient lines as plain strings.
func (r *Recipe) IngredientNames() []string {
	out := make([]string, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		out = append(out, string(l))
	}
	return out
}

// ServiceError is the {"error": "..."} object the service returns on failure.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

// ValidationError explains why a payload was not accepted as a recipe.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidRecipe, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRecipe }

var validate = validator.New()

// Decode turns a service response body into a Recipe. It returns a
// *ServiceError for error objects and a *ValidationError for anything that is
// not a complete recipe; it never returns a partially filled recipe.
func Decode(b []byte) (*Recipe, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, &ValidationError{Reason: "response is not a JSON object"}
	}
	if raw, ok := probe["error"]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
			msg = string(raw)
		}
		return nil, &ServiceError{Message: msg}
	}

	var r Recipe
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	r.Title = strings.TrimSpace(r.Title)
	if err := validate.Struct(&r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, &ValidationError{Reason: "missing " + strings.Join(fields, ", ")}
		}
		return nil, &ValidationError{Reason: err.Error()}
	}
	return &r, nil
}
