package api

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/mise/internal/models"
)

// defaultDescription is used when a recipe is submitted without one.
const defaultDescription = "No description provided."

// IngredientInput is one ingredient row of a recipe submission.
// Entries whose name is empty after trimming are dropped before the
// recipe reaches the store.
type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeInput is the request body for creating or updating a recipe.
// It carries everything a recipe has except the id and timestamps, which
// the handler assigns.
type RecipeInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	PrepTime    int               `json:"prepTime"`
	CookTime    int               `json:"cookTime"`
	Servings    int               `json:"servings"`
	Difficulty  models.Difficulty `json:"difficulty"`
	Categories  []string          `json:"categories"`
	Ingredients []IngredientInput `json:"ingredients"`
	Steps       []string          `json:"steps"`
	IsFavorite  bool              `json:"isFavorite"`
}

// Validate enforces the submission rules that screens apply before a
// recipe reaches the store: required display fields, non-negative times,
// at least one serving, a recognised difficulty, and at least one
// category, named ingredient, and step.
func (in RecipeInput) Validate() error {
	if err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.ImageURL, validation.Required),
		validation.Field(&in.PrepTime, validation.Min(0)),
		validation.Field(&in.CookTime, validation.Min(0)),
		validation.Field(&in.Servings, validation.Required, validation.Min(1)),
		validation.Field(&in.Difficulty, validation.Required,
			validation.In(models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard)),
		validation.Field(&in.Categories, validation.Required, validation.Length(1, 0)),
		validation.Field(&in.Ingredients, validation.Required, validation.Length(1, 0)),
		validation.Field(&in.Steps, validation.Required, validation.Length(1, 0),
			validation.Each(validation.Required)),
	); err != nil {
		return err
	}
	for _, ing := range in.Ingredients {
		if ing.Quantity < 0 {
			return fmt.Errorf("ingredients: quantity must not be negative")
		}
	}
	if len(in.namedIngredients()) == 0 {
		return fmt.Errorf("ingredients: at least one ingredient must have a name")
	}
	return nil
}

// namedIngredients returns the ingredient rows that survive the empty-name
// filter, in submission order.
func (in RecipeInput) namedIngredients() []IngredientInput {
	out := make([]IngredientInput, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) != "" {
			out = append(out, ing)
		}
	}
	return out
}

// ToRecipe builds the domain recipe for the given id and timestamps.
// Ingredient ids are derived from the recipe id.
func (in RecipeInput) ToRecipe(id string, createdAt, updatedAt int64) models.Recipe {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = defaultDescription
	}

	named := in.namedIngredients()
	ingredients := make([]models.Ingredient, len(named))
	for i, ing := range named {
		ingredients[i] = models.Ingredient{
			ID:       fmt.Sprintf("%s-%d", id, i+1),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
	}

	return models.Recipe{
		ID:          id,
		Title:       in.Title,
		Description: desc,
		ImageURL:    in.ImageURL,
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Servings:    in.Servings,
		Difficulty:  in.Difficulty,
		Categories:  in.Categories,
		Ingredients: ingredients,
		Steps:       in.Steps,
		IsFavorite:  in.IsFavorite,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// RecipeListResponse wraps recipe listings.
type RecipeListResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Total   int             `json:"total"`
}

// StateResponse reports the store's session state.
type StateResponse struct {
	Loading    bool `json:"loading"`
	Recipes    int  `json:"recipes"`
	Categories int  `json:"categories"`
}

// ImageUploadResponse is returned after a successful image upload.
type ImageUploadResponse struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}
