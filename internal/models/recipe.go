// Package models defines the domain types for Mise.
package models

// Difficulty grades how demanding a recipe is to cook.
type Difficulty string

// Recognised difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the recognised levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is a user-authored cooking entry. The id is assigned at creation
// and immutable afterwards; timestamps are epoch milliseconds.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	PrepTime    int          `json:"prepTime"` // minutes
	CookTime    int          `json:"cookTime"` // minutes
	Servings    int          `json:"servings"`
	Difficulty  Difficulty   `json:"difficulty"`
	Categories  []string     `json:"categories"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	IsFavorite  bool         `json:"isFavorite"`
	CreatedAt   int64        `json:"createdAt"`
	UpdatedAt   int64        `json:"updatedAt"`
}

// HasCategory reports whether the recipe is tagged with categoryID.
func (r Recipe) HasCategory(categoryID string) bool {
	for _, c := range r.Categories {
		if c == categoryID {
			return true
		}
	}
	return false
}

// Ingredient is a component of a recipe. It has no lifecycle of its own;
// its id is only unique within the parent recipe.
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"` // zero means "to taste"
	Unit     string  `json:"unit"`
}

// Category is a tagging dimension shared across all recipes.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}
