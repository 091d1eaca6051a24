// Package storage implements the persistence adapter: durable key-value
// storage of the recipe and category collections, with one-time seeding
// of defaults on the very first launch.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/starford/mise/internal/kvstore"
	"github.com/starford/mise/internal/models"
)

// Logical entry keys in the underlying key-value store.
const (
	KeyRecipes     = "recipes"
	KeyCategories  = "categories"
	KeyFirstLaunch = "first_launch"
)

// Adapter persists whole collections as JSON blobs. Load operations fail
// soft: a malformed or unreadable entry yields an empty collection (recipes)
// or the default set (categories), logged but never surfaced as an error.
type Adapter struct {
	kv  kvstore.Provider
	log *slog.Logger
}

// New creates an adapter over the given key-value provider.
func New(kv kvstore.Provider, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{kv: kv, log: log}
}

// LoadRecipes returns the persisted recipe collection.
//
// On the very first launch (no recipes entry and no first-launch marker) it
// persists the sample set, sets the marker, and returns the samples. When
// the marker is present but the entry is absent the user has deleted
// everything, so an empty collection is returned rather than re-seeding.
func (a *Adapter) LoadRecipes() []models.Recipe {
	data, err := a.kv.Get(KeyRecipes)
	if err == nil {
		var recipes []models.Recipe
		if jsonErr := json.Unmarshal(data, &recipes); jsonErr != nil {
			a.log.Warn("recipes entry is malformed, treating as empty",
				slog.String("error", jsonErr.Error()))
			return []models.Recipe{}
		}
		return recipes
	}
	if !errors.Is(err, kvstore.ErrNoValue) {
		a.log.Warn("failed to read recipes entry",
			slog.String("error", err.Error()))
		return []models.Recipe{}
	}

	if _, err := a.kv.Get(KeyFirstLaunch); errors.Is(err, kvstore.ErrNoValue) {
		// Very first run: set the marker and seed the sample set.
		if err := a.kv.Set(KeyFirstLaunch, []byte("false")); err != nil {
			a.log.Warn("failed to set first-launch marker",
				slog.String("error", err.Error()))
		}
		samples := models.SampleRecipes()
		if err := a.SaveRecipes(samples); err != nil {
			a.log.Warn("failed to persist sample recipes",
				slog.String("error", err.Error()))
		}
		a.log.Info("first launch: seeded sample recipes",
			slog.Int("count", len(samples)))
		return samples
	}

	return []models.Recipe{}
}

// SaveRecipes encodes and fully replaces the recipes entry.
func (a *Adapter) SaveRecipes(recipes []models.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		a.log.Error("failed to encode recipes", slog.String("error", err.Error()))
		return err
	}
	if err := a.kv.Set(KeyRecipes, data); err != nil {
		a.log.Error("failed to save recipes", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// LoadCategories returns the persisted categories, seeding the fixed default
// set when no entry exists.
func (a *Adapter) LoadCategories() []models.Category {
	data, err := a.kv.Get(KeyCategories)
	if err == nil {
		var categories []models.Category
		if jsonErr := json.Unmarshal(data, &categories); jsonErr != nil {
			a.log.Warn("categories entry is malformed, using defaults",
				slog.String("error", jsonErr.Error()))
			return models.DefaultCategories
		}
		return categories
	}
	if !errors.Is(err, kvstore.ErrNoValue) {
		a.log.Warn("failed to read categories entry",
			slog.String("error", err.Error()))
		return models.DefaultCategories
	}

	if err := a.SaveCategories(models.DefaultCategories); err != nil {
		a.log.Warn("failed to persist default categories",
			slog.String("error", err.Error()))
	}
	return models.DefaultCategories
}

// SaveCategories encodes and fully replaces the categories entry.
func (a *Adapter) SaveCategories(categories []models.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		a.log.Error("failed to encode categories", slog.String("error", err.Error()))
		return err
	}
	if err := a.kv.Set(KeyCategories, data); err != nil {
		a.log.Error("failed to save categories", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// AddRecipe appends one recipe via a full load-modify-save cycle.
func (a *Adapter) AddRecipe(r models.Recipe) error {
	recipes := a.LoadRecipes()
	recipes = append(recipes, r)
	return a.SaveRecipes(recipes)
}

// UpdateRecipe replaces the recipe whose id matches. A miss is a silent
// no-op; nothing is inserted.
func (a *Adapter) UpdateRecipe(r models.Recipe) error {
	recipes := a.LoadRecipes()
	for i := range recipes {
		if recipes[i].ID == r.ID {
			recipes[i] = r
			return a.SaveRecipes(recipes)
		}
	}
	return nil
}

// DeleteRecipe removes the recipe with the given id. Idempotent.
func (a *Adapter) DeleteRecipe(id string) error {
	recipes := a.LoadRecipes()
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return a.SaveRecipes(kept)
}

// ToggleFavorite flips the favorite flag on the matching recipe. The
// recipe's updatedAt is deliberately left untouched.
func (a *Adapter) ToggleFavorite(id string) error {
	recipes := a.LoadRecipes()
	for i := range recipes {
		if recipes[i].ID == id {
			recipes[i].IsFavorite = !recipes[i].IsFavorite
			return a.SaveRecipes(recipes)
		}
	}
	return nil
}
