// Package recipestore holds the authoritative in-memory recipe and category
// collections for the running session and exposes the query/mutation API
// consumed by presentation surfaces.
package recipestore

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/starford/mise/internal/apperr"
	"github.com/starford/mise/internal/models"
	"github.com/starford/mise/internal/storage"
)

// NotifyFunc is called after every in-memory change so consumers (SSE
// broker) can fan change events out to screens. kind is one of "created",
// "updated", "deleted", "favorited", "reloaded".
type NotifyFunc func(kind, id string)

// Store is the single writer over the persisted collections. Mutations are
// optimistic: the persistence call happens first, but the in-memory update
// proceeds even when it fails, trading durability for UI responsiveness.
//
// The RWMutex only guards the in-memory snapshot so concurrent readers never
// observe a partial update. The persistence read-modify-write cycle itself
// is not serialized; overlapping mutations race on the adapter and the last
// write wins.
type Store struct {
	adapter *storage.Adapter
	log     *slog.Logger
	notify  NotifyFunc

	mu         sync.RWMutex
	recipes    []models.Recipe
	categories []models.Category
	loading    bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithNotify sets the change-notification callback.
func WithNotify(fn NotifyFunc) Option {
	return func(s *Store) { s.notify = fn }
}

// New creates a Store over the given persistence adapter. The collections
// are empty until Load runs.
func New(adapter *storage.Adapter, opts ...Option) *Store {
	s := &Store{adapter: adapter, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load runs the once-per-session initialization: both collections are read
// from the adapter and installed as the session state. The loading flag is
// cleared regardless of outcome; load failures leave empty or default
// collections behind.
func (s *Store) Load(_ context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	recipes := s.adapter.LoadRecipes()
	categories := s.adapter.LoadCategories()

	s.mu.Lock()
	s.recipes = recipes
	s.categories = categories
	s.loading = false
	s.mu.Unlock()

	s.log.Info("store loaded",
		slog.Int("recipes", len(recipes)),
		slog.Int("categories", len(categories)))
}

// Reload re-reads both collections from the adapter. Used when the backing
// entries were edited outside the process.
func (s *Store) Reload(ctx context.Context) {
	s.Load(ctx)
	s.emit("reloaded", "")
}

// IsLoading reports whether initialization is still in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Recipes returns a snapshot copy of the recipe collection.
func (s *Store) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Categories returns a snapshot copy of the category collection.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// RecipeByID returns the first recipe matching id, or apperr.ErrNotFound.
func (s *Store) RecipeByID(id string) (models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Recipe{}, apperr.ErrNotFound
}

// Favorites returns all favorited recipes in collection order.
func (s *Store) Favorites() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Recipe{}
	for _, r := range s.recipes {
		if r.IsFavorite {
			out = append(out, r)
		}
	}
	return out
}

// ByCategory returns all recipes whose category set contains categoryID.
func (s *Store) ByCategory(categoryID string) []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Recipe{}
	for _, r := range s.recipes {
		if r.HasCategory(categoryID) {
			out = append(out, r)
		}
	}
	return out
}

// Search returns recipes whose title, description, or any ingredient name
// contains query, case-insensitively. A linear scan; an empty query matches
// everything, which is the caller's job to special-case.
func (s *Store) Search(query string) []models.Recipe {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Recipe{}
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

// Add appends a recipe. The caller populates a unique id and timestamps;
// the store neither generates nor validates them.
func (s *Store) Add(_ context.Context, r models.Recipe) {
	if err := s.adapter.AddRecipe(r); err != nil {
		s.log.Warn("persisting added recipe failed, keeping in-memory copy",
			slog.String("id", r.ID), slog.String("error", err.Error()))
	}
	s.mu.Lock()
	s.recipes = append(s.recipes, r)
	s.mu.Unlock()
	s.emit("created", r.ID)
}

// Update replaces the recipe whose id matches. When no recipe matches, the
// collection is left unchanged and nothing is inserted.
func (s *Store) Update(_ context.Context, r models.Recipe) {
	if err := s.adapter.UpdateRecipe(r); err != nil {
		s.log.Warn("persisting updated recipe failed, keeping in-memory copy",
			slog.String("id", r.ID), slog.String("error", err.Error()))
	}
	replaced := false
	s.mu.Lock()
	for i := range s.recipes {
		if s.recipes[i].ID == r.ID {
			s.recipes[i] = r
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.emit("updated", r.ID)
	}
}

// Delete removes the recipe with the given id. Idempotent.
func (s *Store) Delete(_ context.Context, id string) {
	if err := s.adapter.DeleteRecipe(id); err != nil {
		s.log.Warn("persisting recipe deletion failed, removing in-memory copy",
			slog.String("id", id), slog.String("error", err.Error()))
	}
	removed := false
	s.mu.Lock()
	kept := s.recipes[:0]
	for _, r := range s.recipes {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.recipes = kept
	s.mu.Unlock()
	if removed {
		s.emit("deleted", id)
	}
}

// ToggleFavorite flips the favorite flag on the matching recipe and nothing
// else; updatedAt keeps its old value. No-op when the id is absent.
func (s *Store) ToggleFavorite(_ context.Context, id string) {
	if err := s.adapter.ToggleFavorite(id); err != nil {
		s.log.Warn("persisting favorite toggle failed, flipping in-memory copy",
			slog.String("id", id), slog.String("error", err.Error()))
	}
	toggled := false
	s.mu.Lock()
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes[i].IsFavorite = !s.recipes[i].IsFavorite
			toggled = true
			break
		}
	}
	s.mu.Unlock()
	if toggled {
		s.emit("favorited", id)
	}
}

func (s *Store) emit(kind, id string) {
	if s.notify != nil {
		s.notify(kind, id)
	}
}
