// Package api implements the Mise REST surface using chi. It is the access
// point presentation screens use to read the store's snapshot and submit
// mutations; the store itself never depends on this layer.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/starford/mise/internal/apperr"
	"github.com/starford/mise/internal/models"
	"github.com/starford/mise/internal/recipestore"
)

const maxBodyBytes = 1 << 20 // 1 MB

// Handler holds API route handlers over the recipe store.
type Handler struct {
	store *recipestore.Store
}

// NewHandler creates a new Handler.
func NewHandler(store *recipestore.Store) *Handler {
	return &Handler{store: store}
}

// newRecipeID derives a fresh id from the current time, the same scheme the
// sample set's authors used. Millisecond resolution is enough for a single
// user typing into a form.
func newRecipeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ListRecipes handles GET /recipes. The full collection is always
// materialized; there is no pagination at this data scale.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes := h.store.Recipes()
	writeJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Total: len(recipes)})
}

// ListFavorites handles GET /recipes/favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	recipes := h.store.Favorites()
	writeJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Total: len(recipes)})
}

// GetRecipe handles GET /recipes/{id}.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recipe, err := h.store.RecipeByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get recipe failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// CreateRecipe handles POST /recipes. The handler assigns the id and both
// timestamps; the store trusts them as given.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	now := time.Now().UnixMilli()
	recipe := in.ToRecipe(newRecipeID(), now, now)
	h.store.Add(r.Context(), recipe)
	writeJSON(w, http.StatusCreated, recipe)
}

// UpdateRecipe handles PUT /recipes/{id}: a full-field replace. The id and
// createdAt are preserved from the existing entry; updatedAt becomes now.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	id := chi.URLParam(r, "id")

	existing, err := h.store.RecipeByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}

	var in RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	recipe := in.ToRecipe(id, existing.CreatedAt, time.Now().UnixMilli())
	h.store.Update(r.Context(), recipe)
	writeJSON(w, http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/{id}.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.RecipeByID(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	h.store.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /recipes/{id}/favorite and returns the
// recipe with its flipped flag.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.store.RecipeByID(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	h.store.ToggleFavorite(r.Context(), id)

	recipe, err := h.store.RecipeByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

// Search handles GET /search. The store's search matches everything on an
// empty pattern, so the handler is the one rejecting a missing query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	results := h.store.Search(q)
	writeJSON(w, http.StatusOK, RecipeListResponse{Recipes: results, Total: len(results)})
}

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]models.Category{
		"categories": h.store.Categories(),
	})
}

// CategoryRecipes handles GET /categories/{id}/recipes.
func (h *Handler) CategoryRecipes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recipes := h.store.ByCategory(id)
	writeJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Total: len(recipes)})
}

// State handles GET /state, the probe screens use while the store loads.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StateResponse{
		Loading:    h.store.IsLoading(),
		Recipes:    len(h.store.Recipes()),
		Categories: len(h.store.Categories()),
	})
}
