package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/mise/internal/recipestore"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
// mediaDir is where uploaded recipe photos are stored and served from.
func NewRouter(store *recipestore.Store, mediaDir string, sseHandler http.Handler) chi.Router {
	h := NewHandler(store)
	ih := NewImageHandler(mediaDir)

	r := chi.NewRouter()

	// Recipes CRUD plus the favorite toggle. The static /recipes/favorites
	// route must be registered alongside the /recipes/{id} pattern; chi
	// matches static segments first.
	r.Get("/recipes", h.ListRecipes)
	r.Post("/recipes", h.CreateRecipe)
	r.Get("/recipes/favorites", h.ListFavorites)
	r.Get("/recipes/{id}", h.GetRecipe)
	r.Put("/recipes/{id}", h.UpdateRecipe)
	r.Delete("/recipes/{id}", h.DeleteRecipe)
	r.Post("/recipes/{id}/favorite", h.ToggleFavorite)

	// Search.
	r.Get("/search", h.Search)

	// Categories.
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{id}/recipes", h.CategoryRecipes)

	// Session state probe.
	r.Get("/state", h.State)

	// Recipe photos.
	r.Post("/images", ih.Upload)
	r.Get("/images/{filename}", ih.ServeFile)

	// Change-event stream.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
