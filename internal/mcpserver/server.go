// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the recipe store's operations for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/mise/internal/api"
	"github.com/starford/mise/internal/apperr"
	"github.com/starford/mise/internal/models"
	"github.com/starford/mise/internal/recipestore"
)

// recipeSummary is the lightweight listing shape returned by list tools.
type recipeSummary struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	IsFavorite bool     `json:"isFavorite"`
}

// Server wraps the MCP server with Mise tools.
type Server struct {
	mcp   *server.MCPServer
	store *recipestore.Store
}

// New creates a new MCP server with all Mise tools registered.
func New(store *recipestore.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"Mise",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_recipes",
		mcp.WithDescription("List all recipes, or only the favorited ones."),
		mcp.WithBoolean("favorites", mcp.Description("When true, list only favorites")),
	), s.listRecipes)

	s.mcp.AddTool(mcp.NewTool("get_recipe",
		mcp.WithDescription("Read one recipe in full, including ingredients and steps."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Recipe id")),
	), s.getRecipe)

	s.mcp.AddTool(mcp.NewTool("search_recipes",
		mcp.WithDescription("Case-insensitive substring search over recipe titles, descriptions, and ingredient names."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchRecipes)

	s.mcp.AddTool(mcp.NewTool("add_recipe",
		mcp.WithDescription("Add a new recipe. The recipe argument MUST follow the canonical "+
			"recipe JSON format. Read the contract first via the get_recipe_contract tool "+
			"or the mise://recipe-format resource."),
		mcp.WithString("recipe", mcp.Required(), mcp.Description("Recipe JSON following the Mise recipe format contract")),
	), s.addRecipe)

	s.mcp.AddTool(mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Flip the favorite flag on a recipe."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Recipe id")),
	), s.toggleFavorite)

	s.mcp.AddTool(mcp.NewTool("delete_recipe",
		mcp.WithDescription("Delete a recipe by id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Recipe id")),
	), s.deleteRecipe)

	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the available categories and their ids."),
	), s.listCategories)

	s.mcp.AddTool(mcp.NewTool("get_recipe_contract",
		mcp.WithDescription("Returns the canonical Mise recipe format contract. "+
			"Call this before adding recipes to ensure correct structure."),
	), s.getRecipeContract)

	// Resource: recipe format contract.
	s.mcp.AddResource(
		mcp.NewResource("mise://recipe-format", "Recipe Format Contract",
			mcp.WithResourceDescription("Canonical recipe JSON format that add_recipe submissions must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecipeFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func summarize(recipes []models.Recipe) []recipeSummary {
	out := make([]recipeSummary, len(recipes))
	for i, r := range recipes {
		out[i] = recipeSummary{
			ID:         r.ID,
			Title:      r.Title,
			Categories: r.Categories,
			IsFavorite: r.IsFavorite,
		}
	}
	return out
}

func (s *Server) listRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recipes := s.store.Recipes()
	if req.GetBool("favorites", false) {
		recipes = s.store.Favorites()
	}
	out, _ := json.MarshalIndent(summarize(recipes), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recipe, err := s.store.RecipeByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(recipe, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results := s.store.Search(query)
	out, _ := json.MarshalIndent(summarize(results), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("recipe")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var in api.RecipeInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid recipe JSON: %v", err)), nil
	}
	if err := in.Validate(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recipe does not follow the contract: %v", err)), nil
	}

	now := time.Now().UnixMilli()
	recipe := in.ToRecipe(strconv.FormatInt(now, 10), now, now)
	s.store.Add(ctx, recipe)
	return mcp.NewToolResultText(fmt.Sprintf("created: %s (%s)", recipe.ID, recipe.Title)), nil
}

func (s *Server) toggleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := s.store.RecipeByID(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	s.store.ToggleFavorite(ctx, id)
	recipe, _ := s.store.RecipeByID(id)
	return mcp.NewToolResultText(fmt.Sprintf("favorite=%t: %s", recipe.IsFavorite, id)), nil
}

func (s *Server) deleteRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := s.store.RecipeByID(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	s.store.Delete(ctx, id)
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", id)), nil
}

func (s *Server) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.store.Categories(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getRecipeContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RecipeFormatContract), nil
}

func (s *Server) readRecipeFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "mise://recipe-format",
			MIMEType: "text/markdown",
			Text:     RecipeFormatContract,
		},
	}, nil
}
