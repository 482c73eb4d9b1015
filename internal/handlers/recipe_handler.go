package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/potluck/recipebook/internal/httperr"
	"github.com/potluck/recipebook/internal/middleware"
	"github.com/potluck/recipebook/internal/services"
)

type RecipeHandler struct {
	recipes *services.RecipeService
}

func NewRecipeHandler(recipes *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipes.List(c.Context())
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(recipes)
}

func (h *RecipeHandler) ListFavorites(c *fiber.Ctx) error {
	recipes, err := h.recipes.Favorites(c.Context(), middleware.UserID(c))
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(recipes)
}

func (h *RecipeHandler) AddFavorite(c *fiber.Ctx) error {
	msg, err := h.recipes.AddFavorite(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(fiber.Map{"message": msg})
}

func (h *RecipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	msg, err := h.recipes.RemoveFavorite(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(fiber.Map{"message": msg})
}
