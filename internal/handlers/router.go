package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/potluck/recipebook/internal/middleware"
)

// NewRouter builds the Fiber app with every route the API exposes.
func NewRouter(auth *AuthHandler, recipes *RecipeHandler, images *ImageHandler, verifier middleware.TokenVerifier) *fiber.App {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New())

	requireAuth := middleware.RequireAuth(verifier)

	app.Post("/signup", auth.SignUp)
	app.Post("/signin", auth.SignIn)
	app.Get("/refresh-token", requireAuth, auth.RefreshToken)

	app.Get("/recipes", recipes.ListRecipes)
	app.Get("/favorite-recipes", requireAuth, recipes.ListFavorites)
	app.Patch("/favorite-recipes/add/:id", requireAuth, recipes.AddFavorite)
	app.Patch("/favorite-recipes/delete/:id", requireAuth, recipes.RemoveFavorite)

	app.Get("/image/:id", images.GetImage)

	return app
}
