package main

import (
	"log/slog"
	"os"

	"github.com/potluck/recipebook/internal/config"
	"github.com/potluck/recipebook/internal/db"
	"github.com/potluck/recipebook/internal/handlers"
	"github.com/potluck/recipebook/internal/services"
	"github.com/potluck/recipebook/internal/storage"
	"github.com/potluck/recipebook/internal/store/mongostore"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	database, err := db.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongodb connection failed", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to mongodb", "db", cfg.MongoDB)

	images, err := storage.NewMinioImageStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logger.Error("minio connection failed", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to minio", "bucket", cfg.MinioBucket)

	users := mongostore.NewUserStore(database)
	recipes := mongostore.NewRecipeStore(database)
	favorites := mongostore.NewFavoriteStore(database)

	authService := services.NewAuthService(users, []byte(cfg.JWTSecret), cfg.TokenTTL)
	recipeService := services.NewRecipeService(recipes, favorites)

	app := handlers.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewRecipeHandler(recipeService),
		handlers.NewImageHandler(images),
		authService,
	)

	logger.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
