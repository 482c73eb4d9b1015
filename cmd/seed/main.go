// Seeds the recipe catalog: inserts the starter recipes into MongoDB and
// uploads their images to MinIO. The catalog is read-only to clients, so
// this is the only write path for recipes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/potluck/recipebook/internal/config"
	"github.com/potluck/recipebook/internal/db"
	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/storage"
	"github.com/potluck/recipebook/internal/store/mongostore"
	"github.com/potluck/recipebook/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type seedRecipe struct {
	title       string
	description string
	imageFile   string
}

var starterRecipes = []seedRecipe{
	{
		title:       "Pressure Cooker Beef Stew",
		description: "Chuck roast, carrots and potatoes in a rich broth, 35 minutes at high pressure.",
		imageFile:   "beef-stew.jpg",
	},
	{
		title:       "One-Pot Chicken and Rice",
		description: "Bone-in thighs over jasmine rice with ginger and scallion.",
		imageFile:   "chicken-rice.jpg",
	},
	{
		title:       "Steel-Cut Oatmeal",
		description: "Creamy oats with cinnamon and brown sugar, ready in 12 minutes.",
		imageFile:   "oatmeal.jpg",
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	imageDir := "seed-images"
	if len(os.Args) > 1 {
		imageDir = os.Args[1]
	}

	database, err := db.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongodb connection failed", "err", err)
		os.Exit(1)
	}

	images, err := storage.NewMinioImageStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		logger.Error("minio connection failed", "err", err)
		os.Exit(1)
	}

	recipes := mongostore.NewRecipeStore(database)
	ctx := context.Background()

	tasks := make([]utils.Task, 0, len(starterRecipes))
	for _, seed := range starterRecipes {
		seed := seed
		tasks = append(tasks, func() error {
			recipe := models.Recipe{
				ID:          primitive.NewObjectID(),
				Title:       seed.title,
				Description: seed.description,
			}

			data, err := os.ReadFile(filepath.Join(imageDir, seed.imageFile))
			if err == nil {
				imageID := primitive.NewObjectID().Hex()
				if err := images.Put(ctx, imageID, contentTypeFor(seed.imageFile), data); err != nil {
					return fmt.Errorf("upload image for %q: %w", seed.title, err)
				}
				recipe.ImageID = imageID
			} else {
				logger.Warn("seeding recipe without image", "title", seed.title, "err", err)
			}

			if err := recipes.Insert(ctx, recipe); err != nil {
				return fmt.Errorf("insert %q: %w", seed.title, err)
			}
			logger.Info("seeded recipe", "title", seed.title)
			return nil
		})
	}

	failed := false
	for _, err := range utils.RunTasks(tasks) {
		if err != nil {
			logger.Error("seed task failed", "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
