// Interactive client for the recipe book API. It drives the session
// manager (sign-in/up/out, cold-start resume, background token refresh)
// and keeps the favorites view in sync through the toggle bus.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/potluck/recipebook/internal/client/api"
	"github.com/potluck/recipebook/internal/client/session"
	"github.com/potluck/recipebook/internal/client/sync"
	"github.com/potluck/recipebook/internal/client/views"
	"github.com/potluck/recipebook/internal/models"
)

// The refresh period stays below the server's 10h token expiry so a
// refresh always lands before the token lapses.
const tokenRefreshPeriod = 8 * time.Hour

type app struct {
	session   *session.Manager
	client    *api.Client
	bus       *sync.Bus
	favorites *views.FavoritesView
	recipes   []models.Recipe
	reader    *bufio.Reader
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	baseURL := os.Getenv("RECIPEBOOK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	store := session.NewTokenStore(filepath.Join(dir, "recipebook"))

	a := &app{
		bus:       sync.NewBus(),
		favorites: views.NewFavoritesView(),
		reader:    bufio.NewReader(os.Stdin),
	}
	// The session manager is the token source for the REST client, and
	// the client is the API the manager refreshes through.
	a.client = api.NewClient(baseURL, api.TokenFunc(func() string { return a.session.Token() }))
	a.session = session.NewManager(a.client, store, tokenRefreshPeriod, logger)

	ctx := context.Background()
	if a.session.Resume(ctx) {
		fmt.Println("Welcome back!")
	}

	a.run(ctx)
}

func (a *app) run(ctx context.Context) {
	for {
		fmt.Printf("recipebook (%s)> ", a.session.State())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			a.help()
		case "signup":
			a.authenticate(ctx, a.session.SignUp, "Sign Up Failed!")
		case "signin":
			a.authenticate(ctx, a.session.SignIn, "Sign In Failed!")
		case "signout":
			a.session.SignOut()
			a.favorites.Detach()
		case "recipes":
			a.listRecipes(ctx)
		case "favorites":
			a.listFavorites(ctx)
		case "fav":
			a.toggleFavorite(ctx, parts[1:], true)
		case "unfav":
			a.toggleFavorite(ctx, parts[1:], false)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", parts[0])
		}
	}
}

func (a *app) help() {
	if a.session.State() == session.Authenticated {
		fmt.Println("Available commands: recipes, favorites, fav <n>, unfav <n>, signout, exit")
	} else {
		fmt.Println("Available commands: signin, signup, exit")
	}
}

func (a *app) authenticate(ctx context.Context, call func(context.Context, string, string) error, failTitle string) {
	fmt.Print("email: ")
	email, _ := a.reader.ReadString('\n')
	fmt.Print("password: ")
	password, _ := a.reader.ReadString('\n')

	if err := call(ctx, strings.TrimSpace(email), strings.TrimSpace(password)); err != nil {
		fmt.Printf("%s %s\n", failTitle, err)
		return
	}
	a.listRecipes(ctx)
}

func (a *app) listRecipes(ctx context.Context) {
	recipes, err := a.client.Recipes(ctx)
	if err != nil {
		fmt.Println("Failed to get recipes!", err)
		return
	}
	a.recipes = recipes
	fmt.Println("All Recipes:")
	for i, r := range recipes {
		fmt.Printf("  %d. %s — %s\n", i+1, r.Title, r.Description)
	}
}

func (a *app) listFavorites(ctx context.Context) {
	recipes, err := a.client.FavoriteRecipes(ctx)
	if err != nil {
		fmt.Println("Failed to get recipes!", err)
		return
	}
	a.favorites.SetRecipes(recipes)
	a.favorites.Attach(a.bus)

	if a.favorites.Empty() {
		fmt.Println("You have not saved any recipes to your favorites yet!")
		return
	}
	fmt.Println("My Favorite Recipes:")
	for i, r := range a.favorites.Recipes() {
		fmt.Printf("  %d. %s\n", i+1, r.Title)
	}
}

func (a *app) toggleFavorite(ctx context.Context, args []string, add bool) {
	if len(args) != 1 {
		fmt.Println("usage: fav|unfav <recipe number from 'recipes'>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.recipes) {
		fmt.Println("No such recipe. Run 'recipes' first.")
		return
	}
	recipe := a.recipes[n-1]

	if add {
		err = a.client.AddFavorite(ctx, recipe.ID.Hex())
	} else {
		err = a.client.RemoveFavorite(ctx, recipe.ID.Hex())
	}
	if err != nil {
		if add {
			fmt.Println("Failed to add favorite recipe!", err)
		} else {
			fmt.Println("Failed to cancel favor!", err)
		}
		return
	}

	a.bus.Publish(sync.Event{Added: add, Recipe: recipe})
	if add {
		fmt.Printf("Added %q to favorites.\n", recipe.Title)
	} else {
		fmt.Printf("Removed %q from favorites.\n", recipe.Title)
	}
}
