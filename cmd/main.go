package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/audio"
	"github.com/savorly/savorly-client/internal/config"
	"github.com/savorly/savorly-client/internal/ingredients"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
	"github.com/savorly/savorly-client/internal/notify"
	"github.com/savorly/savorly-client/internal/recording"
	"github.com/savorly/savorly-client/internal/service"
	"github.com/savorly/savorly-client/internal/session"
	"github.com/savorly/savorly-client/internal/storage/sqlite"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogJSON)

	store, err := sqlite.Open(ctx, cfg.State.DBPath)
	if err != nil {
		logger.Fatal("failed to open state store", "error", err)
	}
	defer store.Close()

	toasts := notify.NewQueue(logger)
	defer toasts.Close()
	toasts.Subscribe(renderToasts)

	sessions := session.NewStore(store, logger)
	sessions.Initialize(ctx)

	api := rest.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sessions, logger)
	api.OnSessionExpired(sessions.HandleUnauthorized)

	collector := ingredients.NewCollector(toasts)
	capturer := audio.NewCapturer(cfg.Audio.CaptureCommand, cfg.Audio.SampleRate)
	recorder := recording.NewController(capturer, api, collector, toasts, logger)

	authService := service.NewAuth(api, sessions, toasts, logger)
	extraction := service.NewExtraction(api, collector, toasts, logger)
	generation := service.NewGeneration(collector, api, sessions, toasts, logger)
	library := service.NewLibrary(api, api, api, sessions, toasts, logger)

	logAppVersion()

	app := &app{
		sessions:   sessions,
		collector:  collector,
		recorder:   recorder,
		auth:       authService,
		extraction: extraction,
		generation: generation,
		library:    library,
	}

	app.run(ctx)

	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func renderToasts(toasts []model.Toast) {
	if len(toasts) == 0 {
		return
	}
	latest := toasts[len(toasts)-1]
	fmt.Printf("[%s] %s\n", latest.Kind, latest.Message)
}

type app struct {
	sessions   *session.Store
	collector  *ingredients.Collector
	recorder   *recording.Controller
	auth       *service.Auth
	extraction *service.Extraction
	generation *service.Generation
	library    *service.Library

	mood     model.Mood
	cuisine  model.Cuisine
	servings int
}

func (a *app) run(ctx context.Context) {
	a.mood = model.MoodHappy
	a.cuisine = model.CuisineAny
	a.servings = 2

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	fmt.Println(`Type "help" for commands.`)
	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := a.dispatch(ctx, line); quit {
				return
			}
		}
	}
}

func (a *app) dispatch(ctx context.Context, line string) (quit bool) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "help":
		printHelp()
	case "login":
		email, password, _ := strings.Cut(arg, " ")
		_ = a.auth.Login(ctx, email, strings.TrimSpace(password))
	case "logout":
		a.auth.Logout(ctx)
	case "whoami":
		s := a.sessions.Session()
		if s.User != nil {
			fmt.Printf("%s <%s>\n", s.User.Name, s.User.Email)
		} else {
			fmt.Println("not logged in")
		}
	case "text":
		_ = a.extraction.ExtractFromText(ctx, arg)
	case "record":
		_ = a.recorder.Start(ctx)
	case "stop":
		_ = a.recorder.Stop(ctx)
	case "add":
		_ = a.collector.AddOne(arg)
	case "remove":
		if idx, err := strconv.Atoi(arg); err == nil {
			a.collector.RemoveAt(idx)
		}
	case "list":
		for i, item := range a.collector.Items() {
			fmt.Printf("%2d. %s\n", i, item)
		}
	case "mood":
		if m := model.Mood(arg); m.Valid() {
			a.mood = m
		} else {
			fmt.Printf("unknown mood, choose one of %v\n", model.Moods)
		}
	case "cuisine":
		if c := model.Cuisine(arg); c.Valid() {
			a.cuisine = c
		} else {
			fmt.Printf("unknown cuisine, choose one of %v\n", model.Cuisines)
		}
	case "servings":
		if n, err := strconv.Atoi(arg); err == nil {
			a.servings = n
		}
	case "generate":
		if err := a.generation.Submit(ctx, a.mood, a.cuisine, a.servings); err == nil {
			printRecipe(a.generation.Result())
		}
	case "fav":
		_ = a.generation.ToggleFavorite(ctx)
	case "another":
		_ = a.generation.GenerateAnother()
	case "history":
		if recipes, err := a.library.History(ctx, 10, 0); err == nil {
			for _, r := range recipes {
				fmt.Printf("%s  %s (%s, %dm)\n", r.ID, r.Title, r.CuisineType, r.TotalTime)
			}
		}
	case "delete":
		_ = a.library.DeleteFromHistory(ctx, arg)
	case "favorites":
		if recipes, err := a.library.Favorites(ctx); err == nil {
			for _, r := range recipes {
				fmt.Printf("%s  %s\n", r.ID, r.Title)
			}
		}
	case "profile":
		if profile, err := a.library.Profile(ctx); err == nil {
			fmt.Printf("%s <%s>\ndietary: %v\nallergies: %v\ngoals: %v\n",
				profile.Name, profile.Email,
				profile.DietaryPreferences, profile.Allergies, profile.HealthGoals)
		}
	case "dashboard":
		if d, err := a.library.Dashboard(ctx); err == nil {
			fmt.Printf("recipes: %d  favorites: %d  unique ingredients: %d  avg cook: %.0fm  top cuisine: %s\n",
				d.TotalRecipesGenerated, d.TotalFavorites, d.UniqueIngredientsUsed,
				d.AvgCookingTimeMinutes, d.MostUsedCuisine)
		}
	case "quit", "exit":
		return true
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}

	return false
}

func printRecipe(result *model.RecipeResult) {
	if result == nil {
		return
	}
	r := result.Recipe
	fmt.Printf("\n%s\n%s\n\n", r.Title, r.Description)
	fmt.Printf("serves %d | prep %dm | cook %dm | %s | %s\n",
		r.Servings, r.PrepTime, r.CookTime, r.Difficulty, r.CuisineType)
	fmt.Println("\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Printf("  - %s\n", ing)
	}
	fmt.Println("\nInstructions:")
	for i, step := range r.Instructions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	fmt.Printf("\n%.0f kcal | %.0fg protein | %.0fg carbs | %.0fg fat\n",
		r.Nutrition.Calories, r.Nutrition.Protein, r.Nutrition.Carbs, r.Nutrition.Fat)
}

func printHelp() {
	fmt.Print(`Commands:
  login <email> <password>   log in
  logout                     log out
  whoami                     show current user
  text <free text>           extract ingredients from text
  record / stop              voice capture lifecycle
  add <ingredient>           add one ingredient
  remove <index>             remove ingredient by index
  list                       list collected ingredients
  mood <tag>                 set mood
  cuisine <tag>              set cuisine preference
  servings <n>               set servings (1-10)
  generate                   generate a recipe
  fav                        toggle favorite on the result
  another                    start a new generation cycle
  history / favorites        browse the library
  delete <id>                remove a recipe from history
  profile / dashboard        account info and stats
  quit
`)
}
