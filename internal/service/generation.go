package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/ingredients"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Phase enumerates generation workflow phases.
type Phase string

const (
	// PhaseEditing means the form and ingredient list are mutable.
	PhaseEditing Phase = "editing"
	// PhaseSubmitting means a generation request is in flight.
	PhaseSubmitting Phase = "submitting"
	// PhaseResult means a generated recipe is on display.
	PhaseResult Phase = "result"
)

// Generation coordinates one recipe-generation cycle: form state, the
// in-flight request, the displayed result and its favorite flag. A single
// request may be in flight at a time; re-submission is rejected, not queued.
type Generation struct {
	mu     sync.Mutex
	phase  Phase
	result *model.RecipeResult
	// serial identifies the current cycle; responses arriving after a reset
	// carry a stale serial and are dropped.
	serial uint64

	collector *ingredients.Collector
	api       model.RecipeAPI
	sessions  model.SessionManager
	notifier  model.Notifier
	logger    *logger.Logger
}

// NewGeneration creates an orchestrator in the editing phase.
func NewGeneration(
	collector *ingredients.Collector,
	api model.RecipeAPI,
	sessions model.SessionManager,
	notifier model.Notifier,
	logger *logger.Logger,
) *Generation {
	return &Generation{
		phase:     PhaseEditing,
		collector: collector,
		api:       api,
		sessions:  sessions,
		notifier:  notifier,
		logger:    logger,
	}
}

// Phase returns the current workflow phase.
func (g *Generation) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.phase
}

// Result returns a copy of the displayed result, or nil outside the result
// phase.
func (g *Generation) Result() *model.RecipeResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.result == nil {
		return nil
	}
	result := *g.result
	return &result
}

// Collector exposes the ingredient collector owned by this cycle.
func (g *Generation) Collector() *ingredients.Collector {
	return g.collector
}

// Submit freezes a generation request and sends it. An empty ingredient list
// is rejected locally with a warning toast and never reaches the network; a
// remote failure returns the workflow to editing with the form intact.
func (g *Generation) Submit(ctx context.Context, mood model.Mood, cuisine model.Cuisine, servings int) error {
	g.mu.Lock()
	if g.phase == PhaseSubmitting {
		g.mu.Unlock()
		return model.ErrBusy
	}
	if g.phase != PhaseEditing {
		g.mu.Unlock()
		return model.ErrInvalidState
	}

	if !g.sessions.Authenticated() {
		g.mu.Unlock()
		g.notifier.Notify("Please log in to generate recipes", model.ToastWarning)
		return model.ErrNotAuthenticated
	}

	req := model.GenerationRequest{
		Ingredients:       g.collector.Items(),
		Mood:              mood,
		CuisinePreference: cuisine,
		Servings:          servings,
	}
	if len(req.Ingredients) == 0 {
		g.mu.Unlock()
		g.notifier.Notify("Please add at least one ingredient", model.ToastWarning)
		return model.ErrEmptyIngredients
	}
	if err := req.Validate(); err != nil {
		g.mu.Unlock()
		g.notifier.Notify(err.Error(), model.ToastWarning)
		return fmt.Errorf("invalid generation request: %w", err)
	}

	g.phase = PhaseSubmitting
	serial := g.serial
	g.mu.Unlock()

	g.logger.Debug("Generation service: submitting request",
		"ingredients", len(req.Ingredients),
		"mood", string(req.Mood),
		"cuisine", string(req.CuisinePreference),
		"servings", req.Servings)

	recipe, err := g.api.Generate(ctx, req)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.serial != serial {
		// The cycle was reset while the request was in flight; the response
		// has no state to land in.
		g.logger.Debug("Generation service: dropping stale response")
		return nil
	}

	if err != nil {
		g.phase = PhaseEditing
		g.logger.Error("Generation service: request failed", "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			g.notifier.Notify(detail, model.ToastError)
		} else {
			g.notifier.Notify("Failed to generate recipe", model.ToastError)
		}
		return fmt.Errorf("failed to generate recipe: %w", err)
	}

	g.result = &model.RecipeResult{Recipe: recipe, IsFavorite: false}
	g.phase = PhaseResult
	g.logger.Info("Generation service: recipe generated", "title", recipe.Title)
	g.notifier.Notify("Recipe generated successfully!", model.ToastSuccess)

	return nil
}

// ToggleFavorite optimistically flips the favorite flag of the displayed
// recipe and confirms with the service; a remote failure reverts the flag.
func (g *Generation) ToggleFavorite(ctx context.Context) error {
	g.mu.Lock()
	if g.phase != PhaseResult || g.result == nil {
		g.mu.Unlock()
		return model.ErrInvalidState
	}

	previous := g.result.IsFavorite
	g.result.IsFavorite = !previous
	recipeID := g.result.Recipe.ID
	serial := g.serial
	g.mu.Unlock()

	_, err := g.api.ToggleFavorite(ctx, recipeID)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.serial != serial || g.result == nil {
		return nil
	}

	if err != nil {
		g.result.IsFavorite = previous
		g.logger.Error("Generation service: favorite toggle failed",
			"recipe_id", recipeID,
			"error", err.Error())
		g.notifier.Notify("Failed to toggle favorite", model.ToastError)
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}

	if g.result.IsFavorite {
		g.notifier.Notify("Added to favorites", model.ToastSuccess)
	} else {
		g.notifier.Notify("Removed from favorites", model.ToastSuccess)
	}

	return nil
}

// GenerateAnother resets the workflow from result back to editing with a
// cleared ingredient list and no displayed recipe.
func (g *Generation) GenerateAnother() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseResult {
		return model.ErrInvalidState
	}

	g.result = nil
	g.phase = PhaseEditing
	g.serial++
	g.collector.Reset()

	return nil
}
