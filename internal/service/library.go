package service

import (
	"context"
	"fmt"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Library covers the personal recipe library: history, favorites, profile
// and the analytics dashboard.
type Library struct {
	recipes   model.RecipeAPI
	profiles  model.ProfileAPI
	analytics model.AnalyticsAPI
	sessions  model.SessionManager
	notifier  model.Notifier
	logger    *logger.Logger
}

// NewLibrary creates the library service.
func NewLibrary(
	recipes model.RecipeAPI,
	profiles model.ProfileAPI,
	analytics model.AnalyticsAPI,
	sessions model.SessionManager,
	notifier model.Notifier,
	logger *logger.Logger,
) *Library {
	return &Library{
		recipes:   recipes,
		profiles:  profiles,
		analytics: analytics,
		sessions:  sessions,
		notifier:  notifier,
		logger:    logger,
	}
}

// History returns a page of previously generated recipes.
func (l *Library) History(ctx context.Context, limit, skip int) ([]model.Recipe, error) {
	recipes, err := l.recipes.History(ctx, limit, skip)
	if err != nil {
		l.logger.Error("Library service: failed to load history", "error", err.Error())
		l.notifier.Notify("Failed to load history", model.ToastError)
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return recipes, nil
}

// DeleteFromHistory removes one recipe from the history.
func (l *Library) DeleteFromHistory(ctx context.Context, recipeID string) error {
	if err := l.recipes.DeleteFromHistory(ctx, recipeID); err != nil {
		l.logger.Error("Library service: failed to delete recipe",
			"recipe_id", recipeID,
			"error", err.Error())
		l.notifier.Notify("Failed to delete recipe", model.ToastError)
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	l.notifier.Notify("Recipe removed from history", model.ToastSuccess)

	return nil
}

// Favorites returns the user's favorite recipes.
func (l *Library) Favorites(ctx context.Context) ([]model.Recipe, error) {
	favorites, err := l.recipes.Favorites(ctx)
	if err != nil {
		l.logger.Error("Library service: failed to load favorites", "error", err.Error())
		l.notifier.Notify("Failed to load favorites", model.ToastError)
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	return favorites, nil
}

// Profile fetches the authoritative profile and refreshes the session copy.
func (l *Library) Profile(ctx context.Context) (model.UserProfile, error) {
	profile, err := l.profiles.Profile(ctx)
	if err != nil {
		l.logger.Error("Library service: failed to load profile", "error", err.Error())
		l.notifier.Notify("Failed to load profile", model.ToastError)
		return model.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	l.sessions.SetProfile(ctx, profile)

	return profile, nil
}

// UpdateProfile replaces the profile record wholesale, on the service and in
// the session.
func (l *Library) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.UserProfile, error) {
	for _, tag := range params.DietaryPreferences {
		if !model.ValidDietaryPreference(tag) {
			l.notifier.Notify(fmt.Sprintf("Unknown dietary preference %q", tag), model.ToastWarning)
			return model.UserProfile{}, fmt.Errorf("unknown dietary preference %q", tag)
		}
	}
	for _, tag := range params.HealthGoals {
		if !model.ValidHealthGoal(tag) {
			l.notifier.Notify(fmt.Sprintf("Unknown health goal %q", tag), model.ToastWarning)
			return model.UserProfile{}, fmt.Errorf("unknown health goal %q", tag)
		}
	}

	profile, err := l.profiles.UpdateProfile(ctx, params)
	if err != nil {
		l.logger.Error("Library service: failed to update profile", "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			l.notifier.Notify(detail, model.ToastError)
		} else {
			l.notifier.Notify("Failed to update profile", model.ToastError)
		}
		return model.UserProfile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	l.sessions.SetProfile(ctx, profile)
	l.notifier.Notify("Profile updated", model.ToastSuccess)

	return profile, nil
}

// Dashboard fetches the aggregate usage statistics.
func (l *Library) Dashboard(ctx context.Context) (model.Dashboard, error) {
	dashboard, err := l.analytics.Dashboard(ctx)
	if err != nil {
		l.logger.Error("Library service: failed to load dashboard", "error", err.Error())
		l.notifier.Notify("Failed to load analytics", model.ToastError)
		return model.Dashboard{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return dashboard, nil
}
