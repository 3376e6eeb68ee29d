package model

import "context"

// LoginResult is the payload returned by a successful login call.
type LoginResult struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"access_token"`
}

// AuthAPI covers the authentication endpoints of the remote service.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, params RegisterParams) error
}

// IngredientAPI covers the ingredient extraction endpoints.
type IngredientAPI interface {
	ExtractFromText(ctx context.Context, text string) ([]string, error)
	ExtractFromAudio(ctx context.Context, audio []byte) ([]string, error)
}

// RecipeAPI covers recipe generation and the personal library endpoints.
type RecipeAPI interface {
	Generate(ctx context.Context, req GenerationRequest) (Recipe, error)
	ToggleFavorite(ctx context.Context, recipeID string) (bool, error)
	History(ctx context.Context, limit, skip int) ([]Recipe, error)
	DeleteFromHistory(ctx context.Context, recipeID string) error
	Favorites(ctx context.Context) ([]Recipe, error)
}

// ProfileAPI covers the profile endpoints.
type ProfileAPI interface {
	Profile(ctx context.Context) (UserProfile, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (UserProfile, error)
}

// AnalyticsAPI covers the analytics endpoints.
type AnalyticsAPI interface {
	Dashboard(ctx context.Context) (Dashboard, error)
}
