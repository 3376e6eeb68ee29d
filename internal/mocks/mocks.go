// Package mocks provides testify mock implementations of the model
// interfaces for use in unit tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/savorly/savorly-client/internal/model"
)

// AuthAPI mocks model.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

func (m *AuthAPI) Register(ctx context.Context, params model.RegisterParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// IngredientAPI mocks model.IngredientAPI.
type IngredientAPI struct {
	mock.Mock
}

func (m *IngredientAPI) ExtractFromText(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *IngredientAPI) ExtractFromAudio(ctx context.Context, audio []byte) ([]string, error) {
	args := m.Called(ctx, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// RecipeAPI mocks model.RecipeAPI.
type RecipeAPI struct {
	mock.Mock
}

func (m *RecipeAPI) Generate(ctx context.Context, req model.GenerationRequest) (model.Recipe, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Recipe), args.Error(1)
}

func (m *RecipeAPI) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	args := m.Called(ctx, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *RecipeAPI) History(ctx context.Context, limit, skip int) ([]model.Recipe, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *RecipeAPI) DeleteFromHistory(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

func (m *RecipeAPI) Favorites(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// ProfileAPI mocks model.ProfileAPI.
type ProfileAPI struct {
	mock.Mock
}

func (m *ProfileAPI) Profile(ctx context.Context) (model.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.UserProfile), args.Error(1)
}

func (m *ProfileAPI) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.UserProfile, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.UserProfile), args.Error(1)
}

// AnalyticsAPI mocks model.AnalyticsAPI.
type AnalyticsAPI struct {
	mock.Mock
}

func (m *AnalyticsAPI) Dashboard(ctx context.Context) (model.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Dashboard), args.Error(1)
}

// SessionManager mocks model.SessionManager.
type SessionManager struct {
	mock.Mock
}

func (m *SessionManager) Login(ctx context.Context, user model.UserProfile, token string) {
	m.Called(ctx, user, token)
}

func (m *SessionManager) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *SessionManager) SetProfile(ctx context.Context, user model.UserProfile) {
	m.Called(ctx, user)
}

func (m *SessionManager) Authenticated() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *SessionManager) Session() model.Session {
	args := m.Called()
	return args.Get(0).(model.Session)
}

// Notifier mocks model.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(message string, kind model.ToastKind) {
	m.Called(message, kind)
}

// KeyValueStore mocks model.KeyValueStore.
type KeyValueStore struct {
	mock.Mock
}

func (m *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *KeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// AudioCapturer mocks model.AudioCapturer.
type AudioCapturer struct {
	mock.Mock
}

func (m *AudioCapturer) Open(ctx context.Context) (model.AudioCapture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.AudioCapture), args.Error(1)
}

// AudioCapture mocks model.AudioCapture.
type AudioCapture struct {
	mock.Mock
}

func (m *AudioCapture) Stop() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
