package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/savorly/savorly-client/internal/api/rest"
	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

// Auth runs the login/register/logout flows. Credential validation happens
// here, before anything reaches the network; the session store itself does
// not validate.
type Auth struct {
	api      model.AuthAPI
	sessions model.SessionManager
	notifier model.Notifier
	logger   *logger.Logger
}

// NewAuth creates the auth service.
func NewAuth(api model.AuthAPI, sessions model.SessionManager, notifier model.Notifier, logger *logger.Logger) *Auth {
	return &Auth{
		api:      api,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// Login validates the credentials locally, exchanges them with the service
// and establishes the session.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		a.notifier.Notify("Please enter a valid email address", model.ToastWarning)
		return fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		a.notifier.Notify("Please enter your password", model.ToastWarning)
		return fmt.Errorf("empty password")
	}

	result, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Info("Auth service: login failed", "email", email, "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			a.notifier.Notify(detail, model.ToastError)
		} else {
			a.notifier.Notify("Failed to log in", model.ToastError)
		}
		return fmt.Errorf("failed to log in: %w", err)
	}

	a.sessions.Login(ctx, result.User, result.AccessToken)
	a.logger.Info("Auth service: logged in", "email", result.User.Email)
	a.notifier.Notify("Welcome back!", model.ToastSuccess)

	return nil
}

// Register validates the account parameters locally and creates the account.
// It does not log the new user in.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) error {
	if err := validateRegisterParams(params); err != nil {
		a.notifier.Notify(err.Error(), model.ToastWarning)
		return err
	}

	if err := a.api.Register(ctx, params); err != nil {
		a.logger.Info("Auth service: registration failed", "email", params.Email, "error", err.Error())
		if detail := rest.Detail(err); detail != "" {
			a.notifier.Notify(detail, model.ToastError)
		} else {
			a.notifier.Notify("Failed to create account", model.ToastError)
		}
		return fmt.Errorf("failed to register: %w", err)
	}

	a.logger.Info("Auth service: account created", "email", params.Email)
	a.notifier.Notify("Account created! Please log in", model.ToastSuccess)

	return nil
}

// Logout clears the session.
func (a *Auth) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	a.notifier.Notify("Logged out", model.ToastInfo)
}

func validateRegisterParams(params model.RegisterParams) error {
	if params.Name == "" {
		return fmt.Errorf("please enter your name")
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		return fmt.Errorf("please enter a valid email address")
	}
	if len(params.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	for _, tag := range params.DietaryPreferences {
		if !model.ValidDietaryPreference(tag) {
			return fmt.Errorf("unknown dietary preference %q", tag)
		}
	}
	for _, tag := range params.HealthGoals {
		if !model.ValidHealthGoal(tag) {
			return fmt.Errorf("unknown health goal %q", tag)
		}
	}
	return nil
}
