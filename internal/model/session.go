package model

import "context"

// Session represents the client's authentication state. Exactly one live
// instance exists per running client; it is mutated only by login and logout.
// Invariant: Authenticated == (User != nil && Token != "").
type Session struct {
	Authenticated bool
	User          *UserProfile
	Token         string
	Loading       bool
}

// Anonymous returns the logged-out session state.
func Anonymous() Session {
	return Session{}
}

// TokenProvider exposes the current access token to outbound calls.
type TokenProvider interface {
	Token() string
}

// SessionManager is the session store surface consumed by the services.
type SessionManager interface {
	Login(ctx context.Context, user UserProfile, token string)
	Logout(ctx context.Context)
	SetProfile(ctx context.Context, user UserProfile)
	Authenticated() bool
	Session() Session
}
