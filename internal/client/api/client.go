// Package api implements the HTTP client for the remote account service.
// Every request carries the stored bearer token when one exists, and every
// response is classified into exactly one outcome: success, session
// expiry (401), authorization denial (403), server failure (>=500),
// connectivity failure, or an ordinary request error.
package api

import "context"

// API endpoints, relative to the configured base URL.
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	profilePath  = "/auth/profile"
	pingPath     = "/ping"
)

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the signup request payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResult carries what the server hands back on a successful login.
// The username is not echoed; the caller supplies it locally.
type LoginResult struct {
	Token     string
	FirstName string
	LastName  string
}

// Profile is the account record behind GET /auth/profile.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Client is the remote account API surface consumed by the auth flows.
type Client interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error
	Profile(ctx context.Context) (*Profile, error)
	Ping(ctx context.Context) error
	Close() error
}

// TokenSource supplies the bearer token attached to outbound requests;
// an empty string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Invalidator destroys the held session when the server signals 401.
// The session store satisfies this.
type Invalidator interface {
	Logout(ctx context.Context) error
}
