// Package services contains the authentication flows: the orchestration
// between the form layer, the API client, the session store, and the
// navigation collaborator.
package services

import (
	"context"
	"errors"

	"github.com/dsmolenski/accountcli/internal/client/api"
	"github.com/dsmolenski/accountcli/internal/client/models"
	"github.com/dsmolenski/accountcli/internal/client/nav"
	"github.com/dsmolenski/accountcli/internal/client/session"
	"github.com/dsmolenski/accountcli/internal/client/validate"
	"github.com/dsmolenski/accountcli/internal/common"
	"github.com/dsmolenski/accountcli/internal/logging"
)

// Fallback texts used when the server rejects a request without saying why.
const (
	loginFallbackMessage  = "Failed to log in. Please check your credentials."
	signupFallbackMessage = "An error occurred while creating your account"
)

// AuthService defines the authentication flows for the terminal UI.
//
// Contract:
//   - Login: authenticate, publish the session, and hand off to navigation.
//   - Signup: create an account; never authenticates, success means "go log in".
//   - Logout: destroy the session and return to the login surface.
//   - Profile: authorized fetch of the account record.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// Login and Signup return common.ErrAlreadyAuthenticated when a session is
// already held, so the caller can redirect without re-prompting.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, values validate.FormValues) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*api.Profile, error)
	Ping(ctx context.Context) error
	Close() error
}

type authService struct {
	client api.Client
	store  *session.Store
	nav    nav.Navigator
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store, and navigator.
func NewAuthService(client api.Client, store *session.Store, navigator nav.Navigator, log logging.Logger) AuthService {
	return &authService{client: client, store: store, nav: navigator, log: log}
}

// Login authenticates against the server. The username comes from local
// input; names and token come from the response. On success the session is
// persisted and published as one unit, then navigation moves to the
// dashboard. Failures surface as a single human-readable message,
// preferring the server's wording.
func (a *authService) Login(ctx context.Context, username, password string) error {
	if a.store.IsAuthenticated() {
		return common.ErrAlreadyAuthenticated
	}

	res, err := a.client.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		a.log.Warn(ctx, "login rejected", "username", username, "error", err)
		return errors.New(api.FailureMessage(err, loginFallbackMessage))
	}

	sess := models.Session{
		Username:  username,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Token:     res.Token,
	}
	if err := a.store.Login(ctx, sess); err != nil {
		return err
	}

	if exp, ok := session.PeekExpiry(res.Token); ok {
		a.log.Info(ctx, "logged in", "username", username, "token_expires", exp)
	} else {
		a.log.Info(ctx, "logged in", "username", username)
	}

	a.nav.NavigateTo(nav.RouteDashboard)
	return nil
}

// Signup registers a new account. Success navigates to the login surface
// and must not touch the session store.
func (a *authService) Signup(ctx context.Context, values validate.FormValues) error {
	if a.store.IsAuthenticated() {
		return common.ErrAlreadyAuthenticated
	}

	req := api.RegisterRequest{
		Username:  values.Username,
		Password:  values.Password,
		FirstName: values.FirstName,
		LastName:  values.LastName,
	}
	if err := a.client.Register(ctx, req); err != nil {
		a.log.Warn(ctx, "signup rejected", "username", values.Username, "error", err)
		return errors.New(api.FailureMessage(err, signupFallbackMessage))
	}

	a.log.Info(ctx, "account created", "username", values.Username)
	a.nav.NavigateTo(nav.RouteLogin)
	return nil
}

// Logout destroys the session and returns to the login surface. Calling it
// while already logged out is harmless.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.nav.NavigateTo(nav.RouteLogin)
	return nil
}

// Profile fetches the account record. A 401 clears the session via the API
// client; a 403 routes to the forbidden surface with the session intact.
func (a *authService) Profile(ctx context.Context) (*api.Profile, error) {
	return a.client.Profile(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close() error {
	return a.client.Close()
}
