package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dsmolenski/accountcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// When a session is already held the prompt is skipped entirely and the user
// is told so. On failure the service's message is printed; it already
// prefers the server's wording over the generic fallback. The password byte
// slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("You are already signed in.")
		return common.ErrAlreadyAuthenticated
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}

// Whoami fetches and prints the current account record from the server.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return common.ErrNotAuthenticated
	}

	profile, err := a.auth.Profile(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrSessionExpired) && !errors.Is(err, common.ErrForbidden) {
			printlnFn("Failed to load your account:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s (%s %s)", profile.Username, profile.FirstName, profile.LastName))
	return nil
}

// Logout signs out and clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Failed to sign out:", err.Error())
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// Ping checks server reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.auth.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up.")
	return nil
}
