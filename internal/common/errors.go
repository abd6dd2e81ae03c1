// Package common defines shared constants and sentinel errors used across
// the accountcli client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level outcomes, mapped at the API client boundary.
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("permission denied")
	ErrServer         = errors.New("server error")
	ErrConnectivity   = errors.New("no response from server")

	// Flow-level errors.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrSignupRejected       = errors.New("signup rejected")
)
