// Package models defines the account identity types held by the client.
package models

// Session is the authenticated identity held by the process: who the user
// is plus the bearer credential proving it. It is persisted and replaced
// as a unit, never field by field.
type Session struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token"`
}

// WellFormed reports whether the record can back an authenticated session.
// A session without a username or token is treated as corrupt.
func (s Session) WellFormed() bool {
	return s.Username != "" && s.Token != ""
}
