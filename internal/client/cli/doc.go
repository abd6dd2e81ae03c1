// Package cli implements the interactive terminal front end of the account
// client.
//
// It wires the local session database, the session store, the HTTP API
// client and the auth service together into an App, then runs a small REPL
// on standard input. Screen changes (login, dashboard, access denied) are
// modeled as routes: collaborators request a route through the Navigator
// and the terminal renders a banner for it.
//
// Commands
//
//	Not signed in:
//	  - help           — show available commands
//	  - signup         — create an account (interactive form)
//	  - login          — authenticate
//	  - ping           — check server reachability
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - whoami         — show the current account
//	  - logout         — sign out
//	  - ping           — check server reachability
//	  - exit | quit    — leave the program
package cli
