package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dsmolenski/accountcli/internal/client/nav"
)

// terminalNavigator renders route changes as banners on the terminal. It is
// the single nav.Navigator of the app, shared by the API client (session
// expiry, access denied) and the auth flows (login, dashboard).
type terminalNavigator struct {
	out io.Writer

	mu    sync.Mutex
	route nav.Route
}

func newTerminalNavigator(out io.Writer) *terminalNavigator {
	return &terminalNavigator{out: out, route: nav.RouteLogin}
}

func (n *terminalNavigator) NavigateTo(route nav.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.route = route

	switch route {
	case nav.RouteDashboard:
		fmt.Fprintln(n.out, "You are signed in. Type 'whoami' to view your account.")
	case nav.RouteLogin:
		fmt.Fprintln(n.out, "Please log in to continue.")
	case nav.RouteForbidden:
		fmt.Fprintln(n.out, "Access denied.")
	}
}

// Current returns the last route navigated to.
func (n *terminalNavigator) Current() nav.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}
