// Package nav defines the navigation collaborator: the core signals where
// the user should go next and an external surface (here, the terminal UI)
// decides what that means.
package nav

// Route is a navigation target.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RouteForbidden Route = "/403"
)

// Navigator consumes navigation events. Implementations must be cheap and
// non-blocking; they run synchronously inside flow and transport code.
type Navigator interface {
	NavigateTo(route Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route Route)

func (f NavigatorFunc) NavigateTo(route Route) { f(route) }
