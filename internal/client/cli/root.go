package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dsmolenski/accountcli/internal/client/nav"
)

// getStatus renders the prompt decoration: the signed-in username and the
// current route.
func (a *App) getStatus() string {
	s := ""
	if snap := a.store.Snapshot(); snap.User != nil {
		s = snap.User.Username + " "
	}
	s = s + string(a.nav.Current())
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the account client (type 'help' for commands)")

	if a.isLoggedIn() {
		a.nav.NavigateTo(nav.RouteDashboard)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
