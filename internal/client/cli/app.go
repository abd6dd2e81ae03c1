package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dsmolenski/accountcli/internal/client/api"
	"github.com/dsmolenski/accountcli/internal/client/config"
	"github.com/dsmolenski/accountcli/internal/client/repositories/sessionrepo"
	"github.com/dsmolenski/accountcli/internal/client/services"
	"github.com/dsmolenski/accountcli/internal/client/session"
	"github.com/dsmolenski/accountcli/internal/logging"
)

type App struct {
	config *config.Config
	store  *session.Store
	auth   services.AuthService
	nav    *terminalNavigator
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp opens the local session database, restores any persisted session
// and wires the store, API client and auth service together.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := sessionrepo.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(db, log)
	navigator := newTerminalNavigator(os.Stdout)

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout, store, store, navigator, log)
	as := services.NewAuthService(apiClient, store, navigator, log)

	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}

	return &App{
		config: c,
		store:  store,
		auth:   as,
		nav:    navigator,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.auth.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}
