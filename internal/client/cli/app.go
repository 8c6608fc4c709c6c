package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/minsu-cho/sajubook/internal/client/api"
	"github.com/minsu-cho/sajubook/internal/client/config"
	"github.com/minsu-cho/sajubook/internal/client/routing"
	"github.com/minsu-cho/sajubook/internal/client/services"
	"github.com/minsu-cho/sajubook/internal/client/session"
	"github.com/minsu-cho/sajubook/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client: API access, session lifecycle, and
// guarded navigation between views.
type App struct {
	config *config.Config
	api    *api.Client
	auth   services.AuthService
	store  session.Store
	guard  *routing.Guard
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local session database and wires the full client stack.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	store := session.NewSQLiteStore(db)

	apiClient := api.New(api.Options{
		BaseURL: c.BaseURL,
		Timeout: c.RequestTimeout,
		Store:   store,
		Logger:  log,
	})

	return &App{
		config: c,
		api:    apiClient,
		auth:   services.NewAuthService(apiClient, store, log),
		store:  store,
		guard:  routing.NewGuard(),
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "SajuBook CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status builds the prompt decoration: email, role, and token expiry when
// the access token carries one.
func (a *App) status() string {
	ctx := context.Background()

	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		return ""
	}

	s := fmt.Sprintf("%s %s", user.Email, user.Role)
	if exp, ok := a.tokenExpiry(ctx); ok {
		s += " exp:" + exp
	}
	return "(" + s + ")"
}

func (a *App) tokenExpiry(ctx context.Context) (string, bool) {
	sess, err := a.store.Get(ctx)
	if err != nil || !sess.LoggedIn() {
		return "", false
	}
	exp, ok := api.TokenExpiry(sess.AccessToken)
	if !ok {
		return "", false
	}
	return exp.Local().Format("15:04"), true
}

func (a *App) isLoggedIn() bool {
	ok, err := a.auth.IsLoggedIn(context.Background())
	if err != nil {
		a.log.Error(context.Background(), "reading session", "error", err)
		return false
	}
	return ok
}
