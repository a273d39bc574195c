package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/shouxkream/internal/client/client"
	"github.com/dmitrijs2005/shouxkream/internal/client/config"
)

type App struct {
	config   *config.Config
	client   client.Client
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAccountClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run serves the REPL on stdin until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Welcome to shouxkream CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}
