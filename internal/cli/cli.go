// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the cookbook terminal client.

Every command talks to the backend through one [recipe.Sync], so the terminal
sees exactly the list view, search, favourites and form rules that any other
client of the collection would.

Commands:

  - list:   print the derived view (search and favourites filters).
  - show:   print one recipe as text or YAML.
  - add:    create a recipe from flags, prompting for invalid fields.
  - edit:   change a recipe; unchanged edits are never sent.
  - delete: delete after confirmation.
  - fav:    set or clear the favourite flag.
  - export: write the derived view to an .xlsx workbook.
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/cookbook/internal/platform/config"
	"github.com/taibuivan/cookbook/internal/platform/constants"
	"github.com/taibuivan/cookbook/internal/platform/ctxutil"
	"github.com/taibuivan/cookbook/internal/recipe"
	"github.com/taibuivan/cookbook/internal/recipe/remote"
	"github.com/taibuivan/cookbook/pkg/uuid"
)

// App holds the streams and the lazily built client shared by all commands.
type App struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	apiURL  string
	verbose bool

	logger *slog.Logger
	sync   *recipe.Sync
}

// NewApp returns an App reading answers from in and printing to out and errOut.
func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Command builds the root command with every subcommand attached.
func (app *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "cookbook",
		Short:         "Browse and edit the Cookbook recipe collection",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.connect(); err != nil {
				return err
			}
			// One correlation id for every backend call of this invocation.
			cmd.SetContext(ctxutil.WithRequestID(cmd.Context(), uuid.NewTimeOrdered()))
			return nil
		},
	}

	root.SetIn(app.in)
	root.SetOut(app.out)
	root.SetErr(app.errOut)

	root.PersistentFlags().StringVar(&app.apiURL, "api", "", "recipe collection URL (overrides COOKBOOK_API_URL)")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		app.listCommand(),
		app.showCommand(),
		app.addCommand(),
		app.editCommand(),
		app.deleteCommand(),
		app.favCommand(),
		app.exportCommand(),
	)

	return root
}

// connect loads the client configuration and wires the sync layer.
func (app *App) connect() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	if app.apiURL == "" {
		app.apiURL = cfg.APIURL
	}

	level := slog.LevelWarn
	if app.verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	app.logger = slog.New(slog.NewTextHandler(app.errOut, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))

	verbose := level == slog.LevelDebug
	store := recipe.NewStore()
	if verbose {
		store.Subscribe(func(snapshot recipe.Snapshot) {
			if snapshot.Loading {
				fmt.Fprintln(app.errOut, "… loading")
			}
		})
	}

	client := remote.NewClient(app.apiURL, cfg.Timeout, app.logger)
	app.sync = recipe.NewSync(client, store, &navigator{out: app.errOut, verbose: verbose}, app.logger)
	return nil
}
