package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/coldpitch/internal/clipboard"
	"github.com/Makepad-fr/coldpitch/internal/config"
	"github.com/Makepad-fr/coldpitch/internal/logging"
	"github.com/Makepad-fr/coldpitch/internal/prompt"
	"github.com/Makepad-fr/coldpitch/internal/ui"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage error.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// App carries the collaborators every command shares. Zero fields get defaults.
type App struct {
	Out, Err  io.Writer
	Clipboard clipboard.Writer
	Prompter  *prompt.Prompter

	cfg     *config.Config
	log     *zap.Logger
	cfgPath string
	cfgFile string // resolved config path
	verbose bool
	theme   string
}

func NewApp() *App {
	return &App{
		Out:       os.Stdout,
		Err:       os.Stderr,
		Clipboard: clipboard.NewSystem(),
		Prompter:  prompt.New(),
	}
}

// Run dispatches subcommands and returns an exit code.
func Run(args []string) int {
	return NewApp().Run(args)
}

func (a *App) Run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err == nil {
		return ExitOK
	}

	ui.Fail(a.Err, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(a.Err)
		fmt.Fprint(a.Err, root.UsageString())
		return ExitUsage
	}
	return ExitError
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coldpitch",
		Short: "Draft a cold-outreach email to a local business owner",
		Long: `coldpitch turns a few facts about a local business into a subject line
and a short outreach message, ready to copy.

Run without arguments to open the interactive form.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// the full-screen form must not log to the terminal it draws on
			fallback := "stderr"
			if cmd.Name() == "form" || cmd.Name() == "coldpitch" {
				fallback = ""
			}
			return a.setup(fallback)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runForm(false)
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default $HOME/.coldpitch/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")

	root.AddCommand(
		a.formCmd(),
		a.renderCmd(),
		a.exampleCmd(),
		a.promptCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	return root
}

func (a *App) setup(logFallback string) error {
	path := a.cfgPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	a.cfgFile = path
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.Theme = a.theme
		if err := cfg.Validate(); err != nil {
			return usageError{err}
		}
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	log, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		File:     cfg.Log.File,
		Verbose:  a.verbose,
		Fallback: logFallback,
	})
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded", zap.String("path", path), zap.String("theme", cfg.Theme))
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s: unexpected argument %q", cmd.Name(), args[0])
	}
	return nil
}
