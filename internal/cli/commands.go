package cli

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/coldpitch/internal/clipboard"
	"github.com/Makepad-fr/coldpitch/internal/config"
	"github.com/Makepad-fr/coldpitch/internal/draft"
	"github.com/Makepad-fr/coldpitch/internal/model"
	"github.com/Makepad-fr/coldpitch/internal/server"
	"github.com/Makepad-fr/coldpitch/internal/store/formfile"
	"github.com/Makepad-fr/coldpitch/internal/tui"
	"github.com/Makepad-fr/coldpitch/internal/ui"
)

// -------------- form ----------------

func (a *App) formCmd() *cobra.Command {
	var printAfter bool
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive form (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runForm(printAfter)
		},
	}
	cmd.Flags().BoolVar(&printAfter, "print", false, "print subject + message after quitting")
	return cmd
}

func (a *App) runForm(printAfter bool) error {
	a.log.Info("form started")
	final, err := tui.Run(tui.Options{
		Initial:   model.FormInput{YourName: a.cfg.Sender},
		Clipboard: a.Clipboard,
		Logger:    a.log,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if printAfter {
		fmt.Fprintln(a.Out, final.Draft().Payload())
	}
	return nil
}

// -------------- render ----------------

type outputOptions struct {
	format string
	copy   bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format: text or json")
	cmd.Flags().BoolVar(&o.copy, "copy", false, "also copy subject + message to the clipboard")
}

func (o *outputOptions) validate() error {
	switch o.format {
	case "text", "json":
		return nil
	}
	return usagef("unknown format %q (want text or json)", o.format)
}

func (a *App) renderCmd() *cobra.Command {
	var (
		fields  model.FormInput
		input   string
		example bool
		out     outputOptions
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render subject + message from flags or a form file",
		Example: `  coldpitch render --business "Reform Fitness" --owner mike --sender Alex
  coldpitch render --input mike.yaml --format json
  coldpitch render --example --copy`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			form := model.Empty()
			if example {
				form = model.Example()
			}
			if input != "" {
				f, err := formfile.Load(input)
				if err != nil {
					return fmt.Errorf("load %s: %w", input, err)
				}
				form = form.Merge(f)
			}
			form = form.Merge(fields)
			if draft.Sanitize(form.YourName) == "" {
				form.YourName = a.cfg.Sender
			}
			return a.emit(form, out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fields.BusinessName, "business", "", "business name")
	f.StringVar(&fields.Niche, "niche", "", "niche, e.g. \"Gym / Fitness\"")
	f.StringVar(&fields.OwnerName, "owner", "", "owner's name")
	f.StringVar(&fields.City, "city", "", "city")
	f.StringVar(&fields.Observations, "observations", "", "one clear observation")
	f.StringVar(&fields.YourName, "sender", "", "your name (default from config)")
	f.StringVarP(&input, "input", "i", "", "form file (.json, .yaml)")
	f.BoolVar(&example, "example", false, "start from the example form")
	out.bind(cmd)
	return cmd
}

func (a *App) emit(form model.FormInput, o outputOptions) error {
	r := draft.Render(form)
	a.log.Debug("rendered",
		zap.Int("subject_len", len(r.Subject)),
		zap.Int("body_len", len(r.Body)),
	)

	switch o.format {
	case "json":
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		fmt.Fprintln(a.Out, r.Payload())
	}

	if !o.copy {
		return nil
	}
	if !clipboard.Copy(a.Clipboard, r.Payload()) {
		a.log.Debug("clipboard write failed")
		return fmt.Errorf("copy: clipboard unavailable")
	}
	ui.OK(a.Err, "copied subject + message")
	return nil
}

// -------------- example ----------------

func (a *App) exampleCmd() *cobra.Command {
	var (
		out    string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or write the example form",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" {
				if err := formfile.Save(out, model.Example()); err != nil {
					return err
				}
				ui.OK(a.Err, "wrote "+out)
				return nil
			}
			name := "example.yaml"
			if asJSON {
				name = "example.json"
			}
			b, err := formfile.Encode(name, model.Example())
			if err != nil {
				return err
			}
			_, err = a.Out.Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file (.json or .yaml) instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}

// -------------- prompt ----------------

func (a *App) promptCmd() *cobra.Command {
	var out outputOptions
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for each field line by line, then render",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			form, err := a.Prompter.Form(cmd.Context(), model.FormInput{YourName: a.cfg.Sender})
			if err != nil {
				return fmt.Errorf("prompt: %w", err)
			}
			fmt.Fprintln(a.Out)
			return a.emit(form, out)
		},
	}
	out.bind(cmd)
	return cmd
}

// -------------- serve ----------------

func (a *App) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer as a JSON API",
		Long: `Endpoints:
  GET  /health   liveness
  GET  /example  the example form
  POST /render   form JSON in, {"subject","body","payload"} out`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addr) == "" {
				addr = a.cfg.Server.Addr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui.OK(a.Err, "listening on http://"+ln.Addr().String())
			return server.Serve(ctx, ln, server.NewRouter(a.log), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// -------------- config ----------------

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal: %w", err)
			}
			fmt.Fprintf(a.Out, "# %s\n%s", a.cfgFile, b)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save one setting: sender, theme, log.level, log.file or server.addr",
		Example: `  coldpitch config set sender Alex
  coldpitch config set theme neon`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usagef("usage: coldpitch config set <key> <value>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfgFile == "" {
				return fmt.Errorf("config: no config path (use --config)")
			}
			// edit the file as written, without env overrides
			cfg, err := config.LoadFile(a.cfgFile)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			switch key {
			case "sender":
				cfg.Sender = value
			case "theme":
				cfg.Theme = value
			case "log.level":
				cfg.Log.Level = value
			case "log.file":
				cfg.Log.File = value
			case "server.addr":
				cfg.Server.Addr = value
			default:
				return usagef("unknown key %q", key)
			}
			if err := cfg.Validate(); err != nil {
				return usageError{err}
			}
			if err := cfg.Save(a.cfgFile); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			ui.OK(a.Err, "saved "+key)
			return nil
		},
	})
	return cmd
}
