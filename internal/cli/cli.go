// Package cli implements the popout command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jask/popoutview/app"
	"github.com/jask/popoutview/internal/config"
	"github.com/jask/popoutview/internal/feedback"
	"github.com/jask/popoutview/internal/logging"
)

const appName = "popout"

// RunFunc runs a bubbletea model until it exits.
type RunFunc func(ctx context.Context, model tea.Model) error

// CLI holds state shared by every command.
type CLI struct {
	out io.Writer
	run RunFunc

	configPath string
	logFile    string
	verbose    bool

	cfg      config.Config
	closeLog func() error
}

// New creates a CLI writing command output to out.
func New(out io.Writer) *CLI {
	return &CLI{out: out, run: runProgram}
}

// SetRunner replaces the program runner.
func (c *CLI) SetRunner(run RunFunc) {
	c.run = run
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Expand a compact header into a full-screen card",
		Long:          `popout runs a terminal demo of the popout view: compact headers that grow into a full-screen card and shrink back, dismissable by key, tap or drag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog == nil {
				return nil
			}
			return c.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context())
		},
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $POPOUT_CONFIG or ~/.config/popoutview/config.toml)")
	flags.StringVar(&c.logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.configCommand())
	return root
}

func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := logging.ParseLevel(cfg.Log.Level)
	if c.verbose {
		level = log.DebugLevel
	}
	path := cfg.Log.File
	if c.logFile != "" {
		path = c.logFile
	}
	logger, closeFn, err := logging.Open(path, level)
	if err != nil {
		return err
	}
	c.closeLog = closeFn

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

func (c *CLI) runDemo(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	model := app.New(app.Options{
		Tuning:   c.cfg.Tuning(),
		Bindings: c.cfg.KeyBindings(),
		Feedback: feedback.ByName(c.cfg.UI.Feedback, os.Stderr),
		Logger:   logger,
	})
	logger.Info("starting demo", "duration", c.cfg.Animation.Duration, "fps", c.cfg.Animation.FPS)
	return c.run(ctx, model)
}

func runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
