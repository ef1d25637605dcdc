package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/popoutview/internal/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeConfig(cmd, config.Path(c.configPath), c.cfg)
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(c.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func writeConfig(cmd *cobra.Command, path string, cfg config.Config) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# %s\n", path)
	fmt.Fprintf(w, "animation.duration = %s\n", cfg.Animation.Duration)
	fmt.Fprintf(w, "animation.fps = %d\n", cfg.Animation.FPS)
	fmt.Fprintf(w, "gesture.damping = %g\n", cfg.Gesture.Damping)
	fmt.Fprintf(w, "gesture.velocity_divisor = %g\n", cfg.Gesture.VelocityDivisor)
	fmt.Fprintf(w, "gesture.commit_ratio = %g\n", cfg.Gesture.CommitRatio)
	fmt.Fprintf(w, "layout.margin = %d\n", cfg.Layout.Margin)
	fmt.Fprintf(w, "ui.feedback = %s\n", cfg.UI.Feedback)
	fmt.Fprintf(w, "log.level = %s\n", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Fprintf(w, "log.file = %s\n", cfg.Log.File)
	}
	for _, b := range cfg.KeyBindings() {
		fmt.Fprintf(w, "keys.%s = %s\n", b.Action, strings.Join(b.Keys, ", "))
	}
}
