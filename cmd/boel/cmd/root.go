package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/boel-dev/boel/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	stderr io.Writer
}

// NewRootCmd builds the boel command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop(), stderr: os.Stderr}

	rootCmd := &cobra.Command{
		Use:   "boel",
		Short: "Read and generate raw binary float arrays",
		Long: `boel reads headerless binary files of IEEE-754 values, reinterprets them
with a chosen byte order and element width, and shapes them into 1D or 2D
arrays. It can also generate such files from uniform or normal distributions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			a.cfg = config.New()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := a.cfg.LoadFromFile(path); err != nil {
					return err
				}
			}
			if err := a.cfg.BindFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			a.logger = a.cfg.CreateLogger(a.stderr)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "warn", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newReadCmd(a),
		newGenerateCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
