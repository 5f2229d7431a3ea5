// Package cli implements the utf command-line tool.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// NewRootCmd creates and returns the root cobra command for the utf CLI.
// It sets up all subcommands, command groups, and the shared logger.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "utf",
		Short: "utf - inspect and build UTF asset containers",
		Long: `utf reads and writes UTF containers, the hash-indexed directory trees
used to package models, materials and textures into one file.

Use subcommands to perform different operations:
  - ls, info, dump: inspect a container
  - verify: check that containers decode and re-encode cleanly
  - pack, unpack: convert between containers and filesystem trees`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	groupInspect := "inspect"
	groupConvert := "convert"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspect,
		Title: "Inspection Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupConvert,
		Title: "Conversion Commands",
	})

	for _, cmd := range []*cobra.Command{newLsCmd(a), newInfoCmd(a), newDumpCmd(a), newVerifyCmd(a)} {
		cmd.GroupID = groupInspect
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newPackCmd(a), newUnpackCmd(a)} {
		cmd.GroupID = groupConvert
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}
