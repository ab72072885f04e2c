package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"todolist/config"
	"todolist/helper"
	"todolist/shared/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the todolist PostgreSQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.InitLogger()
			logger.SetLogLevel(config.Get())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Up(config.Get())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Down(config.Get())
			},
		},
		&cobra.Command{
			Use:   "step N",
			Short: "Apply N migrations, or roll back when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q: %w", args[0], err)
				}

				return helper.Step(config.Get(), steps)
			},
		},
		&cobra.Command{
			Use:   "drop",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return helper.Drop(config.Get())
			},
		},
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
