package main

import (
	"github.com/on-the-ground/effect_drive_go/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand creates the root command of effectdemo.
func NewRootCommand(settings config.Settings, logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "effectdemo",
		Short:         "Drive effectful computations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewDivideCommand(settings, logger))
	return cmd
}
