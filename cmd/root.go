package cmd

import (
	"fmt"
	"os"

	"eox-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "eox-sync",
	Short: "Cisco EoX Lifecycle Synchronization Service",
	Long: `eox-sync keeps the product catalog in line with the Cisco End-of-Life
(EoX) API. It runs scheduled and on-demand synchronizations and reports every
run as an operator notification.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
