package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qc-scanner",
		Short: "Quality control scanner demo: simulated product inspection",
		Long: `qc-scanner simulates a quality control scanner. Each scan takes a frame
from the camera (or a photo sent to the bot), draws a random verdict and
stores the inspection record in memory.

Without a subcommand it runs the Telegram bot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBot,
	}

	root.AddCommand(newBotCmd())
	root.AddCommand(newSimulateCmd())
	return root
}
