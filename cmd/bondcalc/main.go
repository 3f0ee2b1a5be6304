package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/cmd/bondcalc/commands"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("BONDCALC_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	rootCmd := &cobra.Command{
		Use:   "bondcalc",
		Short: "Bond valuation and rate-risk calculator",
	}

	rootCmd.AddCommand(commands.NewPriceCmd(&logger))
	rootCmd.AddCommand(commands.NewYTMCmd(&logger))
	rootCmd.AddCommand(commands.NewRiskCmd(&logger))
	rootCmd.AddCommand(commands.NewScenarioCmd(&logger))
	rootCmd.AddCommand(commands.NewBreakevenCmd(&logger))
	rootCmd.AddCommand(commands.NewZSpreadCmd(&logger))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
