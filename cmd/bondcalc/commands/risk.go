package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type riskCmd struct {
	configPath string
	bondName   string
	yieldPct   float64
	logger     *zerolog.Logger
}

// NewRiskCmd computes duration and convexity at a given yield.
func NewRiskCmd(logger *zerolog.Logger) *cobra.Command {
	rc := &riskCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Compute modified duration and convexity",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the bond definitions file")
	cmd.Flags().StringVar(&rc.bondName, "bond", "", "Name of the bond")
	cmd.Flags().Float64Var(&rc.yieldPct, "yield-pct", 0, "Annual yield in percent")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("yield-pct")

	return cmd
}

func (rc *riskCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(rc.configPath)
	if err != nil {
		return err
	}
	b, def, err := cfg.Bond(rc.bondName)
	if err != nil {
		return err
	}

	spec := bond.YieldSpec{Rate: rc.yieldPct / 100, CreditSpread: def.SpreadFraction()}
	sens, err := bond.ComputeSensitivities(b, spec)
	if err != nil {
		return fmt.Errorf("sensitivities for %s: %w", rc.bondName, err)
	}

	fmt.Printf("%s (%s)\n", rc.bondName, b.Kind)
	fmt.Printf("Modified Duration: %.4f\n", sens.ModifiedDuration)
	fmt.Printf("Convexity:         %.4f\n", sens.Convexity)
	if b.Kind == bond.Corporate {
		fmt.Printf("Spread Duration:   %.4f\n", sens.CreditSpreadDuration)
	}
	return nil
}
