package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type breakevenCmd struct {
	configPath      string
	bondName        string
	realYieldPct    float64
	nominalYieldPct float64
	nominalPrice    float64
	logger          *zerolog.Logger
}

// NewBreakevenCmd computes breakeven inflation for an inflation-linked bond:
// the simple yield difference, and when a comparator nominal price is given,
// the root-found inflation path equalizing the two values.
func NewBreakevenCmd(logger *zerolog.Logger) *cobra.Command {
	bc := &breakevenCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Compute breakeven inflation vs a nominal comparator",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.configPath, "config", "", "Path to the bond definitions file")
	cmd.Flags().StringVar(&bc.bondName, "bond", "", "Name of the inflation-linked bond")
	cmd.Flags().Float64Var(&bc.realYieldPct, "real-yield-pct", 0, "Real yield in percent")
	cmd.Flags().Float64Var(&bc.nominalYieldPct, "nominal-yield-pct", 0, "Comparable-maturity nominal yield in percent")
	cmd.Flags().Float64Var(&bc.nominalPrice, "nominal-price", 0, "Comparator nominal bond price (enables the root-found breakeven)")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("real-yield-pct")
	_ = cmd.MarkFlagRequired("nominal-yield-pct")

	return cmd
}

func (bc *breakevenCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(bc.configPath)
	if err != nil {
		return err
	}
	b, _, err := cfg.Bond(bc.bondName)
	if err != nil {
		return err
	}

	realYield := bc.realYieldPct / 100
	nominalYield := bc.nominalYieldPct / 100

	simple := bond.BreakevenSimple(nominalYield, realYield)
	fmt.Printf("%s (%s)\n", bc.bondName, b.Kind)
	fmt.Printf("Breakeven (nominal - real): %.4f%%\n", simple*100)
	fmt.Printf("Fisher nominal at breakeven: %.4f%%\n", bond.RealToNominal(realYield, simple)*100)

	if bc.nominalPrice > 0 {
		be, err := bond.BreakevenInflation(b, bond.YieldSpec{Rate: realYield}, bc.nominalPrice)
		if err != nil {
			return fmt.Errorf("breakeven root-find for %s: %w", bc.bondName, err)
		}
		fmt.Printf("Breakeven (root-find vs price %.4f): %.4f%%\n", bc.nominalPrice, be*100)
	}
	return nil
}
