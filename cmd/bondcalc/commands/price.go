package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type priceCmd struct {
	configPath string
	bondName   string
	yieldPct   float64
	spreadBP   float64
	logger     *zerolog.Logger
}

// NewPriceCmd prices a configured bond at a given yield.
func NewPriceCmd(logger *zerolog.Logger) *cobra.Command {
	pc := &priceCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a bond at a given yield",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Path to the bond definitions file")
	cmd.Flags().StringVar(&pc.bondName, "bond", "", "Name of the bond to price")
	cmd.Flags().Float64Var(&pc.yieldPct, "yield-pct", 0, "Annual yield in percent (real yield for linkers, base rate for corporates)")
	cmd.Flags().Float64Var(&pc.spreadBP, "spread-bp", -1, "Credit spread override in bp (corporates; defaults to the configured spread)")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("yield-pct")

	return cmd
}

func (pc *priceCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(pc.configPath)
	if err != nil {
		return err
	}
	b, def, err := cfg.Bond(pc.bondName)
	if err != nil {
		return err
	}

	spec := bond.YieldSpec{Rate: pc.yieldPct / 100, CreditSpread: def.SpreadFraction()}
	if pc.spreadBP >= 0 {
		spec.CreditSpread = pc.spreadBP / 10000
	}

	pc.logger.Debug().
		Str("bond", pc.bondName).
		Str("kind", b.Kind.String()).
		Float64("rate", spec.Rate).
		Float64("spread", spec.CreditSpread).
		Msg("pricing")

	pv, err := bond.Price(b, spec)
	if err != nil {
		return fmt.Errorf("price %s: %w", pc.bondName, err)
	}

	fmt.Printf("%s (%s)\n", pc.bondName, b.Kind)
	fmt.Printf("Price: %.4f\n", pv)
	return nil
}
