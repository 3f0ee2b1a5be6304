package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type zspreadCmd struct {
	configPath   string
	bondName     string
	price        float64
	recoveryRate float64
	logger       *zerolog.Logger
}

// NewZSpreadCmd solves the z-spread of a bond over the configured treasury
// curve and the default probability it implies.
func NewZSpreadCmd(logger *zerolog.Logger) *cobra.Command {
	zc := &zspreadCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "zspread",
		Short: "Solve the z-spread over the configured treasury curve",
		RunE:  zc.run,
	}

	cmd.Flags().StringVar(&zc.configPath, "config", "", "Path to the bond definitions file (must include treasury_curve)")
	cmd.Flags().StringVar(&zc.bondName, "bond", "", "Name of the bond")
	cmd.Flags().Float64Var(&zc.price, "price", 0, "Observed market price")
	cmd.Flags().Float64Var(&zc.recoveryRate, "recovery-rate", 0.4, "Assumed recovery rate for the implied default probability")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (zc *zspreadCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(zc.configPath)
	if err != nil {
		return err
	}
	b, _, err := cfg.Bond(zc.bondName)
	if err != nil {
		return err
	}

	z, err := bond.ZSpread(b, zc.price, cfg.Curve())
	if err != nil {
		return fmt.Errorf("z-spread for %s: %w", zc.bondName, err)
	}

	fmt.Printf("%s (%s)\n", zc.bondName, b.Kind)
	fmt.Printf("Z-spread at price %.4f: %.1f bp\n", zc.price, z*10000)

	if z >= 0 {
		pd, err := bond.DefaultProbability(z, zc.recoveryRate)
		if err != nil {
			return fmt.Errorf("default probability for %s: %w", zc.bondName, err)
		}
		fmt.Printf("Implied annual default probability (RR %.0f%%): %.4f%%\n", zc.recoveryRate*100, pd*100)
	}
	return nil
}
