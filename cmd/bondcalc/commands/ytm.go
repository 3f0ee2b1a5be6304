package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type ytmCmd struct {
	configPath string
	bondName   string
	price      float64
	guessPct   float64
	logger     *zerolog.Logger
}

// NewYTMCmd solves for the yield implied by an observed market price.
func NewYTMCmd(logger *zerolog.Logger) *cobra.Command {
	yc := &ytmCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "ytm",
		Short: "Solve yield to maturity from a market price",
		RunE:  yc.run,
	}

	cmd.Flags().StringVar(&yc.configPath, "config", "", "Path to the bond definitions file")
	cmd.Flags().StringVar(&yc.bondName, "bond", "", "Name of the bond")
	cmd.Flags().Float64Var(&yc.price, "price", 0, "Observed market price")
	cmd.Flags().Float64Var(&yc.guessPct, "guess-pct", 5.0, "Initial yield guess in percent")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (yc *ytmCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(yc.configPath)
	if err != nil {
		return err
	}
	b, _, err := cfg.Bond(yc.bondName)
	if err != nil {
		return err
	}

	y, err := bond.SolveYieldFrom(b, yc.price, yc.guessPct/100)
	if err != nil {
		return fmt.Errorf("solve yield for %s: %w", yc.bondName, err)
	}

	yc.logger.Debug().Str("bond", yc.bondName).Float64("yield", y).Msg("solved")

	fmt.Printf("%s (%s)\n", yc.bondName, b.Kind)
	fmt.Printf("YTM at price %.4f: %.4f%%\n", yc.price, y*100)
	return nil
}
