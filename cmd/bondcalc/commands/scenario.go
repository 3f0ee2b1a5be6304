package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondrisk/bond"
)

type scenarioCmd struct {
	configPath     string
	bondName       string
	yieldPct       float64
	shocksBP       string
	spreadShocksBP string
	logger         *zerolog.Logger
}

// NewScenarioCmd tabulates shocked prices: duration-only and
// convexity-adjusted approximations against exact revaluation. With
// --spread-shocks-bp it produces the joint rate/spread grid for corporates.
func NewScenarioCmd(logger *zerolog.Logger) *cobra.Command {
	sc := &scenarioCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Project prices under hypothetical rate shocks",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the bond definitions file")
	cmd.Flags().StringVar(&sc.bondName, "bond", "", "Name of the bond")
	cmd.Flags().Float64Var(&sc.yieldPct, "yield-pct", 0, "Base annual yield in percent")
	cmd.Flags().StringVar(&sc.shocksBP, "shocks-bp", "-300,-200,-100,100,200,300", "Comma-separated rate shocks in bp")
	cmd.Flags().StringVar(&sc.spreadShocksBP, "spread-shocks-bp", "", "Comma-separated spread shocks in bp (corporates; switches to the joint grid)")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("bond")
	_ = cmd.MarkFlagRequired("yield-pct")

	return cmd
}

func (sc *scenarioCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(sc.configPath)
	if err != nil {
		return err
	}
	b, def, err := cfg.Bond(sc.bondName)
	if err != nil {
		return err
	}

	shocks, err := parseBPList(sc.shocksBP)
	if err != nil {
		return fmt.Errorf("shocks-bp: %w", err)
	}
	spec := bond.YieldSpec{Rate: sc.yieldPct / 100, CreditSpread: def.SpreadFraction()}

	if sc.spreadShocksBP != "" {
		spreadShocks, err := parseBPList(sc.spreadShocksBP)
		if err != nil {
			return fmt.Errorf("spread-shocks-bp: %w", err)
		}
		return sc.runGrid(b, spec, shocks, spreadShocks)
	}

	rows, err := bond.RunScenario(b, spec, shocks)
	if err != nil {
		return fmt.Errorf("scenario for %s: %w", sc.bondName, err)
	}

	fmt.Printf("%s (%s), base yield %.4f%%\n", sc.bondName, b.Kind, sc.yieldPct)
	fmt.Printf("%10s | %12s | %14s | %12s | %9s\n", "Shock", "Linear", "With Convexity", "Exact", "% Change")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range rows {
		fmt.Printf("%+8.0fbp | %12.4f | %14.4f | %12.4f | %+8.2f%%\n",
			r.Shock*10000, r.LinearPrice, r.ConvexityPrice, r.ExactPrice, r.PercentChange*100)
	}
	return nil
}

func (sc *scenarioCmd) runGrid(b *bond.Bond, spec bond.YieldSpec, rateShocks, spreadShocks []float64) error {
	rows, err := bond.RunScenarioGrid(b, spec, rateShocks, spreadShocks)
	if err != nil {
		return fmt.Errorf("scenario grid for %s: %w", sc.bondName, err)
	}

	fmt.Printf("%s (%s), base yield %.4f%%, base spread %.0fbp\n",
		sc.bondName, b.Kind, sc.yieldPct, spec.CreditSpread*10000)
	fmt.Printf("%10s | %10s | %12s | %9s\n", "Rate", "Spread", "Exact", "% Change")
	fmt.Println(strings.Repeat("-", 52))
	for _, r := range rows {
		fmt.Printf("%+8.0fbp | %+8.0fbp | %12.4f | %+8.2f%%\n",
			r.RateShock*10000, r.SpreadShock*10000, r.ExactPrice, r.PercentChange*100)
	}
	return nil
}

func parseBPList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		bp, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad shock %q: %w", p, err)
		}
		out = append(out, bp/10000)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no shocks given")
	}
	return out, nil
}
