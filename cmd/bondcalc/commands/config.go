package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/meenmo/bondrisk/bond"
	"github.com/meenmo/bondrisk/marketdata"
)

// BondConfig is one named bond definition from the analysis config file.
// Rates are in human units (percent, bp); conversion to the engine's
// fraction units happens in Build.
type BondConfig struct {
	Name                string  `mapstructure:"name"`
	Kind                string  `mapstructure:"kind"`
	CouponPct           float64 `mapstructure:"coupon_pct"`
	FaceValue           float64 `mapstructure:"face_value"`
	Frequency           int     `mapstructure:"frequency"`
	MaturityYears       float64 `mapstructure:"maturity_years"`
	CreditSpreadBP      float64 `mapstructure:"credit_spread_bp"`
	BaseIndex           float64 `mapstructure:"base_index"`
	CurrentIndex        float64 `mapstructure:"current_index"`
	IndexLagMonths      int     `mapstructure:"index_lag_months"`
	AssumedInflationPct float64 `mapstructure:"assumed_inflation_pct"`
}

type curvePointConfig struct {
	TenorYears float64 `mapstructure:"tenor_years"`
	RatePct    float64 `mapstructure:"rate_pct"`
}

type analysisConfig struct {
	Bonds         []BondConfig       `mapstructure:"bonds"`
	TreasuryCurve []curvePointConfig `mapstructure:"treasury_curve"`
}

// Config is the parsed analysis configuration: named bonds plus an optional
// treasury curve for z-spread analysis.
type Config struct {
	bonds map[string]BondConfig
	curve marketdata.TreasuryCurve
}

// LoadConfig reads the analysis definitions from the given file (any format
// viper understands; YAML in the samples).
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw analysisConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	if len(raw.Bonds) == 0 {
		return nil, fmt.Errorf("config %s defines no bonds", path)
	}

	cfg := &Config{bonds: make(map[string]BondConfig, len(raw.Bonds))}
	for _, b := range raw.Bonds {
		if b.Name == "" {
			return nil, fmt.Errorf("config %s contains a bond without a name", path)
		}
		if _, dup := cfg.bonds[b.Name]; dup {
			return nil, fmt.Errorf("duplicate bond name %q", b.Name)
		}
		cfg.bonds[b.Name] = b
	}
	for _, p := range raw.TreasuryCurve {
		cfg.curve = append(cfg.curve, marketdata.CurvePoint{
			TenorYears: p.TenorYears,
			Rate:       p.RatePct / 100,
		})
	}
	return cfg, nil
}

// Bond builds the named bond from its definition.
func (c *Config) Bond(name string) (*bond.Bond, BondConfig, error) {
	def, ok := c.bonds[name]
	if !ok {
		names := make([]string, 0, len(c.bonds))
		for n := range c.bonds {
			names = append(names, n)
		}
		return nil, BondConfig{}, fmt.Errorf("unknown bond %q; defined: %s", name, strings.Join(names, ", "))
	}
	b, err := def.Build()
	if err != nil {
		return nil, BondConfig{}, fmt.Errorf("bond %q: %w", name, err)
	}
	return b, def, nil
}

// Curve returns the configured treasury curve, if any.
func (c *Config) Curve() marketdata.TreasuryCurve {
	return c.curve
}

// Build converts the definition to engine terms.
func (c BondConfig) Build() (*bond.Bond, error) {
	kind, err := parseKind(c.Kind)
	if err != nil {
		return nil, err
	}

	terms := bond.Terms{
		CouponRate: c.CouponPct / 100,
		FaceValue:  c.FaceValue,
		Frequency:  c.Frequency,
		Maturity:   c.MaturityYears,
		Kind:       kind,
	}
	if kind == bond.InflationLinked {
		terms.Indexation = bond.Indexation{
			Index: marketdata.IndexObservation{
				BaseLevel:    c.BaseIndex,
				CurrentLevel: c.CurrentIndex,
				LagMonths:    c.IndexLagMonths,
			},
			AssumedInflation: c.AssumedInflationPct / 100,
		}
	}
	return bond.New(terms)
}

// SpreadFraction returns the configured credit spread converted from bp.
func (c BondConfig) SpreadFraction() float64 {
	return c.CreditSpreadBP / 10000
}

func parseKind(s string) (bond.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nominal", "":
		return bond.Nominal, nil
	case "inflation_linked", "linker":
		return bond.InflationLinked, nil
	case "corporate":
		return bond.Corporate, nil
	default:
		return 0, fmt.Errorf("unknown bond kind %q (nominal, inflation_linked, corporate)", s)
	}
}
