package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"runway/internal/model"
)

// Config holds all runway configuration.
type Config struct {
	Company    CompanyConfig    `toml:"company"`
	Revenue    RevenueConfig    `toml:"revenue"`
	B2B        SegmentConfig    `toml:"b2b"`
	B2C        SegmentConfig    `toml:"b2c"`
	Projection ProjectionConfig `toml:"projection"`
	Scenarios  []ScenarioConfig `toml:"scenarios,omitempty"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// CompanyConfig holds the current-month financial position.
type CompanyConfig struct {
	CashBalance     float64 `toml:"cash_balance"`
	MonthlyExpenses float64 `toml:"monthly_expenses"`
}

// RevenueConfig holds revenue figures and the revenue growth model.
type RevenueConfig struct {
	Current        float64 `toml:"current"`
	Previous       float64 `toml:"previous"`
	Model          string  `toml:"model"`
	LinearPct      float64 `toml:"linear_pct"`
	ExponentialPct float64 `toml:"exponential_pct"`
}

// SegmentConfig holds one customer segment and its growth model.
type SegmentConfig struct {
	Total          int     `toml:"total"`
	New            int     `toml:"new"`
	CAC            float64 `toml:"cac"`
	ChurnRate      float64 `toml:"churn_rate"`
	Model          string  `toml:"model"`
	LinearPct      float64 `toml:"linear_pct"`
	ExponentialPct float64 `toml:"exponential_pct"`
}

// ProjectionConfig holds the default projection horizon.
type ProjectionConfig struct {
	Months int `toml:"months"`
}

// ScenarioConfig overrides the built-in scenario set.
type ScenarioConfig struct {
	Name               string  `toml:"name"`
	RevenueMultiplier  float64 `toml:"revenue_multiplier"`
	ExpenseMultiplier  float64 `toml:"expense_multiplier"`
	CustomerMultiplier float64 `toml:"customer_multiplier"`
	Color              string  `toml:"color,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration: an early-stage company
// with a mixed B2B/B2C base and a flat growth assumption.
func DefaultConfig() Config {
	return Config{
		Company: CompanyConfig{
			CashBalance:     100000,
			MonthlyExpenses: 20000,
		},
		Revenue: RevenueConfig{
			Current:        10000,
			Previous:       8000,
			Model:          string(model.GrowthFixed),
			LinearPct:      10,
			ExponentialPct: 10,
		},
		B2B: SegmentConfig{
			Total:     20,
			New:       5,
			CAC:       500,
			ChurnRate: 2,
			Model:     string(model.GrowthFixed),
		},
		B2C: SegmentConfig{
			Total:     80,
			New:       15,
			CAC:       50,
			ChurnRate: 5,
			Model:     string(model.GrowthFixed),
		},
		Projection: ProjectionConfig{Months: 12},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// Inputs assembles the engine inputs from the configured values.
func (c Config) Inputs() model.Inputs {
	return model.Inputs{
		CashBalance:     c.Company.CashBalance,
		MonthlyRevenue:  c.Revenue.Current,
		MonthlyExpenses: c.Company.MonthlyExpenses,
		B2B:             c.B2B.Segment("B2B"),
		B2C:             c.B2C.Segment("B2C"),
	}
}

// Segment converts the configured segment to its model form.
func (s SegmentConfig) Segment(label string) model.Segment {
	return model.Segment{
		Label:     label,
		Total:     s.Total,
		New:       s.New,
		CAC:       s.CAC,
		ChurnRate: s.ChurnRate,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
