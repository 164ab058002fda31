package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/TheViking816/DescansosCPE/pkg/core/matching"
)

// BlackoutPeriod declares facility peak days, as a recurrence rule, on
// which rest days cannot be surrendered.
type BlackoutPeriod struct {
	RRule       string `yaml:"rrule" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// ValidationPolicy configures the offer eligibility rules. The
// collective-agreement checks can be switched off for deployments that
// defer quota enforcement to an external authority.
type ValidationPolicy struct {
	EnforceQuotaRules           *bool `yaml:"enforceQuotaRules,omitempty"`
	BaseMonthlyRestDays         *int  `yaml:"baseMonthlyRestDays,omitempty" validate:"omitempty,min=0"`
	MinMonthlyRestDays          *int  `yaml:"minMonthlyRestDays,omitempty" validate:"omitempty,min=0"`
	MaxMonthlyRestDays          *int  `yaml:"maxMonthlyRestDays,omitempty" validate:"omitempty,min=0"`
	MaxConsecutiveSurrenderDays *int  `yaml:"maxConsecutiveSurrenderDays,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL         string           `yaml:"databaseURL" validate:"required"`
	PollIntervalSeconds int              `yaml:"pollIntervalSeconds,omitempty" validate:"omitempty,min=1"`
	Validation          ValidationPolicy `yaml:"validation,omitempty"`
	BlackoutPeriods     []BlackoutPeriod `yaml:"blackoutPeriods,omitempty" validate:"dive"`
	ExcludedBadges      []string         `yaml:"excludedBadges,omitempty"`
	UsagePingMinutes    int              `yaml:"usagePingMinutes,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from descansos_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for a specific environment,
// looking for descansos_config.<env>.yaml first and falling back to
// descansos_config.yaml.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, blackout := range cfg.BlackoutPeriods {
		if _, err := rrule.StrToRRule(blackout.RRule); err != nil {
			return fmt.Errorf("invalid rrule in blackoutPeriods[%d]: %w", i, err)
		}
	}

	if min, max := cfg.Validation.MinMonthlyRestDays, cfg.Validation.MaxMonthlyRestDays; min != nil && max != nil && *min > *max {
		return fmt.Errorf("config validation failed: minMonthlyRestDays (%d) exceeds maxMonthlyRestDays (%d)", *min, *max)
	}

	return nil
}

// Policy builds the validator policy from the configuration, starting
// from the full default rule set and applying the configured overrides.
// Call only on a validated config; rrule syntax errors surface in
// Validate.
func (cfg *Config) Policy() (matching.Policy, error) {
	policy := matching.DefaultPolicy()

	v := cfg.Validation
	if v.EnforceQuotaRules != nil {
		policy.EnforceQuotaRules = *v.EnforceQuotaRules
	}
	if v.BaseMonthlyRestDays != nil {
		policy.BaseMonthlyRestDays = *v.BaseMonthlyRestDays
	}
	if v.MinMonthlyRestDays != nil {
		policy.MinMonthlyRestDays = *v.MinMonthlyRestDays
	}
	if v.MaxMonthlyRestDays != nil {
		policy.MaxMonthlyRestDays = *v.MaxMonthlyRestDays
	}
	if v.MaxConsecutiveSurrenderDays != nil {
		policy.MaxConsecutiveSurrenderDays = *v.MaxConsecutiveSurrenderDays
	}

	for i, blackout := range cfg.BlackoutPeriods {
		rule, err := rrule.StrToRRule(blackout.RRule)
		if err != nil {
			return matching.Policy{}, fmt.Errorf("invalid rrule in blackoutPeriods[%d]: %w", i, err)
		}
		policy.Blackouts = append(policy.Blackouts, matching.Blackout{
			Rule:        rule,
			Description: blackout.Description,
		})
	}

	return policy, nil
}

// PollInterval returns the board refresh interval, defaulting to 5s.
func (cfg *Config) PollInterval() time.Duration {
	if cfg.PollIntervalSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(cfg.PollIntervalSeconds) * time.Second
}

// UsagePingInterval returns the minimum gap between identical usage
// pings, defaulting to 5 minutes.
func (cfg *Config) UsagePingInterval() time.Duration {
	if cfg.UsagePingMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(cfg.UsagePingMinutes) * time.Minute
}

// findConfigFile searches for the config file in the current directory
// and the home directory, preferring the env-specific name.
func findConfigFile(env string) (string, error) {
	names := []string{"descansos_config.yaml"}
	if env != "" {
		names = []string{fmt.Sprintf("descansos_config.%s.yaml", env), "descansos_config.yaml"}
	}

	homeDir, homeErr := os.UserHomeDir()

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		if homeErr == nil {
			homePath := filepath.Join(homeDir, name)
			if _, err := os.Stat(homePath); err == nil {
				return homePath, nil
			}
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
