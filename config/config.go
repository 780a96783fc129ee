// Package config loads the selector and runtime settings for a query
package config

import (
	"errors"
	"fmt"
	"strings"

	"procinfo/process"
	"procinfo/report"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// UnsetPID is the PID of a Config whose pid key was not supplied.
// Whether a pid was given is tracked by PIDSet, so -1 typed by a user is
// still rejected as an invalid selector.
const UnsetPID = -1

var (
	// ErrSelectorConflict is returned when both a pid and a name are configured.
	ErrSelectorConflict = errors.New("either pid or name should be provided, not both")

	// ErrSelectorMissing is returned when neither a pid nor a name is configured.
	ErrSelectorMissing = errors.New("either pid or name should be provided")
)

type Config struct {
	PID         int    `mapstructure:"pid"`
	PIDSet      bool   `mapstructure:"-"`
	Name        string `mapstructure:"name"`
	ProcRoot    string `mapstructure:"proc_root"`
	Backend     string `mapstructure:"backend"`
	ReportLimit int    `mapstructure:"report_limit"`
	Verbose     bool   `mapstructure:"verbose"`
}

func Default() *Config {
	return &Config{
		PID:         UnsetPID,
		ProcRoot:    report.DefaultRoot,
		Backend:     "procfs",
		ReportLimit: report.DefaultLimit,
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"pid":          "pid",
	"name":         "name",
	"proc-root":    "proc_root",
	"backend":      "backend",
	"report-limit": "report_limit",
	"verbose":      "verbose",
}

// Load merges, from lowest to highest priority, the defaults, the config
// file, PROCINFO_* environment variables and the flags that were set.
// With an empty cfgFile, procinfo.yaml is looked up in /etc/procinfo and
// the working directory; a missing file is not an error.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// pid has no default so IsSet tells whether it was supplied
	def := Default()
	v.SetDefault("name", def.Name)
	v.SetDefault("proc_root", def.ProcRoot)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("report_limit", def.ReportLimit)
	v.SetDefault("verbose", def.Verbose)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("procinfo")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/procinfo")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PROCINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("pid"); err != nil {
		return nil, fmt.Errorf("failed to bind env pid: %w", err)
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			f := flags.Lookup(flagName)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.PIDSet = v.IsSet("pid")
	if !cfg.PIDSet {
		cfg.PID = UnsetPID
	}

	return cfg, nil
}

// Selector builds the process selector. Exactly one of pid and name must be set.
func (c *Config) Selector() (process.Selector, error) {
	hasPID := c.PIDSet
	hasName := c.Name != ""

	switch {
	case hasPID && hasName:
		return process.Selector{}, ErrSelectorConflict
	case hasPID:
		return process.ByPID(process.ProcessID(c.PID))
	case hasName:
		return process.ByName(c.Name)
	default:
		return process.Selector{}, ErrSelectorMissing
	}
}
