package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policies names the active implementation for each of the four pluggable
// axes. All four are required; there are no defaults. A missing or unknown
// selection is a fatal startup error, never a runtime one.
type Policies struct {
	Partner    string `yaml:"partner"`
	ChildCount string `yaml:"childCount"`
	Age        string `yaml:"age"`
	Cleanup    string `yaml:"cleanup"`
}

// Server captures process-level configuration.
type Server struct {
	Addr     string   `yaml:"addr"`
	Policies Policies `yaml:"policies"`
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	Server Server `yaml:"server"`
}

// Load builds the configuration. An optional YAML file named by KINSHIP_CONFIG
// is read first; environment variables override it. Load fails when any policy
// axis is left unset so main can refuse to start.
func Load() (Server, error) {
	cfg := Server{Addr: ":8080"}

	if path := os.Getenv("KINSHIP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Server{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if fc.Server.Addr != "" {
			cfg.Addr = fc.Server.Addr
		}
		cfg.Policies = fc.Server.Policies
	}

	overrideFromEnv(&cfg.Addr, "KINSHIP_ADDR")
	overrideFromEnv(&cfg.Policies.Partner, "KINSHIP_PARTNER_POLICY")
	overrideFromEnv(&cfg.Policies.ChildCount, "KINSHIP_CHILDCOUNT_POLICY")
	overrideFromEnv(&cfg.Policies.Age, "KINSHIP_AGE_POLICY")
	overrideFromEnv(&cfg.Policies.Cleanup, "KINSHIP_CLEANUP_POLICY")

	if err := cfg.Policies.validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (p Policies) validate() error {
	missing := make([]string, 0, 4)
	if p.Partner == "" {
		missing = append(missing, "partner (KINSHIP_PARTNER_POLICY)")
	}
	if p.ChildCount == "" {
		missing = append(missing, "childCount (KINSHIP_CHILDCOUNT_POLICY)")
	}
	if p.Age == "" {
		missing = append(missing, "age (KINSHIP_AGE_POLICY)")
	}
	if p.Cleanup == "" {
		missing = append(missing, "cleanup (KINSHIP_CLEANUP_POLICY)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("policy selection missing: %v", missing)
	}
	return nil
}
