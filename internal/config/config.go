package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fencebot/internal/codeblock"
	"fencebot/internal/detect"
	"fencebot/internal/utils"
)

type LLMConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Model   string `yaml:"model" json:"model"`
}

type Config struct {
	PythonAliases []string  `yaml:"python_aliases" json:"python_aliases"`
	REPLThreshold int       `yaml:"repl_threshold" json:"repl_threshold"`
	LLM           LLMConfig `yaml:"llm" json:"llm"`
	MetricsAddr   string    `yaml:"metrics_addr" json:"metrics_addr"`
}

// Default returns the advisor settings used when no config file is present.
func Default() *Config {
	return &Config{
		PythonAliases: append([]string(nil), codeblock.DefaultPythonAliases...),
		REPLThreshold: detect.DefaultREPLThreshold,
	}
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ValidateConfig(cfg *Config) error {
	hasErr := false
	if cfg.REPLThreshold < 1 {
		utils.Logger.Error().
			Int("repl_threshold", cfg.REPLThreshold).
			Msg("repl_threshold must be at least 1")
		hasErr = true
	}
	if len(cfg.PythonAliases) == 0 {
		utils.Logger.Error().Msg("python_aliases must not be empty")
		hasErr = true
	}
	for _, alias := range cfg.PythonAliases {
		if alias == "" || alias != strings.TrimSpace(alias) || strings.ContainsAny(alias, " \t\n") {
			utils.Logger.Error().
				Str("alias", alias).
				Msg("python alias must be a single non-empty word")
			hasErr = true
		}
	}
	if hasErr {
		return fmt.Errorf("invalid advisor config: see above errors")
	}
	return nil
}
