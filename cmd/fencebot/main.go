package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fencebot/internal/codeblock"
	"fencebot/internal/config"
	"fencebot/internal/detect"
	"fencebot/internal/llm"
	"fencebot/internal/metrics"
	"fencebot/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "fencebot",
	Short: "Markdown code block formatting advisor",
	Long:  `fencebot inspects chat messages for malformed Markdown code blocks and composes remediation instructions`,
}

var configPath string

func main() {
	_ = godotenv.Load() // Loads .env file if present

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the advisor config file")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadAdvisor wires the advisor from config file, flags and environment.
func loadAdvisor() *codeblock.Advisor {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Logger.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
		}
		cfg = config.Default()
	}
	if err := config.ValidateConfig(cfg); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Refusing to start with an invalid config")
	}

	if cfg.MetricsAddr != "" {
		metrics.StartMetricsServer(cfg.MetricsAddr)
	}

	var detector codeblock.Detector = detect.NewHeuristic(cfg.REPLThreshold)
	if cfg.LLM.Enabled {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			utils.Logger.Warn().Msg("llm.enabled is set but OPENAI_API_KEY is empty; falling back to the heuristic detector")
		} else {
			detector = llm.NewClassifier(apiKey, cfg.LLM.Model)
		}
	}

	return codeblock.NewAdvisor(detector, cfg.PythonAliases)
}
