package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/backend"
	"github.com/statforge/statforge/internal/config"
	"github.com/statforge/statforge/internal/repair"
	"github.com/statforge/statforge/internal/traits"
)

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, NewExitError(ExitInvalidArguments, err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

// traitProvider resolves the allowlist source: the --traits flag wins over
// the configured traits_file; neither set means no filtering.
func traitProvider(cmd *cobra.Command, cfg *config.Configuration) traits.Provider {
	path, _ := cmd.Flags().GetString("traits")
	if path == "" {
		path = cfg.TraitsFile
	}
	if path == "" {
		return nil
	}
	return traits.NewFileProvider(path)
}

func buildBackend(cfg *config.Configuration) (repair.Backend, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "openai":
		b, err := backend.NewOpenAI(backend.OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			APIKey:  cfg.OpenAIAPIKey,
		})
		if err != nil {
			return nil, NewExitError(ExitInvalidArguments, err)
		}
		return b, nil
	case "agent":
		b, err := backend.NewAgentCmd(backend.AgentCmdConfig{
			Command:    cfg.AgentCmd,
			Args:       cfg.AgentArgs,
			PromptFlag: cfg.AgentPromptFlag,
			Timeout:    time.Duration(cfg.AgentTimeout) * time.Second,
		})
		if err != nil {
			return nil, NewExitError(ExitInvalidArguments, err)
		}
		return b, nil
	default:
		return nil, NewExitError(ExitInvalidArguments,
			fmt.Errorf("unknown backend %q", cfg.Backend))
	}
}

func buildOrchestrator(cmd *cobra.Command, cfg *config.Configuration, b repair.Backend) *repair.Orchestrator {
	maxAttempts := cfg.MaxAttempts
	if flagAttempts, err := cmd.Flags().GetInt("max-attempts"); err == nil && flagAttempts > 0 {
		maxAttempts = flagAttempts
	}
	return &repair.Orchestrator{
		MaxAttempts:   maxAttempts,
		Backend:       b,
		Sink:          &repair.FileSink{Dir: cfg.SinkDir},
		ReportPayload: cfg.SinkPayload,
		ReportErrors:  cfg.SinkErrors,
		Traits:        traitProvider(cmd, cfg),
	}
}
