package backend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/statforge/statforge/internal/schema"
)

// AgentCmdConfig configures a local CLI agent invocation.
type AgentCmdConfig struct {
	// Command is the agent binary. Required.
	Command string
	// Args precede the prompt on the command line.
	Args []string
	// PromptFlag, when non-empty, is inserted before the prompt argument.
	PromptFlag string
	// Timeout bounds a single invocation. Zero means no timeout.
	Timeout time.Duration
}

// AgentCmd runs a local CLI agent and extracts the JSON object it prints to
// stdout. It implements repair.Backend.
type AgentCmd struct {
	cfg AgentCmdConfig
}

// NewAgentCmd builds a CLI agent repair backend. It verifies the binary is on
// PATH up front so a misconfigured command fails before the first attempt.
func NewAgentCmd(cfg AgentCmdConfig) (*AgentCmd, error) {
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, fmt.Errorf("agent command is required")
	}
	if _, err := exec.LookPath(cfg.Command); err != nil {
		return nil, fmt.Errorf("agent command %q not found: %w", cfg.Command, err)
	}
	return &AgentCmd{cfg: cfg}, nil
}

// Generate runs the agent with the prompt and parses its stdout.
func (a *AgentCmd) Generate(ctx context.Context, prompt string, _ *schema.Schema) (map[string]any, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	args := append([]string{}, a.cfg.Args...)
	if a.cfg.PromptFlag != "" {
		args = append(args, a.cfg.PromptFlag)
	}
	args = append(args, prompt)

	cmd := exec.CommandContext(ctx, a.cfg.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("executing %s: %w", a.cfg.Command, ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("executing %s: %w", a.cfg.Command, err)
		}
		return nil, fmt.Errorf("executing %s: %w: %s", a.cfg.Command, err, msg)
	}

	return ExtractObject(stdout.String())
}
