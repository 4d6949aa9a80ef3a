package workflow

import (
	"log/slog"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/safenet-ai/safenet/internal/config"
	"github.com/safenet-ai/safenet/internal/prompts"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agent   gaconfig.AgentConfig
	Prompts prompts.System
	Logger  *slog.Logger
}

// Configured reports whether a model agent is available. When false,
// Execute skips the graph and classifies with rules directly.
func (rt *Runtime) Configured() bool {
	return config.AgentConfigured(&rt.Agent)
}
