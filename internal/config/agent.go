package config

import (
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "SAFENET_AGENT_NAME"
	EnvAgentProviderName = "SAFENET_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "SAFENET_AGENT_BASE_URL"
	EnvAgentToken        = "SAFENET_AGENT_TOKEN"
	EnvAgentDeployment   = "SAFENET_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "SAFENET_AGENT_API_VERSION"
	EnvAgentAuthType     = "SAFENET_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "SAFENET_AGENT_MODEL_NAME"
)

// AgentConfig mirrors the go-agents agent settings in TOML form.
// The go-agents config types carry JSON tags only, so the TOML layer
// keeps its own shape and converts with ToAgent.
//
// The agent is optional: when no provider base URL or model name is set,
// classification falls back to deterministic rules.
type AgentConfig struct {
	Name     string              `toml:"name"`
	Provider AgentProviderConfig `toml:"provider"`
	Model    AgentModelConfig    `toml:"model"`
}

// AgentProviderConfig holds the model provider endpoint settings.
type AgentProviderConfig struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

// AgentModelConfig names the model served by the provider.
type AgentModelConfig struct {
	Name string `toml:"name"`
}

// Finalize applies environment variable overrides. Defaults come from
// go-agents DefaultAgentConfig during ToAgent, so an empty section is valid.
func (c *AgentConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Provider.Name != "" {
		c.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		c.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		if c.Provider.Options == nil {
			c.Provider.Options = make(map[string]any)
		}
		c.Provider.Options[k] = v
	}
	if overlay.Model.Name != "" {
		c.Model.Name = overlay.Model.Name
	}
}

// Configured reports whether both a provider base URL and a model name are set.
func (c *AgentConfig) Configured() bool {
	return c.Provider.BaseURL != "" && c.Model.Name != ""
}

// ToAgent converts to the go-agents configuration type, layering these
// settings over go-agents DefaultAgentConfig.
func (c *AgentConfig) ToAgent() gaconfig.AgentConfig {
	base := gaconfig.DefaultAgentConfig()
	overlay := gaconfig.AgentConfig{
		Name: c.Name,
		Provider: &gaconfig.ProviderConfig{
			Name:    c.Provider.Name,
			BaseURL: c.Provider.BaseURL,
			Options: c.Provider.Options,
		},
		Model: &gaconfig.ModelConfig{
			Name: c.Model.Name,
		},
	}
	base.Merge(&overlay)
	return base
}

// AgentConfigured reports whether a go-agents config names both a provider
// base URL and a model.
func AgentConfigured(c *gaconfig.AgentConfig) bool {
	return c.Provider != nil &&
		c.Provider.BaseURL != "" &&
		c.Model != nil &&
		c.Model.Name != ""
}

func (c *AgentConfig) loadEnv() {
	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			if c.Provider.Options == nil {
				c.Provider.Options = make(map[string]any)
			}
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}
