package triage

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Generator is the text-generation capability consumed by the triage
// engine. Implementations must be safe for concurrent use; every pipeline
// stage that talks to the model goes through this interface.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type agentGenerator struct {
	cfg *gaconfig.AgentConfig
}

// NewAgentGenerator returns a Generator backed by a go-agents chat agent.
// A fresh agent is constructed per call; the underlying provider client
// carries no per-conversation state worth pooling.
func NewAgentGenerator(cfg *gaconfig.AgentConfig) Generator {
	return &agentGenerator{cfg: cfg}
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(g.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}
