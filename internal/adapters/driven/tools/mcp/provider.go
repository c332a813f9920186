// Package mcp provides a tool provider backed by external MCP servers.
// Each configured server is launched as a subprocess and spoken to over
// stdio; the tools of all servers are aggregated into one flat set.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.ToolProvider = (*Provider)(nil)

// ServerConfig describes one MCP server to launch.
type ServerConfig struct {
	// Command is the executable to run.
	Command string

	// Args are passed to the command.
	Args []string
}

// Provider aggregates the tools of one or more MCP servers.
type Provider struct {
	sessions []*mcp.ClientSession
	tools    []domain.ToolSpec
	routes   map[string]*mcp.ClientSession
}

// NewProvider launches the configured servers and collects their tools.
// When two servers declare the same tool name, the first one wins.
func NewProvider(ctx context.Context, configs []ServerConfig) (*Provider, error) {
	p := &Provider{
		routes: make(map[string]*mcp.ClientSession),
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "docent",
		Version: "dev",
	}, nil)

	for _, cfg := range configs {
		transport := &mcp.CommandTransport{
			Command: exec.Command(cfg.Command, cfg.Args...), //nolint:gosec // command comes from user config
		}

		session, err := client.Connect(ctx, transport, nil)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("connecting to %s: %w", cfg.Command, err)
		}
		p.sessions = append(p.sessions, session)

		if err := p.collectTools(ctx, session); err != nil {
			p.Close()
			return nil, fmt.Errorf("listing tools of %s: %w", cfg.Command, err)
		}
	}

	return p, nil
}

// collectTools registers all tools of a session, skipping names already
// claimed by an earlier server.
func (p *Provider) collectTools(ctx context.Context, session *mcp.ClientSession) error {
	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return err
	}

	for _, tool := range result.Tools {
		if _, taken := p.routes[tool.Name]; taken {
			continue
		}

		schema := json.RawMessage(`{"type":"object"}`)
		if tool.InputSchema != nil {
			raw, err := json.Marshal(tool.InputSchema)
			if err != nil {
				return fmt.Errorf("encoding schema for %s: %w", tool.Name, err)
			}
			schema = raw
		}

		p.routes[tool.Name] = session
		p.tools = append(p.tools, domain.ToolSpec{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
		})
	}

	return nil
}

// Tools returns the declarations for every available tool.
func (p *Provider) Tools() []domain.ToolSpec {
	return p.tools
}

// Invoke calls the named tool and flattens its text content blocks into
// one result string.
func (p *Provider) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	session, ok := p.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: tool %q", domain.ErrNotFound, name)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("calling tool %s: %w", name, err)
	}

	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	output := strings.Join(parts, "\n")

	if result.IsError {
		return "", fmt.Errorf("tool %s failed: %s", name, output)
	}
	return output, nil
}

// Close shuts down every server session. All sessions are closed even
// if some fail; the first error is returned.
func (p *Provider) Close() error {
	var firstErr error
	for _, session := range p.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ParseServerConfigs turns "command arg1 arg2" strings into configs.
// Blank entries are skipped.
func ParseServerConfigs(specs []string) ([]ServerConfig, error) {
	configs := make([]ServerConfig, 0, len(specs))
	for _, spec := range specs {
		fields := strings.Fields(spec)
		if len(fields) == 0 {
			continue
		}
		configs = append(configs, ServerConfig{
			Command: fields[0],
			Args:    fields[1:],
		})
	}
	if len(configs) == 0 {
		return nil, errors.New("no server commands given")
	}
	return configs, nil
}
