package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/logger"
)

// Ensure Agent implements the interface.
var _ driving.AgentService = (*Agent)(nil)

// MaxIterationsNotice is returned when the iteration budget runs out
// before the model produces a tool-call-free response. This is a
// normal outcome, not an error.
const MaxIterationsNotice = "Max iterations reached. The agent could not produce a final answer."

// Agent drives a tool-calling conversation loop. Each run seeds a
// fresh conversation with the agent's persona, then alternates model
// turns and tool dispatches until the model answers without requesting
// tools or the iteration budget is exhausted.
type Agent struct {
	llm           driven.LLMService
	tools         driven.ToolProvider
	persona       string
	maxIterations int
}

// NewAgent creates an agent with the given persona. tools may be nil,
// in which case the model is offered no tools. A non-positive
// maxIterations falls back to the default.
func NewAgent(llm driven.LLMService, tools driven.ToolProvider, persona string, maxIterations int) *Agent {
	if maxIterations <= 0 {
		maxIterations = domain.DefaultMaxIterations
	}
	return &Agent{
		llm:           llm,
		tools:         tools,
		persona:       persona,
		maxIterations: maxIterations,
	}
}

// Run answers the query through the tool-calling loop. The
// conversation is owned by this call and discarded on return.
func (a *Agent) Run(ctx context.Context, query string) (string, error) {
	answer, _, err := a.run(ctx, query)
	return answer, err
}

// run is the loop implementation. It returns the final conversation
// alongside the answer so tests can assert on message ordering.
func (a *Agent) run(ctx context.Context, query string) (string, []domain.ChatMessage, error) {
	if a.llm == nil {
		return "", nil, domain.ErrLLMUnavailable
	}

	specs := a.toolSpecs()
	logger.Section("Agent Run")
	logger.Debug("Query: %q, tools: %d, budget: %d iterations", query, len(specs), a.maxIterations)

	messages := []domain.ChatMessage{
		domain.SystemMessage(a.persona),
		domain.UserMessage(query),
	}

	for i := 0; i < a.maxIterations; i++ {
		completion, err := a.llm.Complete(ctx, messages, specs, driven.CompleteOptions{})
		if err != nil {
			return "", messages, fmt.Errorf("completion turn %d: %w", i+1, err)
		}

		if !completion.HasToolCalls() {
			logger.Debug("Final answer after %d iterations", i+1)
			return completion.Content, messages, nil
		}

		logger.Debug("Iteration %d: %d tool calls requested", i+1, len(completion.ToolCalls))
		messages = append(messages, domain.AssistantMessage(completion.Content, completion.ToolCalls))

		// Every call gets exactly one tool-role reply, in call order,
		// before the next completion request.
		for _, call := range completion.ToolCalls {
			messages = append(messages, domain.ToolMessage(call.ID, a.dispatch(ctx, call)))
		}
	}

	logger.Debug("Iteration budget exhausted")
	return MaxIterationsNotice, messages, nil
}

// dispatch invokes one tool call and renders its outcome as the
// tool-role message content. Tool-level failures are absorbed here so
// the model can see them and self-correct; they never abort the loop.
func (a *Agent) dispatch(ctx context.Context, call domain.ToolCall) string {
	var args map[string]any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			logger.Warn("Tool %q: malformed arguments: %v", call.Name, err)
			return fmt.Sprintf("Tool error: invalid tool arguments: %v", err)
		}
	}

	if a.tools == nil {
		return fmt.Sprintf("Tool '%s' not found", call.Name)
	}

	result, err := a.tools.Invoke(ctx, call.Name, args)
	if err != nil {
		if isUnknownTool(err) {
			logger.Warn("Tool %q not found", call.Name)
			return fmt.Sprintf("Tool '%s' not found", call.Name)
		}
		logger.Warn("Tool %q failed: %v", call.Name, err)
		return fmt.Sprintf("Tool error: %v", err)
	}

	logger.Debug("Tool %q returned %d bytes", call.Name, len(result))
	return result
}

// toolSpecs returns the declarations offered to the model.
func (a *Agent) toolSpecs() []domain.ToolSpec {
	if a.tools == nil {
		return nil
	}
	return a.tools.Tools()
}

// isUnknownTool reports whether the invocation failed because no tool
// with that name exists.
func isUnknownTool(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
