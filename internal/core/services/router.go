package services

import (
	"context"
	"fmt"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/logger"
)

// Ensure Router implements the interfaces.
var (
	_ driving.AgentService    = (*Router)(nil)
	_ driven.PromptStoreAware = (*Router)(nil)
)

// Classifier call tuning. Temperature 0 pins the category choice;
// the reply is a single token from a closed set, so a tiny budget
// suffices.
const (
	classifierTemperature = 0
	classifierMaxTokens   = 10
)

// defaultClassifierPrompt is the fallback classification prompt when
// no PromptStore is configured.
const defaultClassifierPrompt = `Classify the user query into exactly one category.

Categories:
- qa: factual questions that can be answered from documents
- summary: requests to summarise a document or topic
- comparison: requests to compare two or more subjects

Respond with ONLY the category name, nothing else.

Query: %s
Category:`

// defaultPersonas are the built-in agent personas, one per kind.
var defaultPersonas = map[domain.AgentKind]string{
	domain.AgentQA: `You are a research assistant answering questions about the user's documents.
Use the available tools to search the document index before answering.
Ground every claim in retrieved content and cite source files.`,

	domain.AgentSummary: `You are a research assistant summarising the user's documents.
Use the available tools to retrieve the relevant content first.
Produce a structured summary with the key points and cite source files.`,

	domain.AgentComparison: `You are a research assistant comparing subjects across the user's documents.
Use the available tools to retrieve content about each subject.
Contrast them point by point and cite source files for every claim.`,
}

// personaPromptNames maps agent kinds to their PromptStore entries.
var personaPromptNames = map[domain.AgentKind]string{
	domain.AgentQA:         driven.PromptAgentQA,
	domain.AgentSummary:    driven.PromptAgentSummary,
	domain.AgentComparison: driven.PromptAgentComparison,
}

// Router classifies a query into an agent kind and delegates to the
// matching agent. One agent per kind is constructed up front and
// reused across queries.
type Router struct {
	llm           driven.LLMService
	tools         driven.ToolProvider
	maxIterations int
	promptStore   driven.PromptStore
	agents        map[domain.AgentKind]*Agent
}

// NewRouter creates a router with one agent per kind, using the
// built-in personas. tools may be nil.
func NewRouter(llm driven.LLMService, tools driven.ToolProvider, maxIterations int) *Router {
	r := &Router{
		llm:           llm,
		tools:         tools,
		maxIterations: maxIterations,
	}
	r.buildAgents()
	return r
}

// SetPromptStore sets the prompt store for customisable personas and
// the classifier prompt, rebuilding the per-kind agents with the
// stored personas.
func (r *Router) SetPromptStore(store driven.PromptStore) {
	r.promptStore = store
	r.buildAgents()
}

// buildAgents constructs one agent per kind from the current personas.
func (r *Router) buildAgents() {
	agents := make(map[domain.AgentKind]*Agent, len(defaultPersonas))
	for _, kind := range domain.AllAgentKinds() {
		persona := r.loadPrompt(personaPromptNames[kind], defaultPersonas[kind])
		agents[kind] = NewAgent(r.llm, r.tools, persona, r.maxIterations)
	}
	r.agents = agents
}

// Run classifies the query and runs the matching agent.
func (r *Router) Run(ctx context.Context, query string) (string, error) {
	kind, err := r.Classify(ctx, query)
	if err != nil {
		return "", err
	}
	return r.agents[kind].Run(ctx, query)
}

// Classify selects the agent kind for a query with a single
// low-temperature completion call. Replies outside the known set fall
// back to the default kind.
func (r *Router) Classify(ctx context.Context, query string) (domain.AgentKind, error) {
	if r.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	prompt := fmt.Sprintf(r.loadPrompt(driven.PromptClassifier, defaultClassifierPrompt), query)
	completion, err := r.llm.Complete(ctx, []domain.ChatMessage{
		domain.UserMessage(prompt),
	}, nil, driven.CompleteOptions{
		Temperature: classifierTemperature,
		MaxTokens:   classifierMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("classify query: %w", err)
	}

	kind := domain.ParseAgentKind(completion.Content)
	logger.Debug("Classified %q as %s", query, kind)
	return kind, nil
}

// Agent returns the reusable agent for a kind, falling back to the
// default kind's agent for unknown kinds.
func (r *Router) Agent(kind domain.AgentKind) *Agent {
	if agent, ok := r.agents[kind]; ok {
		return agent
	}
	return r.agents[domain.DefaultAgentKind]
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (r *Router) loadPrompt(name, fallback string) string {
	if r.promptStore == nil {
		return fallback
	}
	prompt, err := r.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
