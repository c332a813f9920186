package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyEmbedProvider  = "embedding.provider"
	keyEmbedModel     = "embedding.model"
	keyEmbedBaseURL   = "embedding.base_url"
	keyEmbedAPIKey    = "embedding.api_key"
	keyEmbedBatchSize = "embedding.batch_size"
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyChunkSize      = "chunking.size"
	keyChunkOverlap   = "chunking.overlap"
	keyTopK           = "index.top_k"
	keyMaxIterations  = "agent.max_iterations"
)

// Environment variables that override stored settings. API keys are
// usually supplied this way so they never land in the config file.
const (
	envOpenAIAPIKey    = "OPENAI_API_KEY"
	envAnthropicAPIKey = "ANTHROPIC_API_KEY"
	envDataDir         = "DOCENT_DATA_DIR"
)

// SettingsService manages application settings. Settings are read from
// the config store with environment overrides applied on top; the
// assembled struct is passed explicitly to component constructors.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a settings service. getenv may be nil to
// disable environment overrides (useful in tests).
func NewSettingsService(configStore driven.ConfigStore, getenv func(string) string) *SettingsService {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &SettingsService{
		configStore: configStore,
		getenv:      getenv,
	}
}

// Get retrieves current application settings: defaults, overridden by
// the config file, overridden by the environment.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Provider:  s.getProvider(keyEmbedProvider, defaults.Embedding.Provider),
			Model:     s.getString(keyEmbedModel, ""),
			BaseURL:   s.configStore.GetString(keyEmbedBaseURL), // No default - empty is valid for cloud providers
			APIKey:    s.configStore.GetString(keyEmbedAPIKey),
			BatchSize: s.getInt(keyEmbedBatchSize, defaults.Embedding.BatchSize),
		},
		LLM: domain.LLMSettings{
			Provider: s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, ""),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Chunking: domain.ChunkingSettings{
			Size:    s.getInt(keyChunkSize, defaults.Chunking.Size),
			Overlap: s.getInt(keyChunkOverlap, defaults.Chunking.Overlap),
		},
		Search: domain.SearchSettings{
			TopK: s.getInt(keyTopK, defaults.Search.TopK),
		},
		Agent: domain.AgentSettings{
			MaxIterations: s.getInt(keyMaxIterations, defaults.Agent.MaxIterations),
		},
		DataDir: s.getenv(envDataDir),
	}

	// Unset models follow the selected provider.
	if settings.Embedding.Model == "" {
		settings.Embedding.Model = domain.DefaultEmbeddingModels()[settings.Embedding.Provider]
	}
	if settings.LLM.Model == "" {
		settings.LLM.Model = domain.DefaultLLMModels()[settings.LLM.Provider]
	}

	s.applyEnvKeys(settings)

	if err := validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// applyEnvKeys overlays API keys from the environment. Environment
// keys win over stored ones so a rotated key takes effect immediately.
func (s *SettingsService) applyEnvKeys(settings *domain.AppSettings) {
	if key := s.getenv(envOpenAIAPIKey); key != "" {
		if settings.Embedding.Provider == domain.AIProviderOpenAI {
			settings.Embedding.APIKey = key
		}
		if settings.LLM.Provider == domain.AIProviderOpenAI {
			settings.LLM.APIKey = key
		}
	}
	if key := s.getenv(envAnthropicAPIKey); key != "" {
		if settings.LLM.Provider == domain.AIProviderAnthropic {
			settings.LLM.APIKey = key
		}
	}
}

// validate rejects configurations that can never work. Missing API
// keys are tolerated here so commands that need no AI services still
// run; the AI factory reports them when a service is actually needed.
func validate(settings *domain.AppSettings) error {
	if !settings.Embedding.Provider.IsValid() {
		return fmt.Errorf("%w: embedding provider %q", domain.ErrInvalidProvider, settings.Embedding.Provider)
	}
	if !settings.LLM.Provider.IsValid() {
		return fmt.Errorf("%w: llm provider %q", domain.ErrInvalidProvider, settings.LLM.Provider)
	}
	if settings.Embedding.Provider == domain.AIProviderAnthropic {
		return fmt.Errorf("%w: anthropic does not provide embeddings", domain.ErrInvalidProvider)
	}
	if settings.Chunking.Size <= 0 || settings.Chunking.Overlap < 0 ||
		settings.Chunking.Overlap >= settings.Chunking.Size {
		return fmt.Errorf("%w: size %d, overlap %d", domain.ErrInvalidChunking,
			settings.Chunking.Size, settings.Chunking.Overlap)
	}
	return nil
}

// Set updates a single dot-separated configuration key and persists it.
// Integer-valued keys are parsed before storage so the TOML file keeps
// its types.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyEmbedProvider, keyEmbedModel, keyEmbedBaseURL, keyEmbedAPIKey,
		keyLLMProvider, keyLLMModel, keyLLMBaseURL, keyLLMAPIKey:
		return s.configStore.Set(key, value)

	case keyEmbedBatchSize, keyChunkSize, keyChunkOverlap, keyTopK, keyMaxIterations:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, n)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// SetAPIKey stores the API key for a cloud provider.
func (s *SettingsService) SetAPIKey(provider domain.AIProvider, apiKey string) error {
	if !provider.RequiresAPIKey() {
		return fmt.Errorf("%w: %s does not use an API key", domain.ErrInvalidProvider, provider)
	}
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("%w: empty API key", domain.ErrInvalidInput)
	}

	switch provider {
	case domain.AIProviderOpenAI:
		// OpenAI serves both embeddings and completions with one key.
		if err := s.configStore.Set(keyEmbedAPIKey, apiKey); err != nil {
			return fmt.Errorf("save embedding api_key: %w", err)
		}
		return s.configStore.Set(keyLLMAPIKey, apiKey)

	case domain.AIProviderAnthropic:
		return s.configStore.Set(keyLLMAPIKey, apiKey)

	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getString retrieves a string value with a default fallback.
func (s *SettingsService) getString(key, defaultValue string) string {
	if value := s.configStore.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt retrieves an integer value with a default fallback.
func (s *SettingsService) getInt(key string, defaultValue int) int {
	if value := s.configStore.GetInt(key); value != 0 {
		return value
	}
	return defaultValue
}

// getProvider retrieves a provider value with a default fallback.
// Unknown provider names are kept so Get can report them.
func (s *SettingsService) getProvider(key string, defaultValue domain.AIProvider) domain.AIProvider {
	value := s.configStore.GetString(key)
	if value == "" {
		return defaultValue
	}
	return domain.AIProvider(strings.ToLower(value))
}
