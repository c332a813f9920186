// Command docent is a retrieval-augmented research assistant for PDF
// documents. It wires the driven adapters (AI providers, SQLite vector
// store, config, prompts) into the core services and hands them to the
// cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/docent-labs/docent/internal/adapters/driven/ai"
	configfile "github.com/docent-labs/docent/internal/adapters/driven/config/file"
	"github.com/docent-labs/docent/internal/adapters/driven/extractor/pdf"
	vectorsqlite "github.com/docent-labs/docent/internal/adapters/driven/vectorstore/sqlite"
	"github.com/docent-labs/docent/internal/adapters/driving/cli"
	"github.com/docent-labs/docent/internal/chunker"
	"github.com/docent-labs/docent/internal/core/domain"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory supplies API keys during
	// development; a missing file is not an error.
	_ = godotenv.Load()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, os.Getenv)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	wired, err := wireServices(settingsService, settings)
	if err != nil {
		return err
	}

	cli.SetVersion(version)
	cli.SetServices(wired)
	return cli.Execute()
}

// wireServices builds the core services from the settings. AI-backed
// services stay nil when their provider is not configured or not
// reachable; commands that need them report why.
func wireServices(settingsService driving.SettingsService, settings *domain.AppSettings) (*cli.Services, error) {
	wired := &cli.Services{
		Settings:  settingsService,
		Validator: ai.NewConfigValidator(),
	}

	embedding, err := ai.CreateAndValidateEmbeddingService(&settings.Embedding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	llm, err := ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return nil, fmt.Errorf("opening prompt store: %w", err)
	}

	if embedding != nil {
		store, err := vectorsqlite.NewStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening vector store: %w", err)
		}

		embedder := services.NewEmbedder(embedding, settings.Embedding.BatchSize)
		index := services.NewIndex(store, embedder, settings.Search.TopK)
		wired.Index = index

		splitter, err := chunker.New(
			chunker.WithChunkSize(settings.Chunking.Size),
			chunker.WithOverlap(settings.Chunking.Overlap),
		)
		if err != nil {
			return nil, fmt.Errorf("configuring chunker: %w", err)
		}
		wired.Ingest = services.NewIngestor(pdf.NewExtractor(), splitter, index)

		if llm != nil {
			answer := services.NewAnswer(index, llm)
			answer.SetPromptStore(promptStore)
			wired.Answer = answer
		}
	}

	if llm != nil {
		maxIterations := settings.Agent.MaxIterations
		wired.NewAgent = func(tools driven.ToolProvider) driving.AgentService {
			router := services.NewRouter(llm, tools, maxIterations)
			router.SetPromptStore(promptStore)
			return router
		}
	}

	return wired, nil
}
