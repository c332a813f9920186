// Package cli implements the cobra command tree for docent.
// It is a driving adapter: commands talk to the core exclusively
// through the driving ports, which main wires in before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/core/ports/driving"
	"github.com/docent-labs/docent/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Service globals, wired by SetServices before Execute. Commands that
// find their service nil report a configuration error instead of
// panicking, so commands with no AI dependency keep working.
var (
	settingsService driving.SettingsService
	ingestService   driving.IngestService
	indexService    driving.IndexService
	answerService   driving.AnswerService
	aiValidator     driven.AIConfigValidator
	newAgent        func(tools driven.ToolProvider) driving.AgentService
)

// Services carries the wired core services into the command tree.
type Services struct {
	Settings driving.SettingsService
	Ingest   driving.IngestService
	Index    driving.IndexService
	Answer   driving.AnswerService

	// Validator pings the configured AI providers on demand.
	Validator driven.AIConfigValidator

	// NewAgent builds an intent-routed agent over the given tool
	// provider. tools may be nil, in which case the agent runs
	// without tools.
	NewAgent func(tools driven.ToolProvider) driving.AgentService
}

// SetServices injects the core services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settingsService = s.Settings
	ingestService = s.Ingest
	indexService = s.Index
	answerService = s.Answer
	aiValidator = s.Validator
	newAgent = s.NewAgent
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "docent",
	Short: "Ask questions about your PDF documents",
	Long: `Docent indexes PDF documents and answers questions about them.

Ingested documents are split into chunks, embedded and stored in a
local vector index. Questions are answered by retrieving the closest
chunks and asking the configured LLM for a grounded, cited answer.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
