package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	toolsmcp "github.com/docent-labs/docent/internal/adapters/driven/tools/mcp"
	"github.com/docent-labs/docent/internal/core/ports/driven"
	"github.com/docent-labs/docent/internal/logger"
)

var queryServers []string

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Run an agent query with intent routing",
	Long: `Classifies the query (question, summary or comparison), then runs
the matching agent through a tool-calling loop against the index.

Additional tools can be provided by MCP servers:

  docent query "compare chapters 2 and 3" -s "docent mcp serve"

Each -s flag is a command line that is spawned and spoken to over
stdio. Connections are closed when the query finishes.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringArrayVarP(&queryServers, "server", "s", nil,
		`MCP server command, e.g. "docent mcp serve" (repeatable)`)
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if newAgent == nil {
		return errors.New("query is not available: AI services are not configured")
	}

	tools, err := connectToolProvider(cmd, queryServers)
	if err != nil {
		return err
	}
	if tools != nil {
		defer func() {
			if cerr := tools.Close(); cerr != nil {
				logger.Debug("closing tool provider: %v", cerr)
			}
		}()
	}

	answer, err := newAgent(tools).Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("agent run failed: %w", err)
	}

	cmd.Println(renderAnswerPanel("Answer", answer))
	return nil
}

// connectToolProvider spawns and connects the given MCP servers.
// Returns nil when no servers were requested.
func connectToolProvider(cmd *cobra.Command, serverSpecs []string) (driven.ToolProvider, error) {
	if len(serverSpecs) == 0 {
		return nil, nil
	}

	configs, err := toolsmcp.ParseServerConfigs(serverSpecs)
	if err != nil {
		return nil, fmt.Errorf("parsing server commands: %w", err)
	}

	provider, err := toolsmcp.NewProvider(cmd.Context(), configs)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP servers: %w", err)
	}
	return provider, nil
}
