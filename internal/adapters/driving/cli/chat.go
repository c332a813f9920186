package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/docent-labs/docent/internal/adapters/driving/tui"
	"github.com/docent-labs/docent/internal/logger"
)

var chatServers []string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat",
	Long: `Launch an interactive chat session with the document agent.

Each message is classified and routed to the matching agent, which can
search the index before answering. MCP servers given with -s provide
additional tools for the session.

Controls:
  enter       - Send message
  pgup/pgdn   - Scroll transcript
  ctrl+l      - Clear transcript
  esc, ctrl+c - Quit`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringArrayVarP(&chatServers, "server", "s", nil,
		`MCP server command, e.g. "docent mcp serve" (repeatable)`)
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if newAgent == nil {
		return errors.New("chat is not available: AI services are not configured")
	}

	tools, err := connectToolProvider(cmd, chatServers)
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

	chat, err := tui.NewChat(&tui.Ports{Agent: newAgent(tools)})
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	chat.WithContext(cmd.Context())

	p := tea.NewProgram(chat, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat error: %w", err)
	}

	return nil
}
