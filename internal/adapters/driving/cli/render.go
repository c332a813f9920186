package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docent-labs/docent/internal/core/domain"
)

// Panel styles shared by the search, ask and query commands.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Width(76)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	panelMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)

// snippetLimit bounds how much chunk text a result panel shows.
const snippetLimit = 300

func renderResultPanel(rank int, result domain.SearchResult) string {
	title := panelTitleStyle.Render(fmt.Sprintf("[%d] %s", rank, result.Metadata.Citation()))
	meta := panelMetaStyle.Render(fmt.Sprintf("distance %.3f", result.Distance))
	body := snippet(result.Text, snippetLimit)
	return panelStyle.Render(title + "  " + meta + "\n\n" + body)
}

func renderAnswerPanel(title, answer string) string {
	header := panelTitleStyle.Render(title)
	return panelStyle.Render(header + "\n\n" + strings.TrimSpace(answer))
}

// snippet truncates text at a rune boundary, appending an ellipsis.
func snippet(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
