package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docent-labs/docent/internal/adapters/driving/tui/keymap"
	"github.com/docent-labs/docent/internal/adapters/driving/tui/styles"
)

// answerMsg carries the agent's reply back into the update loop.
type answerMsg struct {
	answer string
	err    error
}

// entryRole identifies who produced a transcript entry.
type entryRole int

const (
	roleUser entryRole = iota
	roleAssistant
	roleError
)

// entry is a single line of the chat transcript.
type entry struct {
	role entryRole
	text string
}

// chromeHeight is the number of terminal rows used around the
// transcript viewport: title, input field and help bar.
const chromeHeight = 6

// Chat is the interactive chat model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type Chat struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	entries []entry

	// waiting is true while an agent run is in flight.
	waiting bool

	// ready flips once the first WindowSizeMsg has sized the viewport.
	ready bool

	width  int
	height int
}

// Ensure Chat implements tea.Model.
var _ tea.Model = (*Chat)(nil)

// NewChat creates a chat model with the given ports.
func NewChat(ports *Ports) (*Chat, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating chat: %w", err)
	}

	s := styles.DefaultStyles()

	input := textinput.New()
	input.Placeholder = "Ask about your documents..."
	input.CharLimit = 512
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = s.Muted

	return &Chat{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		input:   input,
		spinner: spin,
	}, nil
}

// WithContext sets the context used for agent runs.
func (c *Chat) WithContext(ctx context.Context) *Chat {
	c.ctx = ctx
	return c
}

// Init implements tea.Model.
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		if !c.ready {
			c.viewport = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
			c.ready = true
		} else {
			c.viewport.Width = msg.Width
			c.viewport.Height = max(msg.Height-chromeHeight, 1)
		}
		c.input.Width = max(msg.Width-6, 10)
		c.refresh()
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case answerMsg:
		c.waiting = false
		if msg.err != nil {
			c.entries = append(c.entries, entry{role: roleError, text: msg.err.Error()})
		} else {
			c.entries = append(c.entries, entry{role: roleAssistant, text: msg.answer})
		}
		c.refresh()
		c.viewport.GotoBottom()
		return c, nil
	}

	return c, c.updateComponents(msg)
}

// handleKey processes a key press.
func (c *Chat) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit

	case key.Matches(msg, c.keys.Clear):
		c.entries = nil
		c.refresh()
		return c, nil

	case key.Matches(msg, c.keys.ScrollUp):
		c.viewport.HalfViewUp()
		return c, nil

	case key.Matches(msg, c.keys.ScrollDown):
		c.viewport.HalfViewDown()
		return c, nil

	case key.Matches(msg, c.keys.Send):
		return c, c.send()
	}

	return c, c.updateComponents(msg)
}

// send submits the current input to the agent. Empty input and
// submissions while a run is in flight are ignored.
func (c *Chat) send() tea.Cmd {
	query := strings.TrimSpace(c.input.Value())
	if query == "" || c.waiting {
		return nil
	}

	c.entries = append(c.entries, entry{role: roleUser, text: query})
	c.input.Reset()
	c.waiting = true
	c.refresh()
	c.viewport.GotoBottom()

	return tea.Batch(c.spinner.Tick, c.ask(query))
}

// ask runs the agent off the update loop and reports back via answerMsg.
func (c *Chat) ask(query string) tea.Cmd {
	agent := c.ports.Agent
	ctx := c.ctx
	return func() tea.Msg {
		answer, err := agent.Run(ctx, query)
		return answerMsg{answer: answer, err: err}
	}
}

// updateComponents forwards a message to the input field.
func (c *Chat) updateComponents(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// refresh re-renders the transcript into the viewport.
func (c *Chat) refresh() {
	if !c.ready {
		return
	}
	c.viewport.SetContent(c.transcript())
}

// transcript renders all entries as styled text.
func (c *Chat) transcript() string {
	if len(c.entries) == 0 {
		return c.styles.Muted.Render("No messages yet. Ask a question to get started.")
	}

	var b strings.Builder
	for i := range c.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch c.entries[i].role {
		case roleUser:
			b.WriteString(c.styles.UserLabel.Render("You: "))
			b.WriteString(c.styles.Normal.Render(c.entries[i].text))
		case roleAssistant:
			b.WriteString(c.styles.AssistantLabel.Render("Docent: "))
			b.WriteString(c.styles.Normal.Render(c.entries[i].text))
		case roleError:
			b.WriteString(c.styles.Error.Render("Error: " + c.entries[i].text))
		}
	}
	return b.String()
}

// View implements tea.Model.
func (c *Chat) View() string {
	if !c.ready {
		return "Starting chat..."
	}

	var b strings.Builder
	b.WriteString(c.styles.Title.Render("Docent Chat"))
	b.WriteString("\n")
	b.WriteString(c.viewport.View())
	b.WriteString("\n")

	if c.waiting {
		b.WriteString(c.spinner.View())
		b.WriteString(c.styles.Muted.Render(" thinking..."))
	} else {
		b.WriteString(c.styles.InputField.Render(c.input.View()))
	}
	b.WriteString("\n")
	b.WriteString(c.helpBar())
	return b.String()
}

// helpBar renders the one-line key help.
func (c *Chat) helpBar() string {
	parts := make([]string, 0, 5)
	for _, binding := range c.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return c.styles.Help.Render(strings.Join(parts, " • "))
}
