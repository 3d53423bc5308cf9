package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/advisory"
	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// advisoryMsg carries a completed advisory fetch.
type advisoryMsg struct {
	advisory advisory.Advisory
}

// botReplyMsg delivers a resolver reply after the pacing delay.
type botReplyMsg struct {
	text string
}

type chatKeyMap struct {
	Submit  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k chatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Refresh, k.Quit}
}

func (k chatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultChatKeys() chatKeyMap {
	return chatKeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh weather")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

type chatMessage struct {
	fromUser bool
	text     string
}

// chatModel is the bubbletea model for the garden chat. The advisory
// regions and the transcript are independent: a pending weather fetch
// never blocks input.
type chatModel struct {
	app   *App
	input textinput.Model
	keys  chatKeyMap
	help  help.Model

	messages []chatMessage
	current  *advisory.Advisory // nil until the first fetch completes
	pending  int                // fetches in flight

	width, height int
	quitting      bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "How to plant carrots?"
	ti.CharLimit = 500

	return &chatModel{
		app:   app,
		input: ti,
		keys:  defaultChatKeys(),
		help:  help.New(),
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refresh())
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case advisoryMsg:
		// Last completed fetch wins.
		a := msg.advisory
		m.current = &a
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case botReplyMsg:
		m.messages = append(m.messages, chatMessage{text: msg.text})
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		case key.Matches(msg, m.keys.Submit):
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m, m.handleInput(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatChatWelcome(m.app.Knowledge.Examples()))
	b.WriteString("\n\n")

	regions := formatter.FormatAdvisoryRegions(m.current)
	if m.pending > 0 && m.current != nil {
		regions += formatter.Dim("  (refreshing...)")
	}
	b.WriteString(formatter.RenderBox("", regions))
	b.WriteString("\n\n")

	for _, line := range m.visibleTranscript() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(formatter.StyleGreen.Render("ask") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

// ── input handling ───────────────────────────────────────────────────────────

func (m *chatModel) handleInput(text string) tea.Cmd {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q":
		m.quitting = true
		return tea.Quit
	case "/refresh":
		return m.refresh()
	case "/crops":
		m.messages = append(m.messages, chatMessage{text: formatter.FormatCropNames(m.app.Knowledge.Crops())})
		return nil
	}

	m.messages = append(m.messages, chatMessage{fromUser: true, text: text})
	return deliverReply(m.app.Resolver.Resolve(text), m.app.ReplyDelay)
}

// refresh starts an advisory fetch. Fetches are not cancelled; each one
// reports back when it completes.
func (m *chatModel) refresh() tea.Cmd {
	m.pending++
	app := m.app
	return func() tea.Msg {
		return advisoryMsg{advisory: app.Advisory.Advise(context.Background(), app.now())}
	}
}

// deliverReply schedules a reply after delay. The reply text is fixed at
// submit time.
func deliverReply(text string, delay time.Duration) tea.Cmd {
	msg := botReplyMsg{text: text}
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// visibleTranscript renders messages, keeping only the tail that fits
// when the terminal height is known.
func (m *chatModel) visibleTranscript() []string {
	wrap := 0
	if m.width > 0 {
		wrap = m.width - 4
	}

	var lines []string
	for _, msg := range m.messages {
		var rendered string
		if msg.fromUser {
			rendered = formatter.FormatUserMessage(msg.text)
		} else {
			rendered = formatter.FormatBotMessage(msg.text, wrap)
		}
		lines = append(lines, strings.Split(rendered, "\n")...)
	}

	if m.height <= 0 {
		return lines
	}
	// Header, regions box, prompt and key hints.
	const chrome = 16
	room := m.height - chrome
	if room < 3 {
		room = 3
	}
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	return lines
}
