package chat

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quotevault-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// View renders messages without spawning a program, for embedding inside a
// live bubbletea model.
func View(messages []domain.ChatMessage) string {
	return renderView(messages, newStyles())
}

func renderView(messages []domain.ChatMessage, s styles) string {
	lines := []string{
		s.title.Render("Chat"),
		s.header.Render(fmt.Sprintf("%d messages", len(messages))),
	}

	if len(messages) == 0 {
		lines = append(lines, s.empty.Render("No chat messages yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, message := range messages {
		lines = append(lines, s.section.Render(renderMessage(message, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMessage(message domain.ChatMessage, s styles) string {
	parts := []string{
		s.user.Render(message.User+":") + " " + s.text.Render(message.Text),
	}

	if message.TS != "" {
		parts = append(parts, s.meta.Render(domain.DisplayTime(message.TS)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type renderReadyMsg struct{}

type model struct {
	messages []domain.ChatMessage
	styles   styles
	output   string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.messages, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(messages []domain.ChatMessage) (string, error) {
	p := tea.NewProgram(
		model{messages: messages, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
