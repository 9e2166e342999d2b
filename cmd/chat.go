package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	chatrender "github.com/bnema/quotevault-cli/internal/adapters/render/chat"
	"github.com/bnema/quotevault-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the chat panel (polls the store on a timer)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				newChatModel(cmd.Context(), app, session),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
			)

			_, err = p.Run()
			return err
		},
	}

	cmd.AddCommand(
		newChatLogCmd(app),
		newChatSendCmd(app),
	)

	return cmd
}

func newChatLogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the chat log once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := chatrender.Render(app.engine.LoadChat(cmd.Context()))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newChatSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Send a chat message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("message is empty")
			}

			if err := app.engine.SendMessage(cmd.Context(), session, text); err != nil {
				if errors.Is(err, domain.ErrUsernameNotSet) {
					return fmt.Errorf("set a display name first with `qv name <name>`: %w", err)
				}
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Sent.")
			return err
		},
	}
}

// The interactive chat surface. Chat is a timer-reloaded domain: every tick
// refetches the log wholesale, so a just-sent message appears on the next
// poll rather than being patched in locally.

type chatTickMsg struct{}

type chatMessagesMsg struct {
	messages []domain.ChatMessage
}

type chatModel struct {
	ctx      context.Context
	app      *app
	session  *domain.Session
	input    textinput.Model
	messages []domain.ChatMessage
	hint     string
}

func newChatModel(ctx context.Context, app *app, session *domain.Session) chatModel {
	input := textinput.New()
	input.Placeholder = "Type a message…"
	input.CharLimit = 500
	input.Focus()

	model := chatModel{
		ctx:     ctx,
		app:     app,
		session: session,
		input:   input,
	}
	if strings.TrimSpace(session.Username) == "" {
		model.hint = "Set a display name with `qv name <name>` to chat."
	}

	return model
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadMessages(), m.tick())
}

func (m chatModel) tick() tea.Cmd {
	return tea.Tick(m.app.chatPoll, func(time.Time) tea.Msg {
		return chatTickMsg{}
	})
}

func (m chatModel) loadMessages() tea.Cmd {
	return func() tea.Msg {
		return chatMessagesMsg{messages: m.app.engine.LoadChat(m.ctx)}
	}
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatTickMsg:
		return m, tea.Batch(m.loadMessages(), m.tick())

	case chatMessagesMsg:
		m.messages = msg.messages
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}

			if err := m.app.engine.SendMessage(m.ctx, m.session, text); err != nil {
				m.hint = "Set a display name with `qv name <name>` to chat."
				return m, nil
			}

			m.input.SetValue("")
			return m, m.loadMessages()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	view := chatrender.View(m.messages) + "\n\n" + m.input.View() + "\n"
	if m.hint != "" {
		view += m.hint + "\n"
	}
	return view + "enter: send • esc: quit"
}
