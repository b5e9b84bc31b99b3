package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/3moscas/tgbot/internal/chat"
	"github.com/3moscas/tgbot/internal/model"
)

// chatPort is the console-facing subset of the chat usecase.
type chatPort interface {
	HandleText(ctx context.Context, sc model.Scope, input chat.TextInput) (chat.Reply, error)
}

type turn struct {
	user string
	bot  string
}

// replModel is the Bubble Tea model for the local chat console.
type replModel struct {
	uc       chatPort
	sc       model.Scope
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	status   string
	ready    bool
}

func newReplModel(uc chatPort) replModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Escreva uma mensagem e pressione Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return replModel{
		uc:       uc,
		sc:       model.Scope{UserID: "console", Username: "console"},
		input:    ti,
		viewport: vp,
		status:   "Pronto. /help mostra os comandos.",
	}
}

// Init initializes the model (text input cursor blink).
func (m replModel) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := historyBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + ih // header + status + input frame
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = maxInt(3, vh-fh)
		m.viewport.SetContent(m.renderHistory())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				reply, err := m.uc.HandleText(context.Background(), m.sc, chat.TextInput{Text: text})
				if err != nil {
					m.status = "Erro: " + err.Error()
				} else {
					m.turns = append(m.turns, turn{user: text, bot: reply.Text})
					m.status = "Pronto."
				}
				m.input.SetValue("")
				m.viewport.SetContent(m.renderHistory())
				m.viewport.GotoBottom()
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the console layout.
func (m replModel) View() string {
	if !m.ready {
		return "Carregando..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("tgbot — console")
	history := historyBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + history + "\n" + input + "\n" + status
}

func (m replModel) renderHistory() string {
	if len(m.turns) == 0 {
		return "Nenhuma mensagem ainda."
	}
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(userStyle.Render("você: ") + t.user)
		b.WriteString("\n")
		b.WriteString(botStyle.Render("bot:  ") + t.bot)
	}
	return b.String()
}

var (
	historyBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
