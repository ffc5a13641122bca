package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docqa/internal/domain"
)

// QAPort is the TUI-facing subset of the question-answering service.
type QAPort interface {
	Answer(ctx context.Context, question string) (domain.Result, error)
}

// Model is the Bubble Tea model for the interactive question loop.
type Model struct {
	service  QAPort
	input    textinput.Model
	viewport viewport.Model
	result   domain.Result
	summary  string
	status   string
	cursor   int
	ready    bool
	asked    bool
}

// New creates a new TUI model over an already-loaded document corpus.
func New(service QAPort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Type a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, summary: summary, status: "Documents indexed. Ask away."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around answer and question boxes
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := questionBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + summary
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				res, err := m.service.Answer(context.Background(), q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.result = domain.Result{}
					m.asked = false
				} else {
					m.status = fmt.Sprintf("Answered %q from %d chunk(s)", q, len(res.Sources))
					m.result = res
					m.cursor = 0
					m.asked = true
				}
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		case "down":
			if len(m.result.Sources) > 0 {
				m.cursor = (m.cursor + 1) % len(m.result.Sources)
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		case "up":
			if len(m.result.Sources) > 0 {
				m.cursor = (m.cursor - 1 + len(m.result.Sources)) % len(m.result.Sources)
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout with the current answer and source chunk.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Document Q&A")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := questionBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	answer := answerBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + answer + "\n" + input + "\n" + status
}

func (m Model) renderResult() string {
	if !m.asked {
		return "No answer yet."
	}
	var b strings.Builder
	if m.result.Answer == "" {
		b.WriteString(noAnswerStyle.Render("No answer found in the supplied documents."))
	} else {
		b.WriteString(answerStyle.Render(m.result.Answer))
	}
	if len(m.result.Sources) > 0 {
		r := m.result.Sources[m.cursor]
		b.WriteString(fmt.Sprintf("\n\nSource %d/%d  %s  score=%.3f\n\n",
			m.cursor+1, len(m.result.Sources), r.Chunk.SourceFile, r.Score))
		b.WriteString(r.Chunk.Text)
	}
	return b.String()
}

var (
	answerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	answerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	noAnswerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
