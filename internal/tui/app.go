package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeanpaul/rolodex/internal/cli"
)

// Model is the interactive session: a scrollback viewport over the
// command history and a single-line prompt.
type Model struct {
	width, height int
	viewport      viewport.Model
	input         textinput.Model
	session       *cli.Session
	lines         []string
	renderer      *glamour.TermRenderer
}

func NewModel(session *cli.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command (try 'help')..."
	ti.Prompt = ">>> "
	ti.PromptStyle = PromptStyle
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	session.SetRenderer(TableRenderer{})

	m := Model{
		viewport: vp,
		input:    ti,
		session:  session,
		renderer: r,
	}
	m.push(BannerStyle.Render(Banner))
	m.push(OutputStyle.Render("Welcome! Type 'help' for the command list, 'good bye' to save and quit."))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 4
		m.input.Width = msg.Width - 8
		m.rebuildView()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.push(PromptStyle.Render(">>> ") + CommandStyle.Render(line))
			m.runCommand(line)
			if m.session.Closed() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) runCommand(line string) {
	out, err := m.session.Execute(line)
	if err != nil {
		m.push(ErrorStyle.Render(cli.Message(err)))
		return
	}
	if strings.HasPrefix(strings.ToLower(line), "help") && m.renderer != nil {
		if rendered, rerr := m.renderer.Render(out); rerr == nil {
			out = rendered
		}
	}
	m.push(OutputStyle.Render(out))
}

func (m *Model) push(line string) {
	m.lines = append(m.lines, line)
	m.rebuildView()
}

func (m *Model) rebuildView() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	return m.viewport.View() + "\n" +
		InputBorderStyle.Width(max(m.width-2, 20)).Render(m.input.View()) + "\n" +
		HelpStyle.Render("  ctrl+c to quit without saving")
}

// Run starts the interactive program and blocks until it exits.
func Run(session *cli.Session) error {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
