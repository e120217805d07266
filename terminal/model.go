package terminal

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder = lipgloss.Color("#3b4261")
	colorTitle  = lipgloss.Color("#00ff80")
	colorDim    = lipgloss.Color("#565f89")
	colorPaused = lipgloss.Color("#e0af68")
)

// FrameMsg carries one rendered frame from the simulation loop.
type FrameMsg struct {
	Map    string
	Status string
	Paused bool
}

// Hooks connect the model to the simulation loop. Both are called from the
// bubbletea goroutine and must not block.
type Hooks struct {
	Submit func(line string)
	Resize func(cols, rows int)
}

// Model is the bubbletea model of the text-mode front end: the world map on
// the left, the transcript on the right and the command line below.
type Model struct {
	transcript *Transcript
	hooks      Hooks

	input textinput.Model
	log   viewport.Model
	frame FrameMsg

	width, height int
	version       uint64
}

// NewModel creates the front end model for tr.
func NewModel(tr *Transcript, hooks Hooks) Model {
	in := textinput.New()
	in.Prompt = "$ "
	in.Placeholder = "p | r a=100 f=100 | t 5"
	in.CharLimit = 256
	in.Focus()

	return Model{
		transcript: tr,
		hooks:      hooks,
		input:      in,
		log:        viewport.New(40, 10),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if m.hooks.Submit != nil {
				m.hooks.Submit(line)
			}
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}

	case FrameMsg:
		m.frame = msg
		m.syncLog()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// layout splits the screen between map and transcript and reports the map
// size back to the loop.
func (m *Model) layout() {
	bodyH := max(m.height-4, 3)
	mapW := max(m.width/2-2, 1)
	logW := max(m.width-mapW-6, 10)

	m.log.Width = logW
	m.log.Height = bodyH
	m.input.Width = max(m.width-4, 10)
	m.version = 0
	m.syncLog()

	if m.hooks.Resize != nil {
		m.hooks.Resize(mapW, bodyH)
	}
}

func (m *Model) syncLog() {
	v := m.transcript.Version()
	if v == m.version {
		return
	}
	m.version = v
	m.log.SetContent(m.transcript.String())
	if m.transcript.AtTop() {
		m.log.GotoTop()
	} else {
		m.log.GotoBottom()
	}
}

func (m Model) View() string {
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	world := box.Render(m.frame.Map)
	log := box.Render(m.log.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, world, log)

	statusStyle := lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	if m.frame.Paused {
		statusStyle = statusStyle.Foreground(colorPaused)
	}
	help := lipgloss.NewStyle().Foreground(colorDim).Render("  pgup/pgdn scroll · esc quit")
	status := statusStyle.Render(" shorelark  "+m.frame.Status) + help

	return lipgloss.JoinVertical(lipgloss.Left, status, body, m.input.View())
}
