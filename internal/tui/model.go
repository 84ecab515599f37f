package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// DefaultLogLines is the number of output lines shown under an active or failed phase.
const DefaultLogLines = 8

// Status is the display state of a phase.
type Status int

const (
	StatusRunning Status = iota
	StatusDone
	StatusFailed
)

// Phase is one recorded vertex.
type Phase struct {
	ID     string
	Name   string
	Status Status
	logs   *tail
}

// Logs returns the tail of the phase output.
func (p *Phase) Logs() []string {
	return p.logs.Lines()
}

// Model is the Bubble Tea model showing pipeline phases and their output.
type Model struct {
	tape        TapeSource
	onInterrupt func()
	logLines    int

	phases  []*Phase
	byID    map[string]*Phase
	spinner spinner.Model
	width   int
	height  int

	interrupted bool
	done        bool
}

// NewModel creates a model reading from tape. onInterrupt is called once when
// the user presses ctrl+c, since the terminal delivers it as a key in raw mode.
func NewModel(tape TapeSource, onInterrupt func()) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	if onInterrupt == nil {
		onInterrupt = func() {}
	}
	return &Model{
		tape:        tape,
		onInterrupt: onInterrupt,
		logLines:    DefaultLogLines,
		byID:        make(map[string]*Phase),
		spinner:     s,
	}
}

// Phases returns the phases in the order they started.
func (m *Model) Phases() []*Phase {
	return m.phases
}

// Init starts reading the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(WaitForTape(m.tape), m.spinner.Tick)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && !m.interrupted {
			m.interrupted = true
			m.onInterrupt()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		p, ok := m.byID[v.Id]
		if !ok {
			p = &Phase{ID: v.Id, Name: v.Name, logs: newTail(m.logLines)}
			m.byID[v.Id] = p
			m.phases = append(m.phases, p)
		}
		switch {
		case v.Completed == nil:
			p.Status = StatusRunning
		case v.Error != nil:
			p.Status = StatusFailed
		default:
			p.Status = StatusDone
		}
	}
	for _, l := range update.Logs {
		if p, ok := m.byID[l.Vertex]; ok {
			_, _ = p.logs.Write(l.Data)
		}
	}
}
