package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/compose"
	"github.com/san-kum/animfetch/internal/fetch"
)

const historyCapacity = 120

type TickMsg time.Time

// TextMsg carries a freshly fetched text block. Seq orders fetches so a
// slow one never replaces newer text.
type TextMsg struct {
	Seq   int
	Lines fetch.Block
}

type refreshMsg struct{}

type Model struct {
	ctx       context.Context
	provider  anim.Provider
	source    fetch.Source
	period    time.Duration
	refresh   time.Duration
	text      fetch.Block
	issued    int
	applied   int
	frame     anim.Frame
	last      time.Time
	running   bool
	done      bool
	showStats bool
	ticks     int
	history   []float64
}

func NewModel(ctx context.Context, p anim.Provider, src fetch.Source, fps float64, refresh time.Duration) Model {
	if src == nil {
		src = fetch.Static(nil)
	}
	return Model{
		ctx:      ctx,
		provider: p,
		source:   src,
		period:   time.Duration(float64(time.Second) / fps),
		refresh:  refresh,
		frame:    p.Frame(),
		running:  true,
		issued:   1,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m Model) fetch(seq int) tea.Cmd {
	ctx, src := m.ctx, m.source
	return func() tea.Msg { return TextMsg{Seq: seq, Lines: src.Lines(ctx)} }
}

// nextFetch issues a fetch newer than every earlier one.
func (m *Model) nextFetch() tea.Cmd {
	m.issued++
	return m.fetch(m.issued)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(1), m.tick(), m.scheduleRefresh())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "s":
			m.showStats = !m.showStats
		case "r":
			return m, m.nextFetch()
		}
	case TextMsg:
		if msg.Seq < m.applied {
			return m, nil
		}
		m.text = msg.Lines
		m.applied = msg.Seq
	case refreshMsg:
		return m, tea.Batch(m.nextFetch(), m.scheduleRefresh())
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		if m.running {
			m.step(dt)
			if m.done {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step(dt float64) {
	m.provider.Advance(dt)
	m.ticks++
	frame := m.provider.Frame()
	if frame.Done() {
		m.done = true
		return
	}
	m.frame = frame
	if pp, ok := m.provider.(anim.Populated); ok {
		if len(m.history) == historyCapacity {
			m.history = m.history[1:]
		}
		m.history = append(m.history, float64(pp.Population()))
	}
}

// Done reports whether the provider has ended.
func (m Model) Done() bool { return m.done }

func (m Model) Text() fetch.Block { return m.text }

func (m Model) View() string {
	if m.frame.Done() {
		return ""
	}
	lines, err := compose.Compose(m.frame, m.text)
	if err != nil {
		return err.Error()
	}
	body := frameStyle.Render(strings.Join(lines, "\n"))
	if m.showStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, statsStyle.Render(m.stats()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(m.status()))
}

func (m Model) status() string {
	state := "running"
	if !m.running {
		state = "paused"
	}
	return fmt.Sprintf("%s  [space] pause  [s] stats  [r] refresh  [q] quit", state)
}

func (m Model) stats() string {
	var s strings.Builder
	s.WriteString(m.provider.Describe() + "\n\n")
	s.WriteString(labelStyle.Render("Ticks") + fmt.Sprintf("%d\n", m.ticks))
	if n := len(m.history); n > 0 {
		s.WriteString(labelStyle.Render("Population") + fmt.Sprintf("%.0f\n", m.history[n-1]))
	}
	if len(m.history) > 1 {
		s.WriteString("\n" + asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Population")))
	}
	return s.String()
}

// Run blocks until the user quits, the provider ends or ctx is done.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
