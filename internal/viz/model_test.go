package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/fetch"
)

type stubProvider struct {
	advanced []float64
	endAfter int
}

func (p *stubProvider) Advance(dt float64) { p.advanced = append(p.advanced, dt) }

func (p *stubProvider) Frame() anim.Frame {
	if p.endAfter > 0 && len(p.advanced) >= p.endAfter {
		return nil
	}
	return anim.Frame{"**", "*"}
}

func (p *stubProvider) Describe() string { return "stub" }
func (p *stubProvider) Population() int  { return len(p.advanced) }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTickAdvancesByElapsedTime(t *testing.T) {
	p := &stubProvider{}
	m := NewModel(context.Background(), p, nil, 10, time.Second)
	start := time.Unix(100, 0)

	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Fatal("expected next tick")
	}
	m, _ = update(t, m, TickMsg(start.Add(250*time.Millisecond)))

	if len(p.advanced) != 2 || p.advanced[0] != 0 || p.advanced[1] != 0.25 {
		t.Errorf("advanced = %v, want [0 0.25]", p.advanced)
	}
	if m.ticks != 2 {
		t.Errorf("ticks = %d, want 2", m.ticks)
	}
}

func TestPauseStopsAdvancing(t *testing.T) {
	p := &stubProvider{}
	m := NewModel(context.Background(), p, nil, 10, time.Second)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	if len(p.advanced) != 0 {
		t.Errorf("paused model advanced %d times", len(p.advanced))
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("view should show paused state")
	}
}

func TestTextMessageUpdatesView(t *testing.T) {
	m := NewModel(context.Background(), &stubProvider{}, nil, 10, time.Second)
	m, _ = update(t, m, TextMsg{Seq: 1, Lines: fetch.Block{"host: box"}})

	if got := m.Text(); len(got) != 1 || got[0] != "host: box" {
		t.Errorf("Text() = %v", got)
	}
	if !strings.Contains(m.View(), "**  host: box") {
		t.Errorf("view missing composed row:\n%s", m.View())
	}
}

func TestRefreshFetchesFromSource(t *testing.T) {
	src := fetch.Static{"a", "b"}
	m := NewModel(context.Background(), &stubProvider{}, src, 10, time.Second)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	msg, ok := cmd().(TextMsg)
	if !ok {
		t.Fatalf("command returned %T, want TextMsg", cmd())
	}
	if len(msg.Lines) != 2 {
		t.Errorf("fetched %v, want two lines", msg.Lines)
	}
	if msg.Seq != 2 {
		t.Errorf("seq = %d, want 2 after the initial fetch", msg.Seq)
	}
}

func TestProviderEndQuits(t *testing.T) {
	p := &stubProvider{endAfter: 1}
	m := NewModel(context.Background(), p, nil, 10, time.Second)

	m, cmd := update(t, m, TickMsg(time.Unix(1, 0)))
	if !m.Done() {
		t.Error("model should be done")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestStatsPanel(t *testing.T) {
	p := &stubProvider{}
	m := NewModel(context.Background(), p, nil, 10, time.Second)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg(time.Unix(int64(i), 0)))
	}
	view := m.View()
	for _, want := range []string{"stub", "Ticks", "Population"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStaleTextIsDropped(t *testing.T) {
	m := NewModel(context.Background(), &stubProvider{}, nil, 10, time.Second)

	m, _ = update(t, m, TextMsg{Seq: 3, Lines: fetch.Block{"new"}})
	m, _ = update(t, m, TextMsg{Seq: 2, Lines: fetch.Block{"old"}})
	if got := m.Text(); len(got) != 1 || got[0] != "new" {
		t.Errorf("Text() = %v, want [new]", got)
	}

	m, _ = update(t, m, TextMsg{Seq: 4, Lines: fetch.Block{"newer"}})
	if got := m.Text(); got[0] != "newer" {
		t.Errorf("Text() = %v, want [newer]", got)
	}
}
