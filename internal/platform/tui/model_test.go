package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/sim"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

// fakeGame ends a run after endAfter steps and records the input it saw.
type fakeGame struct {
	endAfter int
	steps    int
	resets   int
	seen     []core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}
func (g *fakeGame) Snapshot() sim.Snapshot { return sim.Snapshot{FishEaten: 4} }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}
func (g *fakeGame) State() core.GameState { return core.GameState{Score: 9, Ticks: uint64(g.steps)} }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.seen = append(g.seen, frame)
	return core.StepResult{State: g.State(), RunOver: g.steps == g.endAfter}
}

type fakeSaver struct {
	runs []storage.RunRecord
}

func (s *fakeSaver) SaveRun(r storage.RunRecord) (int64, error) {
	s.runs = append(s.runs, r)
	return int64(len(s.runs)), nil
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyPause = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyShot  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyOther = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space boosts", keySpace, core.ActionBoost, false},
		{"up boosts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionBoost, false},
		{"enter confirms", keyEnter, core.ActionConfirm, false},
		{"p pauses", keyPause, core.ActionPause, false},
		{"q quits", keyQuit, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", keyOther, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}

	if !km.IsScreenshot(keyShot) || km.IsScreenshot(keySpace) {
		t.Error("IsScreenshot() should only match ctrl+s")
	}
}

func TestModelBuffersInputUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keyEnter)
	if g.steps != 0 {
		t.Fatalf("keys stepped the game; steps = %d", g.steps)
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !g.seen[0].Has(core.ActionBoost) || !g.seen[0].Has(core.ActionConfirm) {
		t.Errorf("first frame = %v, expected boost and confirm", g.seen[0].Actions)
	}

	update(t, m, TickMsg{})
	if !g.seen[1].Empty() {
		t.Errorf("second frame = %v, expected input cleared", g.seen[1].Actions)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	g := &fakeGame{endAfter: 3}
	saver := &fakeSaver{}
	m := NewModel(g, testConfig(), WithStore(saver), WithPlayer("ada"))

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if len(saver.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(saver.runs))
	}
	got := saver.runs[0]
	if got.GameID != "fake" || got.Player != "ada" || got.Score != 9 || got.FishEaten != 4 || got.Ticks != 3 || got.Seed != 1 {
		t.Errorf("saved run = %+v", got)
	}
	if m.RunsSaved() != 1 {
		t.Errorf("RunsSaved() = %d, expected 1", m.RunsSaved())
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := NewModel(g, testConfig())
	m, _ = update(t, m, TickMsg{})
	if m.RunsSaved() != 0 {
		t.Errorf("RunsSaved() = %d, expected 0 without a store", m.RunsSaved())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig())
	m, cmd := update(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testConfig(), WithScreenshotDir(dir))
	update(t, m, keyShot)

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshot dir has %d entries (%v), expected 1", len(entries), err)
	}
	data, _ := os.ReadFile(dir + "/" + entries[0].Name())
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot = %q, expected the rendered screen", data)
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), WithScreenshotDir(""))
	if _, err := m.saveScreenshot(); err == nil {
		t.Error("saveScreenshot() with no directory should fail")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected resize to keep the game running", g.resets)
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 5})
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", m.config.TickRate)
	}
}
