package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestDrawBarsShape(t *testing.T) {
	step := sorting.Step{
		Array:     []int{1, 3, 2},
		Primary:   sorting.NoHighlight,
		Secondary: sorting.Span(0, 0),
		Scope:     sorting.Span(1, 3),
	}
	out := DrawBars(step, ThemeClassic, 12, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 3 bar rows + scope row", len(lines))
	}
	// value 3 is the only bar reaching the top row
	if got := strings.Count(lines[0], barGlyph); got != 3 {
		t.Errorf("top row cells = %d, want 3", got)
	}
	if got := strings.Count(lines[2], barGlyph); got != 9 {
		t.Errorf("bottom row cells = %d, want 9", got)
	}
	if got := strings.Count(lines[3], scopeGlyph); got != 8 {
		t.Errorf("scope cells = %d, want 8", got)
	}
}

func TestDrawBarsEmpty(t *testing.T) {
	if got := DrawBars(sorting.Initial(nil), ThemeClassic, 10, 5); strings.TrimSpace(got) != "" {
		t.Errorf("empty step drew %q", got)
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		n, cols   int
		fill, gap int
	}{
		{0, 10, 0, 0},
		{4, 16, 3, 1},
		{8, 16, 2, 0},
		{32, 16, 1, 0},
	}
	for _, tt := range tests {
		fill, gap := barWidth(tt.n, tt.cols)
		if fill != tt.fill || gap != tt.gap {
			t.Errorf("barWidth(%d, %d) = %d, %d; want %d, %d", tt.n, tt.cols, fill, gap, tt.fill, tt.gap)
		}
	}
}

func TestNextAlgorithm(t *testing.T) {
	if got := nextAlgorithm(sorting.Bubble); got != sorting.Insertion {
		t.Errorf("after bubble got %s", got)
	}
	if got := nextAlgorithm(sorting.Quick); got != sorting.Bubble {
		t.Errorf("after quick got %s", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	seen := map[string]bool{}
	th := ThemeClassic
	for range ThemeNames() {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(ThemeNames()) {
		t.Errorf("NextTheme visited %d of %d themes", len(seen), len(ThemeNames()))
	}
}

func newTestModel(t *testing.T) (Model, *player.Player) {
	t.Helper()
	p, err := player.New(sorting.Bubble, player.WithCount(6), player.WithSeed(1), player.WithDelay(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(p.Stop)
	stats := metrics.NewObserver(metrics.Default()...)
	p.AddObserver(stats)
	return NewModel(p, stats, ThemeClassic), p
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	if key == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeys(t *testing.T) {
	m, p := newTestModel(t)
	if err := p.Start(nil); err != nil {
		t.Fatal(err)
	}

	m = press(m, " ")
	if p.State() != player.Paused {
		t.Fatalf("state = %s after space, want paused", p.State())
	}
	m = press(m, " ")
	if p.State() != player.Running {
		t.Fatalf("state = %s after second space, want running", p.State())
	}

	m = press(m, "+")
	if p.Delay() != 30*time.Minute {
		t.Errorf("delay = %s after +", p.Delay())
	}
	m = press(m, "-")
	m = press(m, "-")
	if p.Delay() != maxDelay {
		t.Errorf("delay = %s, want capped at %s", p.Delay(), maxDelay)
	}

	m = press(m, "t")
	if m.theme.Name == ThemeClassic.Name {
		t.Error("theme did not change")
	}

	before := p.Snapshot().RunID
	m = press(m, "3")
	if p.Algorithm() != sorting.Merge {
		t.Errorf("algorithm = %s, want merge", p.Algorithm())
	}
	if p.Snapshot().RunID == before {
		t.Error("switching algorithm should restart the run")
	}

	m = press(m, "a")
	if p.Algorithm() != sorting.Quick {
		t.Errorf("algorithm = %s, want quick", p.Algorithm())
	}
	if m.err != nil {
		t.Errorf("unexpected error %v", m.err)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	_ = next
	if p.State() != player.Idle {
		t.Errorf("state = %s after quit, want idle", p.State())
	}
}

func TestModelView(t *testing.T) {
	m, p := newTestModel(t)
	if err := p.Start([]int{3, 1, 2}); err != nil {
		t.Fatal(err)
	}
	view := m.View()
	for _, want := range []string{"RUNNING", "comparisons", "classic"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := next.(Model)
	if got.cols != 70 || got.rows != 32 {
		t.Errorf("cols, rows = %d, %d", got.cols, got.rows)
	}
}
