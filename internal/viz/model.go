package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	frameRate   = 30
	defaultCols = 64
	defaultRows = 16
	minDelay    = time.Millisecond
	maxDelay    = 2 * time.Second
)

type TickMsg time.Time

type errMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is a view over a Player. The player owns the run; the model only
// reads snapshots and forwards key presses as player commands.
type Model struct {
	player   *player.Player
	stats    *metrics.Observer
	theme    Theme
	cols     int
	rows     int
	showHelp bool
	err      error
}

func NewModel(p *player.Player, stats *metrics.Observer, theme Theme) Model {
	return Model{
		player: p,
		stats:  stats,
		theme:  theme,
		cols:   defaultCols,
		rows:   defaultRows,
	}
}

func (m Model) Init() tea.Cmd {
	start := func() tea.Msg {
		if err := m.player.Start(nil); err != nil {
			return errMsg{err}
		}
		return nil
	}
	return tea.Batch(start, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.player.Stop()
			return m, tea.Quit
		case "r":
			m.err = m.player.Reset(nil)
		case " ":
			if m.player.State() == player.Paused {
				m.player.Resume()
			} else {
				m.player.Pause()
			}
		case "+", "=":
			m.player.SetDelay(max(m.player.Delay()/2, minDelay))
		case "-", "_":
			m.player.SetDelay(min(m.player.Delay()*2, maxDelay))
		case "t":
			m.theme = NextTheme(m.theme)
		case "a", "tab":
			m.err = m.switchAlgorithm(nextAlgorithm(m.player.Algorithm()))
		case "1", "2", "3", "4":
			m.err = m.switchAlgorithm(sorting.Algorithms[msg.String()[0]-'1'])
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-50, 16)
		m.rows = max(msg.Height-8, 4)
	case errMsg:
		m.err = msg.err
	case TickMsg:
		return m, tick()
	}
	return m, nil
}

func (m Model) switchAlgorithm(alg sorting.Algorithm) error {
	if err := m.player.SetAlgorithm(alg); err != nil {
		return err
	}
	return m.player.Reset(nil)
}

func nextAlgorithm(current sorting.Algorithm) sorting.Algorithm {
	for i, alg := range sorting.Algorithms {
		if alg == current {
			return sorting.Algorithms[(i+1)%len(sorting.Algorithms)]
		}
	}
	return sorting.Algorithms[0]
}

func (m Model) View() string {
	frame := m.player.Snapshot()
	bars := panelStyle.Render(DrawBars(frame.Step, m.theme, m.cols, m.rows))

	var s strings.Builder
	title := fmt.Sprintf("%s sort", strings.ToUpper(string(m.player.Algorithm())))
	s.WriteString(GradientText(title, m.theme.Primary, m.theme.Secondary) + "\n")
	s.WriteString(statusLine(frame.State) + "\n\n")

	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d (%s)", frame.Seq, frame.Step.Kind)) + "\n")
	s.WriteString(labelStyle.Render("Delay") + valueStyle.Render(m.player.Delay().String()) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	if m.stats != nil {
		vals := m.stats.Values()
		for _, name := range []string{"comparisons", "writes", "inversions"} {
			if v, ok := vals[name]; ok {
				s.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.0f", v)) + "\n")
			}
		}
		hist := m.stats.Inversions()
		if len(hist) > 0 && hist[0] > 0 {
			s.WriteString(labelStyle.Render("sorted") + ProgressBar(1-hist[len(hist)-1]/hist[0], 20) + "\n")
		}
		if len(hist) > 1 {
			s.WriteString(labelStyle.Render("trend") + SparklineChart(hist, 20) + "\n")
			chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Inversions"))
			s.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit\nA:Next  +/-:Speed T:Theme ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, bars, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

func statusLine(s player.State) string {
	switch s {
	case player.Running:
		return StatusRunning.Render("RUNNING")
	case player.Paused:
		return StatusPaused.Render("PAUSED")
	case player.Finished:
		return StatusFinished.Render("SORTED")
	default:
		return labelStyle.Render("IDLE")
	}
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reshuffle and restart    ║
║  A / Tab  - Next algorithm           ║
║  1-4      - Bubble/Insert/Merge/Quick║
║  + / -    - Faster / slower          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the TUI and blocks until the user quits.
func Run(p *player.Player, stats *metrics.Observer, theme Theme) error {
	if stats != nil {
		p.AddObserver(stats)
	}
	_, err := tea.NewProgram(NewModel(p, stats, theme), tea.WithAltScreen()).Run()
	return err
}
