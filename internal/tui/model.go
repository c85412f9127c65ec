// Package tui implements the interactive frontend: a directory browser
// for MIDI files and a scrollable viewer for rendered prompts.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kraftist/midi-inspo/internal/pipeline"
	"github.com/Kraftist/midi-inspo/internal/report"
)

// screen identifies which of the two views the model renders.
type screen int

const (
	screenBrowse screen = iota
	screenView
)

// Model is the bubbletea model for the interactive frontend.
type Model struct {
	dir    string
	files  []string
	cursor int

	screen  screen
	result  *pipeline.Result
	current string // file shown in the viewer
	mode    report.Mode
	seed    *int64
	scroll  int

	width  int
	height int
	err    error

	quitting bool

	// nextSeed supplies reroll seeds; swapped out by tests.
	nextSeed func() int64
}

// New builds a model browsing dir. The options carry the appendix mode
// and seed the CLI resolved from flags and environment.
func New(dir string, opts pipeline.Options) Model {
	files, err := listMIDIFiles(dir)
	return Model{
		dir:      dir,
		files:    files,
		mode:     opts.Mode,
		seed:     opts.Seed,
		err:      err,
		nextSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// listMIDIFiles returns the .mid/.midi entries of dir in directory order.
func listMIDIFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".mid" || ext == ".midi" {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenView {
			return m.updateViewer(msg)
		}
		return m.updateBrowser(msg)
	}

	return m, nil
}

func (m Model) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.files) == 0 {
			return m, nil
		}
		return m.runSelected(), nil
	}
	return m, nil
}

func (m Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenBrowse
		m.scroll = 0
	case "f":
		m.mode = toggleMode(m.mode, report.ModeWithFeatures)
	case "j":
		m.mode = toggleMode(m.mode, report.ModeWithJSON)
	case "r":
		seed := m.nextSeed()
		m.seed = &seed
		return m.rerun(), nil
	case "up":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down":
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
	}
	return m, nil
}

// toggleMode flips the requested appendix on or off; switching from the
// other appendix replaces it, so at most one is ever active.
func toggleMode(current, requested report.Mode) report.Mode {
	if current == requested {
		return report.ModePromptOnly
	}
	return requested
}

// runSelected runs the pipeline on the file under the cursor.
func (m Model) runSelected() Model {
	name := m.files[m.cursor]
	res, err := pipeline.Run(filepath.Join(m.dir, name), pipeline.Options{
		Mode: m.mode,
		Seed: m.seed,
	})
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.result = res
	m.current = name
	m.screen = screenView
	m.scroll = 0
	return m
}

// rerun regenerates the prompt for the file already in the viewer.
func (m Model) rerun() Model {
	res, err := pipeline.Run(filepath.Join(m.dir, m.current), pipeline.Options{
		Mode: m.mode,
		Seed: m.seed,
	})
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.result = res
	m.scroll = 0
	return m
}

// body renders the viewer content with the active appendix.
func (m Model) body() string {
	if m.result == nil {
		return ""
	}
	return report.Compose(m.result.Prompt, m.result.Features, m.mode)
}

// visibleLines reports how many body lines fit the viewer, leaving room
// for the title and help chrome. Zero height means no terminal yet, so
// everything is shown.
func (m Model) visibleLines() int {
	if m.height == 0 {
		return 0
	}
	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m Model) maxScroll() int {
	visible := m.visibleLines()
	if visible == 0 {
		return 0
	}
	lines := strings.Count(m.body(), "\n") + 1
	if lines <= visible {
		return 0
	}
	return lines - visible
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	var out strings.Builder

	if m.screen == screenView {
		title := fmt.Sprintf("midi-inspo  %s%s", m.current, modeBadge(m.mode))
		out.WriteString(titleStyle.Render(title))
		out.WriteString("\n\n")

		lines := strings.Split(m.body(), "\n")
		start := m.scroll
		if start > len(lines) {
			start = len(lines)
		}
		end := len(lines)
		if visible := m.visibleLines(); visible > 0 && start+visible < end {
			end = start + visible
		}
		out.WriteString(strings.Join(lines[start:end], "\n"))
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render("f:features  j:json  r:reroll  ↑/↓:scroll  esc:back  q:quit"))
		if m.err != nil {
			out.WriteString("\n")
			out.WriteString(errStyle.Render(m.err.Error()))
		}
		return out.String()
	}

	out.WriteString(titleStyle.Render("midi-inspo  " + m.dir))
	out.WriteString("\n\n")

	if len(m.files) == 0 {
		out.WriteString(dimStyle.Render("no .mid or .midi files here"))
		out.WriteString("\n")
	}
	for i, name := range m.files {
		if i == m.cursor {
			out.WriteString(cursorStyle.Render("> " + name))
		} else {
			out.WriteString("  " + name)
		}
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("↑/↓:move  enter:inspire  q:quit"))
	if m.err != nil {
		out.WriteString("\n")
		out.WriteString(errStyle.Render(m.err.Error()))
	}
	return out.String()
}

// modeBadge labels the active appendix in the viewer title.
func modeBadge(mode report.Mode) string {
	switch mode {
	case report.ModeWithFeatures:
		return "  [features]"
	case report.ModeWithJSON:
		return "  [json]"
	}
	return ""
}

// Run starts the interactive frontend on the given directory.
func Run(dir string, opts pipeline.Options) error {
	p := tea.NewProgram(New(dir, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
