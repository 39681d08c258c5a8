// Package tui provides a Bubble Tea terminal user interface for jamz.
//
// The flow is plan-then-confirm: the user enters a directory and a
// rename template, jamz computes the would-be renames without touching
// anything, shows the old -> new plan, and only applies it after an
// explicit confirmation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jamzmusic/jamz/internal/config"
	"github.com/jamzmusic/jamz/internal/organize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StatePlanning
	StateReview
	StateApplying
	StateComplete
	StateError
)

// focus identifies which text input is active.
type focus int

const (
	focusDirectory focus = iota
	focusTemplate
)

// LogEntry represents a diagnostic message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	focus    focus
	dirInput textinput.Model
	tmpInput textinput.Model
	spinner  spinner.Model
	settings *config.Settings
	logs     []LogEntry
	plan     []organize.RenameResult
	applied  int
	err      error

	// Options
	recursive    bool
	ignoreErrors bool
	verbose      bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	settings := config.DefaultSettings()
	if loaded, err := config.Load(config.DefaultPath()); err == nil {
		settings = loaded
	}

	di := textinput.New()
	di.Placeholder = "/path/to/music"
	di.Focus()
	di.CharLimit = 500
	di.Width = 60

	ti := textinput.New()
	ti.Placeholder = settings.DefaultTemplate
	ti.SetValue(settings.DefaultTemplate)
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:        StateInput,
		focus:        focusDirectory,
		dirInput:     di,
		tmpInput:     ti,
		spinner:      sp,
		settings:     settings,
		logs:         make([]LogEntry, 0),
		recursive:    settings.Recursive,
		ignoreErrors: settings.IgnoreErrors,
		verbose:      settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// PlanDoneMsg is sent when the dry-run planning pass completes.
	PlanDoneMsg struct {
		Plan []organize.RenameResult
		Logs []LogEntry
		Err  error
	}

	// ApplyDoneMsg is sent when the confirmed plan has been applied.
	ApplyDoneMsg struct {
		Applied int
		Logs    []LogEntry
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateReview:
				// Back to input without applying anything
				m.state = StateInput
				m.plan = nil
				m.logs = nil
			}

		case "tab":
			if m.state == StateInput {
				if m.focus == focusDirectory {
					m.focus = focusTemplate
					m.dirInput.Blur()
					cmds = append(cmds, m.tmpInput.Focus())
				} else {
					m.focus = focusDirectory
					m.tmpInput.Blur()
					cmds = append(cmds, m.dirInput.Focus())
				}
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.recursive = !m.recursive
			}

		case "ctrl+g":
			if m.state == StateInput {
				m.ignoreErrors = !m.ignoreErrors
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "enter":
			if m.state == StateInput && m.dirInput.Value() != "" && m.tmpInput.Value() != "" {
				m.state = StatePlanning
				m.logs = nil
				return m, tea.Batch(m.planRenames(), m.spinner.Tick)
			}

		case "y":
			if m.state == StateReview && len(m.plan) > 0 {
				m.state = StateApplying
				return m, tea.Batch(m.applyRenames(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError || m.state == StateReview {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another run
				m.state = StateInput
				m.logs = nil
				m.plan = nil
				m.applied = 0
				m.err = nil
				m.focus = focusDirectory
				m.tmpInput.Blur()
				cmds = append(cmds, m.dirInput.Focus())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case PlanDoneMsg:
		m.logs = append(m.logs, msg.Logs...)
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.plan = msg.Plan
			m.state = StateReview
		}

	case ApplyDoneMsg:
		m.logs = append(m.logs, msg.Logs...)
		m.applied = msg.Applied
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}
	}

	// Update the focused text input
	if m.state == StateInput {
		var cmd tea.Cmd
		if m.focus == focusDirectory {
			m.dirInput, cmd = m.dirInput.Update(msg)
		} else {
			m.tmpInput, cmd = m.tmpInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// collectLogs returns a progress callback that appends events to logs,
// honoring the verbose toggle.
func (m *Model) collectLogs(logs *[]LogEntry) func(organize.ProgressEvent) {
	return func(event organize.ProgressEvent) {
		if event.Level == organize.LevelVerbose && !m.verbose {
			return
		}
		*logs = append(*logs, LogEntry{Message: event.Message, Level: event.Level})
	}
}

// planRenames runs the rename workflow in dry-run mode.
func (m *Model) planRenames() tea.Cmd {
	dir := m.dirInput.Value()
	tmpl := m.tmpInput.Value()
	opts := organize.Options{
		Recursive:    m.recursive,
		DryRun:       true,
		IgnoreErrors: m.ignoreErrors,
	}

	return func() tea.Msg {
		var logs []LogEntry
		org := organize.New(m.collectLogs(&logs))
		plan, err := org.Rename(dir, tmpl, opts)
		return PlanDoneMsg{Plan: plan, Logs: logs, Err: err}
	}
}

// applyRenames re-runs the workflow for real. Resolution is
// deterministic, so the applied names match the reviewed plan as long as
// the directory hasn't changed underneath us.
func (m *Model) applyRenames() tea.Cmd {
	dir := m.dirInput.Value()
	tmpl := m.tmpInput.Value()
	opts := organize.Options{
		Recursive:    m.recursive,
		IgnoreErrors: m.ignoreErrors,
	}

	return func() tea.Msg {
		var logs []LogEntry
		org := organize.New(m.collectLogs(&logs))
		results, err := org.Rename(dir, tmpl, opts)
		return ApplyDoneMsg{Applied: len(results), Logs: logs, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 jamz"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Rename audio files based on their tags"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StatePlanning:
		b.WriteString(m.viewSpinner("Reading tags..."))
	case StateReview:
		b.WriteString(m.viewReview())
	case StateApplying:
		b.WriteString(m.viewSpinner("Renaming files..."))
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Directory:"))
	b.WriteString("\n")
	b.WriteString(m.dirInput.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Template:"))
	b.WriteString("\n")
	b.WriteString(m.tmpInput.View())
	b.WriteString("\n\n")

	recursiveCheck := "[ ]"
	if m.recursive {
		recursiveCheck = "[×]"
	}
	ignoreCheck := "[ ]"
	if m.ignoreErrors {
		ignoreCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Recursive (ctrl+r)\n", recursiveCheck))
	b.WriteString(fmt.Sprintf("  %s Ignore errors (ctrl+g)\n", ignoreCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewSpinner(message string) string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(message))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	if len(m.plan) == 0 {
		b.WriteString(warningStyle.Render("Nothing to rename."))
		b.WriteString("\n\n")
		b.WriteString(m.renderLogs())
		return b.String()
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("Planned renames (%d):", len(m.plan))))
	b.WriteString("\n\n")

	// Leave room for header, logs, and footer
	visible := m.height - 12
	if visible < 5 {
		visible = 5
	}
	for i, result := range m.plan {
		if i >= visible {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.plan)-visible)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			result.OldName,
			arrowStyle.Render("->"),
			result.NewName))
	}
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf("✨ Done!\n\nRenamed %d file(s)", m.applied))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	logs := m.logs
	if len(logs) > 10 {
		logs = logs[len(logs)-10:]
	}
	for _, log := range logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: preview renames • tab: switch field • esc: quit"
	case StatePlanning, StateApplying:
		return "ctrl+c: quit"
	case StateReview:
		return "y: apply • esc: back • q: quit"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
