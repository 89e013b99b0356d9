package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
)

// LoadFunc performs the fetch for generation and reports its outcome as a
// FetchSucceeded or FetchFailed event.
type LoadFunc func(ctx context.Context, generation uint64) state.Event

// Options configures the UI.
type Options struct {
	Context   context.Context
	State     state.State // initial, normally Idle
	Load      LoadFunc
	Logger    *slog.Logger
	Endpoint  string
	ThemeName string
	// Prefs receives the theme on every cycle. Nil disables saving.
	Prefs *prefs.Store
	// Copy writes text to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

// Model is the root application state for Bubble Tea. All table data lives
// in state; the model only adds terminal concerns around it.
type Model struct {
	ctx       context.Context
	load      LoadFunc
	logger    *slog.Logger
	endpoint string
	prefs    *prefs.Store
	copy     func(string) error

	state   state.State
	pending state.Effect // fetch requested before the program started

	keys  keyMap
	theme Theme

	width  int
	height int
	ready  bool

	focusCol int // column that sort and resize keys act on
	cursor   int // row within the current page

	searching bool
	search    textinput.Model

	spinner spinner.Model
	pager   paginator.Model
	help    help.Model

	showHelp bool
	dialog   Modal

	drag   *dragState
	notice string
}

// New creates a new Bubble Tea model and requests the initial fetch.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "name, age, gender, phone or address"
	ti.CharLimit = 100

	pager := paginator.New()
	pager.Type = paginator.Dots

	m := Model{
		ctx:      ctx,
		load:     opts.Load,
		logger:   logger,
		endpoint: opts.Endpoint,
		prefs:    opts.Prefs,
		copy:     copyFn,
		keys:     DefaultKeyMap(),
		search:   ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		pager:    pager,
		help:     help.New(),
	}
	m.applyTheme(GetTheme(opts.ThemeName))
	m.state, m.pending = state.Reduce(opts.State, state.FetchRequested{})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.pending.Fetch {
		return nil
	}
	return tea.Batch(m.fetchCmd(m.pending.Generation), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		if m.dialog != nil {
			m.dialog.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case state.Event:
		return m.dispatch(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.dialog != nil {
		return m.dialog.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderTable())
	return b.String()
}

// dispatch runs ev through the reducer and turns the resulting effect into
// commands.
func (m Model) dispatch(ev state.Event) (Model, tea.Cmd) {
	next, eff := state.Reduce(m.state, ev)
	m.state = next

	switch ev.(type) {
	case state.SearchChanged, state.PageChanged, state.ResetRequested, state.FetchSucceeded:
		m.cursor = 0
	}
	m.clampCursor()

	if eff.Rejected != nil {
		m.logger.Warn("resize rejected", "error", eff.Rejected, "remaining", m.state.Layout.Remaining())
		m.notice = eff.Rejected.Error()
	}
	if !eff.Fetch {
		return m, nil
	}
	return m, tea.Batch(m.fetchCmd(eff.Generation), m.spinner.Tick)
}

// fetchCmd runs the load off the update loop. Results for a generation the
// state has moved past are dropped by the reducer.
func (m Model) fetchCmd(generation uint64) tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		if load == nil {
			return state.FetchFailed{Generation: generation, Err: errors.New("no loader configured")}
		}
		return load(ctx, generation)
	}
}

func (m *Model) clampCursor() {
	n := len(m.state.View().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// applyTheme switches palettes, including the bubbles that carry their own styles.
func (m *Model) applyTheme(t Theme) {
	m.theme = t

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))

	m.help.Styles.ShortKey = accent
	m.help.Styles.ShortDesc = muted
	m.help.Styles.ShortSeparator = faint
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	m.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	m.help.Styles.FullSeparator = faint
	m.help.Styles.Ellipsis = faint

	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info))
	m.search.PromptStyle = accent
	m.search.PlaceholderStyle = faint
	m.pager.ActiveDot = accent.Render("•")
	m.pager.InactiveDot = faint.Render("•")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
