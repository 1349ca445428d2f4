package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roverdeck/internal/guard"
	"roverdeck/internal/nasa"
	"roverdeck/internal/photos"
	"roverdeck/internal/prefs"
	"roverdeck/internal/state"
)

const navPaneWidth = 44

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       photos.Fetcher
	Store        *state.Store
	ThemeName    string
	PrefsPath    string
	InitialRover string // slug from prefs; restores the cursor, not the fetch
}

// Model is the root application state. It exclusively owns the snapshot
// store and the single-flight guard; all mutation flows through Update.
type Model struct {
	ctx       context.Context
	client    photos.Fetcher
	store     *state.Store
	gate      *guard.Guard
	prefsPath string

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	snapshot state.Snapshot
	cursor   int
	fetching bool
	lastErr  string

	spin    spinner.Model
	gallery viewport.Model

	showHelp bool
}

// New creates a new dashboard model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		gate:      &guard.Guard{},
		prefsPath: opts.PrefsPath,
		theme:     theme,
		keys:      DefaultKeyMap(),
		spin:      sp,
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	for i, rover := range m.snapshot.Rovers {
		if nasa.Slug(rover) == opts.InitialRover {
			m.cursor = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Messages

type fetchDoneMsg struct {
	slug string
	res  photos.Result
	err  error
}

// fetchLatestCmd performs the guarded fetch off the update loop.
func fetchLatestCmd(ctx context.Context, client photos.Fetcher, slug string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.FetchLatest(ctx, slug)
		return fetchDoneMsg{slug: slug, res: res, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.gallery = viewport.New(m.galleryWidth(), m.contentHeight())
			m.ready = true
		} else {
			m.gallery.Width = m.galleryWidth()
			m.gallery.Height = m.contentHeight()
		}
		m.gallery.SetContent(renderGallery(m.snapshot.Images, m.theme.Styles()))
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		return m.handleFetchDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.gallery.SetContent(renderGallery(m.snapshot.Images, m.theme.Styles()))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshot.Rovers)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.gallery.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.gallery.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.selectRover()
	}

	return m, nil
}

// selectRover starts the fetch for the rover under the cursor. Re-selecting
// the active rover is a no-op before the guard is consulted; a selection
// attempted while a fetch is outstanding is dropped silently.
func (m Model) selectRover() (tea.Model, tea.Cmd) {
	if len(m.snapshot.Rovers) == 0 || m.cursor >= len(m.snapshot.Rovers) {
		return m, nil
	}
	slug := nasa.Slug(m.snapshot.Rovers[m.cursor])
	if slug == m.snapshot.Active {
		return m, nil
	}
	if !m.gate.TryAcquire() {
		return m, nil
	}
	m.fetching = true
	return m, tea.Batch(m.spin.Tick, fetchLatestCmd(m.ctx, m.client, slug))
}

// handleFetchDone settles the in-flight fetch. On failure the prior snapshot
// stays untouched; on success images and attributes land in one patch.
func (m Model) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	m.gate.Release()
	m.fetching = false

	if msg.err != nil {
		m.lastErr = msg.err.Error()
		return m, nil
	}

	active := msg.slug
	m.snapshot = m.store.Apply(state.Patch{
		Active:     &active,
		Images:     &msg.res.Images,
		Attributes: &msg.res.Attributes,
	})
	m.lastErr = ""
	m.gallery.SetContent(renderGallery(m.snapshot.Images, m.theme.Styles()))
	m.gallery.GotoTop()
	m.savePrefs()
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

	styles := m.theme.Styles()

	var spinView string
	if m.fetching {
		spinView = m.spin.View()
	}

	left := renderNav(m.snapshot, m.cursor, styles)
	if attrs := renderAttributes(m.snapshot.Attributes, styles); attrs != "" {
		left += "\n\n" + attrs
	}
	leftPane := lipgloss.NewStyle().
		Width(navPaneWidth).
		Height(m.contentHeight()).
		Padding(0, 1).
		Render(left)

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, m.gallery.View())

	var b strings.Builder
	b.WriteString(renderHeader(m.snapshot, spinView, m.lastErr, m.width, styles))
	b.WriteString("\n")
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(renderFooter(m.keys, m.width, styles))
	return b.String()
}

func (m Model) galleryWidth() int {
	w := m.width - navPaneWidth
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height - 2 // header and footer rows
	if h < 4 {
		h = 4
	}
	return h
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		LastRover: m.snapshot.Active,
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
