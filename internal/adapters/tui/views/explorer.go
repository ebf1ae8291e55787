package views

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"patternmap/internal/adapters/tui/styles"
	"patternmap/internal/application"
)

const (
	listWidth   = 34
	chromeLines = 9 // Title, filter bar, search line, borders, message and help
	searchTag   = "search"
	resizeTag   = "resize"
)

// ExplorerKeyMap defines key bindings for the explorer view
type ExplorerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Select    key.Binding
	Clear     key.Binding
	Search    key.Binding
	Layer     key.Binding
	AllLayers key.Binding
	Focus     key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var ExplorerKeys = ExplorerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Layer: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "layer"),
	),
	AllLayers: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "all layers"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "scroll detail"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ExplorerOptions tunes the explorer
type ExplorerOptions struct {
	SearchDebounce time.Duration
	ResizeDebounce time.Duration
	Logger         *slog.Logger
	Copy           func(string) error // Defaults to the system clipboard
}

// ExplorerModel lists the patterns that pass the layer filter and search,
// and shows the detail panel of the selection.
type ExplorerModel struct {
	ViewState

	cat    *application.Catalog
	engine *application.Engine
	layers []application.Layer // Layers with patterns, bound to keys 1-9
	rows   []int               // Dataset positions of visible patterns
	pager  *Paginator

	input     textinput.Model
	searching bool

	detail      viewport.Model
	focusDetail bool

	searchDebounce *Debouncer
	resizeDebounce *Debouncer
	copy           func(string) error
	logger         *slog.Logger
}

// NewExplorerModel creates a new explorer over a fresh engine
func NewExplorerModel(cat *application.Catalog, opts ExplorerOptions) *ExplorerModel {
	input := textinput.New()
	input.Placeholder = "label, id or alias"
	input.Prompt = "/ "
	input.CharLimit = 64

	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	m := &ExplorerModel{
		cat:            cat,
		engine:         cat.NewEngine(),
		layers:         cat.Data.ObservedLayers(),
		pager:          NewPaginator(10),
		input:          input,
		detail:         viewport.New(40, 10),
		searchDebounce: NewDebouncer(searchTag, opts.SearchDebounce),
		resizeDebounce: NewDebouncer(resizeTag, opts.ResizeDebounce),
		copy:           opts.Copy,
		logger:         opts.Logger,
	}
	m.refreshRows()
	m.refreshDetail()
	return m
}

// Engine returns the engine holding the explorer's view state
func (m *ExplorerModel) Engine() *application.Engine {
	return m.engine
}

// Init initializes the explorer
func (m *ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the explorer
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.Sized() {
			// First size arrives at startup; lay out immediately
			m.layout(msg.Width, msg.Height)
			return m, nil
		}
		return m, m.resizeDebounce.Trigger(msg)

	case DebouncedMsg:
		return m, m.applyDebounced(msg)

	case copiedMsg:
		m.applyCopied(msg)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m, m.updateSearch(msg)
		}
		if m.focusDetail {
			return m, m.updateDetail(msg)
		}
		return m, m.updateList(msg)
	}

	return m, nil
}

func (m *ExplorerModel) applyDebounced(msg DebouncedMsg) tea.Cmd {
	if msg.Tag == searchTag && m.searchDebounce.Current(msg) {
		m.setQuery(msg.Value.(string))
		return nil
	}
	if msg.Tag == resizeTag && m.resizeDebounce.Current(msg) {
		size := msg.Value.(tea.WindowSizeMsg)
		m.layout(size.Width, size.Height)
		return nil
	}
	m.logger.Debug("debounce_superseded", "tag", msg.Tag, "seq", msg.Seq)
	return nil
}

func (m *ExplorerModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchDebounce.Cancel()
		m.input.SetValue("")
		m.input.Blur()
		m.searching = false
		m.setQuery("")
		return nil
	case tea.KeyEnter:
		m.searchDebounce.Cancel()
		m.input.Blur()
		m.searching = false
		m.setQuery(m.input.Value())
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.searchDebounce.Trigger(m.input.Value()))
}

func (m *ExplorerModel) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ExplorerKeys.Focus), key.Matches(msg, ExplorerKeys.Clear):
		m.focusDetail = false
		return nil
	case key.Matches(msg, ExplorerKeys.Quit):
		return tea.Quit
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

func (m *ExplorerModel) updateList(msg tea.KeyMsg) tea.Cmd {
	m.ClearMessage()

	switch {
	case key.Matches(msg, ExplorerKeys.Quit):
		return tea.Quit

	case key.Matches(msg, ExplorerKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, ExplorerKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, ExplorerKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(msg, ExplorerKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, ExplorerKeys.Select):
		if p := m.cursorPattern(); p != nil {
			m.selectPattern(p.ShortID)
		}

	case key.Matches(msg, ExplorerKeys.Clear):
		m.engine.Clear()
		m.refreshDetail()

	case key.Matches(msg, ExplorerKeys.Search):
		m.searching = true
		return m.input.Focus()

	case key.Matches(msg, ExplorerKeys.Layer):
		n, _ := strconv.Atoi(msg.String())
		m.toggleLayer(n)

	case key.Matches(msg, ExplorerKeys.AllLayers):
		if err := m.engine.SetLayerFilters(nil); err != nil {
			m.SetError(err)
		}
		m.refreshRows()

	case key.Matches(msg, ExplorerKeys.Focus):
		m.focusDetail = true

	case key.Matches(msg, ExplorerKeys.Copy):
		id, ok := m.engine.Selected()
		if !ok {
			if p := m.cursorPattern(); p != nil {
				id, ok = p.ShortID, true
			}
		}
		if ok {
			return m.copyID(id)
		}

	case key.Matches(msg, ExplorerKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *ExplorerModel) copyID(id string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{id: id, err: write(id)}
	}
}

func (m *ExplorerModel) selectPattern(id string) {
	if err := m.engine.Select(id); err != nil {
		m.SetError(err)
		return
	}
	m.logger.Debug("select", "pattern", id)
	m.refreshDetail()
}

// toggleLayer flips the n-th legend layer (1-based)
func (m *ExplorerModel) toggleLayer(n int) {
	if n < 1 || n > len(m.layers) {
		m.SetMessage(fmt.Sprintf("no layer bound to %d", n), true)
		return
	}
	l := m.layers[n-1]
	if err := m.engine.ToggleLayerFilter(l.Key); err != nil {
		m.SetError(err)
		return
	}
	m.logger.Debug("toggle_layer", "layer", l.Key, "active", m.engine.LayerActive(l.Key))
	m.refreshRows()
}

func (m *ExplorerModel) setQuery(q string) {
	m.engine.SetSearchQuery(q)
	m.logger.Debug("search", "query", m.engine.Query())
	m.refreshRows()
}

// refreshRows rebuilds the visible rows, keeping the cursor on the same
// pattern when it is still visible.
func (m *ExplorerModel) refreshRows() {
	var current string
	if p := m.cursorPattern(); p != nil {
		current = p.ShortID
	}

	m.rows = m.rows[:0]
	for i := range m.cat.Data.Patterns {
		if m.engine.Node(i).Visible {
			m.rows = append(m.rows, i)
		}
	}
	m.pager.SetTotal(len(m.rows))

	for r, i := range m.rows {
		if m.cat.Data.Patterns[i].ShortID == current {
			m.pager.SetCursor(r)
			return
		}
	}
	m.pager.SetCursor(0)
}

func (m *ExplorerModel) refreshDetail() {
	var d *application.Detail
	if id, ok := m.engine.Selected(); ok {
		built, err := application.BuildDetail(m.engine, id)
		if err != nil {
			m.SetError(err)
		}
		d = built
	}
	m.detail.SetContent(RenderDetail(d, m.detail.Width))
	m.detail.GotoTop()
}

func (m *ExplorerModel) layout(width, height int) {
	m.SetSize(width, height)

	bodyHeight := m.BodyHeight(chromeLines)
	m.pager = resizePager(m.pager, bodyHeight, len(m.rows))
	m.detail.Width = max(width-listWidth-12, 20)
	m.detail.Height = bodyHeight
	m.refreshDetail()
}

// resizePager swaps in a paginator with a new page size, keeping the cursor
func resizePager(p *Paginator, pageSize, total int) *Paginator {
	next := NewPaginator(pageSize)
	next.SetTotal(total)
	next.SetCursor(p.Cursor())
	return next
}

func (m *ExplorerModel) cursorPattern() *application.Pattern {
	c := m.pager.Cursor()
	if c < 0 || c >= len(m.rows) {
		return nil
	}
	return &m.cat.Data.Patterns[m.rows[c]]
}

// Searching reports whether the search input has focus
func (m *ExplorerModel) Searching() bool {
	return m.searching
}

// View renders the explorer
func (m *ExplorerModel) View() string {
	v := NewViewBuilder()

	nodes, edges := m.engine.VisibleCount()
	v.Raw(styles.Title.UnsetMarginBottom().Render("Pattern Map"))
	v.Raw("  ")
	v.Line(styles.StatusBar.Render(fmt.Sprintf("%d patterns · %d links", nodes, edges)))
	v.Line(m.renderFilterBar())

	if m.searching || m.input.Value() != "" {
		v.Line(m.input.View())
	} else {
		v.Line(RenderMuted("/ to search"))
	}

	listStyle, detailStyle := styles.PanelFocused, styles.Panel
	if m.focusDetail {
		listStyle, detailStyle = styles.Panel, styles.PanelFocused
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(listWidth).Render(m.renderList()),
		detailStyle.Render(m.detail.View()),
	)
	v.Line(body)

	if m.Message != "" {
		v.Line(RenderMessage(m.Message, m.MessageErr))
	}
	if m.searching {
		v.Help(searchHelp...)
	} else {
		k := ExplorerKeys
		v.Help(k.Up, k.Down, k.Select, k.Clear, k.Search, k.Layer, k.Copy, k.Help, k.Quit)
	}
	return v.String()
}

var searchHelp = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
}

func (m *ExplorerModel) renderFilterBar() string {
	var parts []string
	for i, l := range m.layers {
		if i >= 9 {
			break
		}
		label := fmt.Sprintf("%d %s", i+1, l.Name)
		if m.engine.LayerActive(l.Key) {
			parts = append(parts, styles.FilterActive.Background(styles.LayerColor(l.Color)).Render(label))
		} else {
			parts = append(parts, styles.Swatch(l.Color)+styles.FilterInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *ExplorerModel) renderList() string {
	if len(m.rows) == 0 {
		return RenderMuted("No patterns match")
	}

	var b strings.Builder
	start, end := m.pager.VisibleRange()
	for r := start; r < end; r++ {
		i := m.rows[r]
		p := &m.cat.Data.Patterns[i]
		flags := m.engine.Node(i)

		color := ""
		if l, ok := m.cat.Data.Layer(p.Layer); ok {
			color = l.Color
		}

		marker := "  "
		if flags.Selected {
			marker = "● "
		}
		text := styles.NodeID.Render(p.ShortID) + truncate(p.Label, listWidth-10)

		switch {
		case r == m.pager.Cursor():
			text = styles.NodeCursor.Render(text)
		case flags.Selected:
			text = styles.NodeSelected.Render(text)
		case flags.Dimmed:
			text = styles.NodeDimmed.Render(text)
		}
		b.WriteString(marker + styles.Swatch(color) + " " + text + "\n")
	}

	if m.pager.TotalPages() > 1 {
		b.WriteString(RenderMuted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
