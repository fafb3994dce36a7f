package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/dashboard"
	"github.com/spiffcs/repodash/internal/filter"
	"github.com/spiffcs/repodash/internal/format"
	"github.com/spiffcs/repodash/internal/log"
	"github.com/spiffcs/repodash/internal/model"
)

// pane is one of the main-area views
type pane int

const (
	paneOverview pane = iota
	paneTable
	paneScatter
	paneSearch
	paneCount
)

var paneNames = [paneCount]string{"Overview", "Table", "Scatter", "Search"}

// focus is the area that receives cursor movement
type focus int

const (
	focusMain focus = iota
	focusSidebar
)

// sortColumns is the cycle order for the table sort key. The empty column
// keeps dataset order.
var sortColumns = []model.Column{
	"",
	model.ColumnStars,
	model.ColumnForks,
	model.ColumnIssues,
	model.ColumnName,
	model.ColumnLanguage,
}

// DashboardModel is the Bubble Tea model for the interactive dashboard.
// Every selection change recomputes the snapshot synchronously.
// noLanguageColumn is the status shown when a language key is pressed on
// a dataset without a language column.
const noLanguageColumn = "Language filter unavailable: dataset has no language column"

type DashboardModel struct {
	ds       *model.Dataset
	defaults filter.Selection
	sel      filter.Selection
	snap     dashboard.Snapshot
	results  model.View

	languages []string       // sidebar entries in dataset order
	langIndex map[string]int // palette index per language

	tableRows []model.Record // snap.View sorted for the table pane
	sortCol   model.Column
	sortDesc  bool
	logScale  bool

	activePane   pane
	focus        focus
	langCursor   int
	tableCursor  int
	searchCursor int

	search   textinput.Model
	shareBar progress.Model

	starStep        int
	topLanguages    int
	issueThresholds format.IssueThresholds

	windowWidth  int
	windowHeight int
	statusMsg    string
	quitting     bool
}

// Option is a functional option for configuring DashboardModel
type Option func(*DashboardModel)

// WithStarStep sets how far one key press moves a star bound.
func WithStarStep(step int) Option {
	return func(m *DashboardModel) {
		if step > 0 {
			m.starStep = step
		}
	}
}

// WithTopLanguages caps the language share bars on the overview pane.
func WithTopLanguages(n int) Option {
	return func(m *DashboardModel) {
		if n > 0 {
			m.topLanguages = n
		}
	}
}

// WithDefaults sets the selection that "r" resets to. Without it the
// dataset default is used.
func WithDefaults(sel filter.Selection) Option {
	return func(m *DashboardModel) {
		m.defaults = sel
	}
}

// WithQuery pre-fills the search box and opens the search pane.
func WithQuery(query string) Option {
	return func(m *DashboardModel) {
		m.search.SetValue(query)
		if query != "" {
			m.activePane = paneSearch
		}
	}
}

// WithIssueThresholds sets the buckets used for scatter glyphs.
func WithIssueThresholds(t format.IssueThresholds) Option {
	return func(m *DashboardModel) {
		m.issueThresholds = t
	}
}

// NewDashboardModel creates a dashboard over ds starting from sel.
func NewDashboardModel(ds *model.Dataset, sel filter.Selection, opts ...Option) DashboardModel {
	search := textinput.New()
	search.Placeholder = "repository name"
	search.Prompt = "Search: "
	search.CharLimit = 128

	m := DashboardModel{
		ds:              ds,
		defaults:        filter.Default(ds),
		sel:             sel,
		languages:       ds.Languages(),
		langIndex:       make(map[string]int),
		search:          search,
		shareBar:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		starStep:        constants.DefaultStarStep,
		topLanguages:    constants.DefaultTopLanguages,
		issueThresholds: format.DefaultIssueThresholds,
		windowWidth:     120,
		windowHeight:    32,
	}
	for i, l := range m.languages {
		m.langIndex[l] = i
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.activePane == paneSearch {
		m.search.Focus()
	}
	m.resize()
	m.recompute()
	return m
}

// Selection returns the current selection.
func (m DashboardModel) Selection() filter.Selection {
	return m.sel
}

// Snapshot returns the snapshot for the current selection.
func (m DashboardModel) Snapshot() dashboard.Snapshot {
	return m.snap
}

// recompute runs the filter/aggregate pass and refreshes the derived
// per-pane state.
func (m *DashboardModel) recompute() {
	m.snap = dashboard.Compute(m.ds, m.sel)
	m.results = m.snap.Search(m.search.Value())
	m.tableRows = sortRecords(m.snap.View.Records, m.sortCol, m.sortDesc)
	m.tableCursor = clampCursor(m.tableCursor, len(m.tableRows))
	m.searchCursor = clampCursor(m.searchCursor, m.results.Len())
}

func (m *DashboardModel) setSelection(sel filter.Selection) {
	m.sel = sel
	log.Debug("selection changed",
		"languages", sel.Count(),
		"min", sel.MinStars,
		"max", sel.MaxStars)
	m.recompute()
}

// resize fits the width-dependent widgets to the window.
func (m *DashboardModel) resize() {
	m.shareBar.Width = max(10, min(constants.MaxBarWidth, m.mainWidth()/3))
	m.search.Width = max(10, m.mainWidth()-len(m.search.Prompt)-2)
}

func (m DashboardModel) mainWidth() int {
	return max(20, m.windowWidth-constants.SidebarWidth-2)
}

func (m DashboardModel) bodyHeight() int {
	return max(5, m.windowHeight-constants.HeaderLines-constants.FooterLines)
}

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	if m.activePane == paneSearch {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	if m.activePane == paneSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input
func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.activePane == paneSearch {
		return m.handleSearchKey(msg)
	}

	switch key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		return m, m.setPane((m.activePane + 1) % paneCount)

	case "shift+tab":
		return m, m.setPane((m.activePane + paneCount - 1) % paneCount)

	case "1", "2", "3", "4":
		return m, m.setPane(pane(key[0] - '1'))

	case "/":
		return m, m.setPane(paneSearch)

	case "h", "left":
		m.focus = focusSidebar
		return m, nil

	case "l", "right":
		m.focus = focusMain
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "g", "home":
		m.moveCursor(-len(m.ds.Languages()) - m.ds.Len())
		return m, nil

	case "G", "end":
		m.moveCursor(len(m.ds.Languages()) + m.ds.Len())
		return m, nil

	case " ", "space", "x":
		if m.focus != focusSidebar || len(m.languages) == 0 {
			return m, nil
		}
		lang := m.languages[m.langCursor]
		m.setSelection(m.sel.Toggle(lang))
		state := "hidden"
		if m.sel.Has(lang) {
			state = "shown"
		}
		return m.withStatus(fmt.Sprintf("%s %s", model.LanguageLabel(lang), state))

	case "a", "n":
		if !m.ds.HasColumn(model.ColumnLanguage) {
			return m.withStatus(noLanguageColumn)
		}
		if msg.String() == "a" {
			m.setSelection(m.sel.WithLanguages(m.languages))
			return m.withStatus("All languages selected")
		}
		m.setSelection(m.sel.WithLanguages(nil))
		return m.withStatus("No languages selected")

	case "[":
		m.shiftMin(-m.starStep)
		return m, nil

	case "]":
		m.shiftMin(m.starStep)
		return m, nil

	case "{":
		m.shiftMax(-m.starStep)
		return m, nil

	case "}":
		m.shiftMax(m.starStep)
		return m, nil

	case "r":
		m.setSelection(m.defaults)
		return m.withStatus("Filters reset")

	case "s":
		m.cycleSort()
		return m, nil

	case "S":
		m.sortDesc = !m.sortDesc
		m.tableRows = sortRecords(m.snap.View.Records, m.sortCol, m.sortDesc)
		return m, nil

	case "L":
		m.logScale = !m.logScale
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes keys while the search box has focus. Printable
// keys go to the text input.
func (m DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.setPane(paneOverview)
	case "tab":
		return m, m.setPane(paneOverview)
	case "shift+tab":
		return m, m.setPane(paneScatter)
	case "up", "ctrl+p":
		m.searchCursor = clampCursor(m.searchCursor-1, m.results.Len())
		return m, nil
	case "down", "ctrl+n":
		m.searchCursor = clampCursor(m.searchCursor+1, m.results.Len())
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != prev {
		m.results = m.snap.Search(q)
		m.searchCursor = 0
		log.Trace("search updated", "query", q, "matches", m.results.Len())
	}
	return m, cmd
}

// setPane switches the main area, moving keyboard focus into or out of the
// search box.
func (m *DashboardModel) setPane(p pane) tea.Cmd {
	if p < 0 || p >= paneCount {
		return nil
	}
	m.activePane = p
	if p == paneSearch {
		m.focus = focusMain
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *DashboardModel) moveCursor(delta int) {
	if m.focus == focusSidebar {
		m.langCursor = clampCursor(m.langCursor+delta, len(m.languages))
		return
	}
	if m.activePane == paneTable {
		m.tableCursor = clampCursor(m.tableCursor+delta, len(m.tableRows))
	}
}

// shiftMin moves the lower star bound, keeping it within the dataset
// bounds and at or below the upper bound.
func (m *DashboardModel) shiftMin(delta int) {
	lo, _ := m.ds.StarBounds()
	v := min(max(m.sel.MinStars+delta, lo), m.sel.MaxStars)
	if v == m.sel.MinStars {
		return
	}
	m.setSelection(m.sel.WithRange(v, m.sel.MaxStars))
}

// shiftMax moves the upper star bound, keeping it within the dataset
// bounds and at or above the lower bound.
func (m *DashboardModel) shiftMax(delta int) {
	_, hi := m.ds.StarBounds()
	v := max(min(m.sel.MaxStars+delta, hi), m.sel.MinStars)
	if v == m.sel.MaxStars {
		return
	}
	m.setSelection(m.sel.WithRange(m.sel.MinStars, v))
}

func (m *DashboardModel) cycleSort() {
	next := 0
	for i, c := range sortColumns {
		if c == m.sortCol {
			next = (i + 1) % len(sortColumns)
			break
		}
	}
	for range sortColumns {
		c := sortColumns[next]
		if c == "" || m.snap.View.HasColumn(c) {
			m.sortCol = c
			break
		}
		next = (next + 1) % len(sortColumns)
	}
	m.tableRows = sortRecords(m.snap.View.Records, m.sortCol, m.sortDesc)
}

func (m DashboardModel) withStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	return m, clearStatusAfter(2 * time.Second)
}

// View implements tea.Model
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	return renderDashboard(m)
}

// clearStatusMsg is a message to clear the status
type clearStatusMsg struct{}

// clearStatusAfter returns a command that clears the status after a delay
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// sortRecords returns a sorted copy of records. An empty column keeps the
// input order. Ties keep input order.
func sortRecords(records []model.Record, col model.Column, desc bool) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)
	if col == "" {
		return out
	}

	compare := func(a, b model.Record) int {
		switch col {
		case model.ColumnStars:
			return a.Stars - b.Stars
		case model.ColumnForks:
			return a.Forks - b.Forks
		case model.ColumnIssues:
			return a.Issues - b.Issues
		case model.ColumnLanguage:
			return strings.Compare(strings.ToLower(a.Language), strings.ToLower(b.Language))
		default:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func clampCursor(cursor, total int) int {
	if total <= 0 {
		return 0
	}
	return min(max(cursor, 0), total-1)
}
