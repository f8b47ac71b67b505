// Package statsui provides the Bubble Tea dashboard.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/hoopmetrics/internal/entry"
	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/session"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
)

const (
	tabDashboard = iota
	tabHistory
	tabCompare
)

const (
	fieldDate = iota
	fieldMade
	fieldAttempted
	fieldType
	fieldLocation
	fieldNotes
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#E07A1F"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#E07A1F")).
			Padding(1, 2)
)

// compareReadyMsg ends the loading delay of the comparison view started by seq.
type compareReadyMsg struct {
	seq int
}

// Model implements the Bubble Tea dashboard.
type Model struct {
	store *session.Store
	cfg   model.DashboardConfig
	ids   entry.IDSource
	now   func() time.Time

	errMsg string

	tabs      []string
	activeTab int
	viewports []viewport.Model

	width  int
	height int

	history      table.Model
	historyRows  []stats.IndexedSession
	page         int
	search       string
	searchMode   bool
	searchInput  textinput.Model
	confirmMode  bool
	pendingIndex int

	formMode   bool
	formInputs []textinput.Model
	formIndex  int
	formError  string

	spinner        spinner.Model
	compareLoading bool
	compareLoaded  bool
	compareSeq     int
	comparison     stats.Comparison
}

// NewModel constructs a dashboard model over an already rehydrated store.
func NewModel(st *session.Store, cfg model.DashboardConfig) *Model {
	if cfg.SortField == "" {
		cfg.SortField = "percentage"
	}
	if cfg.SortOrder == "" {
		cfg.SortOrder = model.Desc
	}
	if cfg.DefaultType == "" {
		cfg.DefaultType = model.ShotTwo
	}
	m := &Model{
		store:   st,
		cfg:     cfg,
		now:     time.Now,
		tabs:    []string{"Dashboard", "History", "Compare"},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, s := range st.Sessions() {
		m.ids.Observe(s.ID)
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.searchInput = newInput("Search: ")
	m.searchInput.Placeholder = "date, location, notes or type"
	m.initForm()
	m.history = table.New(
		table.WithColumns(historyColumns(80)),
		table.WithHeight(1),
		table.WithFocused(true),
	)
	m.history.SetStyles(tableStyles())
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case spinner.TickMsg:
		if !m.compareLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case compareReadyMsg:
		if msg.seq != m.compareSeq {
			return m, nil
		}
		m.compareLoading = false
		m.compareLoaded = true
		m.comparison = stats.Compare(m.store.Stats(), m.store.Len())
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.formMode:
			return m.updateForm(msg)
		case m.confirmMode:
			return m.updateConfirm(msg)
		case m.searchMode:
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			return m, m.moveTab(-1)
		case "right", "l", "tab":
			return m, m.moveTab(1)
		case "a":
			return m.startForm()
		}
		switch m.activeTab {
		case tabHistory:
			return m.updateHistory(msg)
		case tabCompare:
			return m.updateCompare(msg)
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.formMode {
		return fitLines(m.renderForm(), m.width, m.height)
	}
	if m.confirmMode {
		return fitLines(m.renderConfirm(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func newInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) initForm() {
	m.formInputs = []textinput.Model{
		newInput("Date (YYYY-MM-DD): "),
		newInput("Shots made: "),
		newInput("Shots attempted: "),
		newInput("Shot type (2pt/3pt/ft): "),
		newInput("Location: "),
		newInput("Notes: "),
	}
	m.formInputs[fieldLocation].Placeholder = "Home court"
	m.formInputs[fieldNotes].CharLimit = 200
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.history.SetColumns(historyColumns(m.width))
	m.history.SetWidth(m.width)
	m.history.SetHeight(maxInt(2, bodyHeight-2))
	m.searchInput.Width = maxInt(10, m.width-lipgloss.Width(m.searchInput.Prompt)-2)
	for i := range m.formInputs {
		promptWidth := lipgloss.Width(m.formInputs[i].Prompt)
		m.formInputs[i].Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
	}
}

func (m *Model) moveTab(delta int) tea.Cmd {
	count := len(m.tabs)
	if count == 0 {
		return nil
	}
	next := (m.activeTab + delta + count) % count
	m.activeTab = next
	if m.activeTab == tabHistory {
		m.history.Focus()
	} else {
		m.history.Blur()
	}
	if m.activeTab == tabCompare {
		return tea.Batch(tea.ClearScreen, m.startCompare())
	}
	return tea.ClearScreen
}

// startCompare restarts the loading delay; a pending ready message from an
// earlier visit is ignored through the sequence number.
func (m *Model) startCompare() tea.Cmd {
	m.compareSeq++
	m.compareLoading = true
	m.compareLoaded = false
	m.renderTabContents()
	return tea.Batch(m.spinner.Tick, compareDelay(m.compareSeq, m.cfg.CompareDelay))
}

func compareDelay(seq, delayMs int) tea.Cmd {
	if delayMs <= 0 {
		return func() tea.Msg {
			return compareReadyMsg{seq: seq}
		}
	}
	return tea.Tick(time.Duration(delayMs)*time.Millisecond, func(time.Time) tea.Msg {
		return compareReadyMsg{seq: seq}
	})
}

// refresh recomputes everything derived from the store.
func (m *Model) refresh() {
	m.historyRows = stats.FilterSessions(m.store.Sessions(), m.search)
	m.applyHistoryPage()
	if m.compareLoaded {
		m.comparison = stats.Compare(m.store.Stats(), m.store.Len())
	}
	m.renderTabContents()
}

func (m *Model) applyHistoryPage() {
	start, end := stats.Page(len(m.historyRows), m.page, m.cfg.PageSize)
	if m.cfg.PageSize > 0 && len(m.historyRows) > 0 {
		m.page = start / m.cfg.PageSize
	} else {
		m.page = 0
	}
	rows := make([]table.Row, 0, end-start)
	for _, item := range m.historyRows[start:end] {
		rows = append(rows, table.Row(stats.SessionRow(item)))
	}
	m.history.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	cur := m.history.Cursor()
	if cur >= len(rows) {
		cur = len(rows) - 1
	}
	if cur < 0 {
		cur = 0
	}
	if cur != m.history.Cursor() {
		m.history.SetCursor(cur)
	}
}

func (m *Model) resetCursor() {
	if len(m.history.Rows()) > 0 {
		m.history.SetCursor(0)
	}
}

func (m *Model) pageCount() int {
	if m.cfg.PageSize <= 0 || len(m.historyRows) == 0 {
		return 1
	}
	return (len(m.historyRows) + m.cfg.PageSize - 1) / m.cfg.PageSize
}

// selectedIndex maps the highlighted history row to its stored index.
func (m *Model) selectedIndex() (int, bool) {
	if len(m.historyRows) == 0 {
		return 0, false
	}
	start, end := stats.Page(len(m.historyRows), m.page, m.cfg.PageSize)
	pos := start + m.history.Cursor()
	if pos < start || pos >= end {
		return 0, false
	}
	return m.historyRows[pos].Index, true
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	sessions := m.store.Sessions()
	m.viewports[tabDashboard].SetContent(renderDashboard(sessions, m.store.Stats(), m.cfg.Recent, width))
	switch {
	case m.compareLoading:
		m.viewports[tabCompare].SetContent("")
	case m.compareLoaded:
		m.viewports[tabCompare].SetContent(renderCompare(m.comparison, m.cfg.SortField, m.cfg.SortOrder, width))
	default:
		m.viewports[tabCompare].SetContent("Open this tab to load the comparison.")
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	status := padLines(m.renderStatus(), m.width)
	return tabs + "\n" + status
}

func (m *Model) renderStatus() string {
	var summary string
	switch m.activeTab {
	case tabHistory:
		search := "none"
		if m.search != "" {
			search = m.search
		}
		summary = fmt.Sprintf("Sessions: %d  page=%d/%d  search=%s", len(m.historyRows), m.page+1, m.pageCount(), search)
	case tabCompare:
		summary = fmt.Sprintf("Sort: %s %s", columnTitle(m.cfg.SortField), m.cfg.SortOrder)
	default:
		summary = fmt.Sprintf("Sessions: %d  recent=%d", m.store.Len(), m.cfg.Recent)
	}
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Add: a  Quit: q"
	switch m.activeTab {
	case tabHistory:
		if m.searchMode {
			help = "Type to filter  enter: keep  esc: clear"
		} else {
			help = "Nav: left/right  Rows: up/down  Page: n/p  Search: /  Delete: d  Add: a  Quit: q"
		}
	case tabCompare:
		help = "Nav: left/right  Scroll: up/down  Sort column: s  Order: o  Add: a  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderBody(height int) string {
	switch m.activeTab {
	case tabHistory:
		return fitLines(m.renderHistory(), m.width, height)
	case tabCompare:
		if m.compareLoading {
			loading := fmt.Sprintf("%s Loading NBA comparison...", m.spinner.View())
			return fitLines(loading, m.width, height)
		}
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderHistory() string {
	lines := []string{}
	if m.searchMode {
		lines = append(lines, m.searchInput.View())
	} else {
		lines = append(lines, "")
	}
	if len(m.historyRows) == 0 {
		if m.search != "" {
			lines = append(lines, fmt.Sprintf("No sessions match %q.", m.search))
		} else {
			lines = append(lines, "No sessions yet. Press a to add one.")
		}
		return strings.Join(lines, "\n")
	}
	lines = append(lines, tableMutedStyle.Render(m.history.View()))
	return strings.Join(lines, "\n")
}

func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchMode = true
		m.searchInput.SetValue(m.search)
		return m, m.searchInput.Focus()
	case "d", "delete":
		if idx, ok := m.selectedIndex(); ok {
			m.pendingIndex = idx
			m.confirmMode = true
		}
		return m, nil
	case "n", "pgdown":
		if m.page+1 < m.pageCount() {
			m.page++
			m.resetCursor()
			m.applyHistoryPage()
		}
		return m, nil
	case "p", "pgup":
		if m.page > 0 {
			m.page--
			m.resetCursor()
			m.applyHistoryPage()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setSearch("")
		return m, nil
	case tea.KeyEnter:
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setSearch(m.searchInput.Value())
	return m, cmd
}

func (m *Model) setSearch(term string) {
	if term == m.search {
		return
	}
	m.search = term
	m.page = 0
	m.resetCursor()
	m.refresh()
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmMode = false
		m.deleteSession(m.pendingIndex)
		return m, nil
	case "n", "N", "esc":
		m.confirmMode = false
		return m, nil
	}
	return m, nil
}

func (m *Model) deleteSession(index int) {
	if err := m.store.RemoveAt(context.Background(), index); err != nil {
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.refresh()
	m.updateLayout()
}

func (m *Model) renderConfirm() string {
	body := []string{cardValueStyle.Render("Delete Session")}
	sessions := m.store.Sessions()
	if m.pendingIndex >= 0 && m.pendingIndex < len(sessions) {
		s := sessions[m.pendingIndex]
		body = append(body, fmt.Sprintf("%s  %s  %d/%d (%s%%)", stats.LongDate(s.Date), s.ShotType.Label(), s.ShotsMade, s.ShotsAttempted, s.Percentage))
		if s.Location != "" {
			body = append(body, headerStyle.Render(s.Location))
		}
	}
	body = append(body, "", headerStyle.Render("Delete this session? y to confirm / n to cancel"))
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) startForm() (tea.Model, tea.Cmd) {
	m.formMode = true
	m.formError = ""
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
	}
	m.formInputs[fieldDate].SetValue(m.now().Format(entry.DateLayout))
	m.formInputs[fieldType].SetValue(string(m.cfg.DefaultType))
	return m, m.setFormIndex(fieldMade)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.formMode = false
		m.formError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.submitForm(); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formMode = false
		m.formError = ""
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setFormIndex(m.formIndex + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFormIndex(m.formIndex - 1)
	}
	var cmd tea.Cmd
	m.formInputs[m.formIndex], cmd = m.formInputs[m.formIndex].Update(msg)
	return m, cmd
}

// submitForm validates the form and appends the session. Validation errors keep
// the form open; a failed save still adds the session and is reported in the footer.
func (m *Model) submitForm() error {
	s, err := entry.ParseWith(entry.Input{
		Date:           m.formInputs[fieldDate].Value(),
		ShotsMade:      m.formInputs[fieldMade].Value(),
		ShotsAttempted: m.formInputs[fieldAttempted].Value(),
		ShotType:       m.formInputs[fieldType].Value(),
		Location:       m.formInputs[fieldLocation].Value(),
		Notes:          m.formInputs[fieldNotes].Value(),
	}, m.now(), &m.ids)
	if err != nil {
		return err
	}
	if err := m.store.Add(context.Background(), s); err != nil {
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.refresh()
	m.updateLayout()
	return nil
}

func (m *Model) setFormIndex(idx int) tea.Cmd {
	count := len(m.formInputs)
	if count == 0 {
		return nil
	}
	idx = (idx + count) % count
	m.formIndex = idx
	var cmd tea.Cmd
	for i := range m.formInputs {
		if i == m.formIndex {
			cmd = m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) renderForm() string {
	body := []string{cardValueStyle.Render("Add Shooting Session")}
	for _, input := range m.formInputs {
		body = append(body, input.View())
	}
	body = append(body, "", headerStyle.Render("tab/shift+tab: next field  enter: save  esc: cancel"))
	if m.formError != "" {
		body = append(body, errorStyle.Render(m.formError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) updateCompare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.cfg.SortField = nextSortField(m.cfg.SortField)
		m.renderTabContents()
		return m, nil
	case "o":
		m.cfg.SortOrder = m.cfg.SortOrder.Toggle()
		m.renderTabContents()
		return m, nil
	case "r":
		return m, m.startCompare()
	}
	vp := m.viewports[tabCompare]
	var cmd tea.Cmd
	vp, cmd = vp.Update(msg)
	m.viewports[tabCompare] = vp
	return m, cmd
}

func nextSortField(field string) string {
	for i, f := range stats.PlayerFields {
		if f == field {
			return stats.PlayerFields[(i+1)%len(stats.PlayerFields)]
		}
	}
	return stats.PlayerFields[0]
}

func columnTitle(field string) string {
	for _, c := range stats.PlayerColumns {
		if c.Field == field {
			return c.Title
		}
	}
	return field
}

func renderDashboard(sessions []model.Session, agg model.AggregateStats, recent, width int) string {
	if len(sessions) == 0 {
		return "No sessions yet. Press a to log your first shooting session."
	}
	cards := []string{
		metricCard("Sessions", fmt.Sprintf("%d", len(sessions))),
		metricCard("FG%", fmt.Sprintf("%s%%", agg.Percentage)),
		metricCard("2P%", fmt.Sprintf("%s%%", agg.FG2Percentage)),
		metricCard("3P%", fmt.Sprintf("%s%%", agg.FG3Percentage)),
		metricCard("FT%", fmt.Sprintf("%s%%", agg.FTPercentage)),
		metricCard("Total Points", humanize.Comma(int64(agg.TotalPoints))),
		metricCard("Avg Pts/Session", fmt.Sprintf("%.1f", stats.AvgPointsPerSession(agg, len(sessions)))),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2], cards[3])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[4], cards[5], cards[6])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	points := stats.Recent(stats.ChartPoints(sessions), recent)
	var buf bytes.Buffer
	if err := stats.RenderTrend(&buf, points); err != nil {
		return fmt.Sprintf("Failed to render trend: %v", err)
	}
	lines := []string{summary, "", strings.TrimRight(buf.String(), "\n")}
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		lines = append(lines, fmt.Sprintf("%-7s %-10s %3d/%-3d %5.1f%%", p.Label, p.ShotType.Label(), p.ShotsMade, p.ShotsAttempted, p.Percentage))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderCompare(cmp stats.Comparison, field string, dir model.Direction, width int) string {
	var parts []string
	if !stats.HasRankings(cmp.User) {
		parts = append(parts, "Add some shooting sessions to see how you compare with NBA legends.")
	} else {
		cards := make([]string, 0, 5)
		cardWidth := maxInt(24, minInt(width-4, 44))
		for _, c := range stats.RankingCards(cmp) {
			cards = append(cards, rankingCard(c, cardWidth))
		}
		if width >= 2*(cardWidth+4) {
			rows := []string{}
			for i := 0; i < len(cards); i += 2 {
				if i+1 < len(cards) {
					rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
				} else {
					rows = append(rows, cards[i])
				}
			}
			parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, rows...))
		} else {
			parts = append(parts, strings.Join(cards, "\n"))
		}
		parts = append(parts, headerStyle.Render(fmt.Sprintf("Percentile: %s", cmp.Rankings.Percentile)))
	}
	var buf bytes.Buffer
	if err := stats.RenderPlayerTable(&buf, cmp.Players, field, dir); err != nil {
		parts = append(parts, fmt.Sprintf("Failed to render players: %v", err))
	} else {
		parts = append(parts, strings.TrimRight(buf.String(), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func rankingCard(c stats.RankingCard, width int) string {
	content := fmt.Sprintf("%s\n%s\n%s",
		cardTitleStyle.Render(c.Title),
		cardValueStyle.Render(fmt.Sprintf("#%d of %d", c.Rank, c.Total)),
		c.Description,
	)
	return cardStyle.Width(width).Render(content)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func historyColumns(width int) []table.Column {
	fixed := []int{4, 13, 11, 5, 5, 7, 14}
	used := 0
	for _, w := range fixed {
		used += w + 1
	}
	notes := maxInt(8, width-used-1)
	columns := make([]table.Column, 0, len(stats.SessionHeaders))
	for i, title := range stats.SessionHeaders {
		w := notes
		if i < len(fixed) {
			w = fixed[i]
		}
		columns = append(columns, table.Column{Title: title, Width: w})
	}
	return columns
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return stats.Truncate(s, width)
}
