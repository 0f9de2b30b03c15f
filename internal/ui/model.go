package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tablegrip/internal/config"
	"tablegrip/internal/domain"
	"tablegrip/internal/ui/input"
	inputtypes "tablegrip/internal/ui/input/types"
	"tablegrip/internal/ui/scope"
	"tablegrip/internal/ui/services/disclosure"
	"tablegrip/internal/ui/services/events"
	"tablegrip/internal/ui/services/filter"
	"tablegrip/internal/ui/services/navigation"
	"tablegrip/internal/ui/services/selection"
	"tablegrip/internal/ui/services/sorting"
	"tablegrip/internal/ui/state"
	"tablegrip/internal/ui/viewmodels"
	"tablegrip/internal/ui/views"
)

// Model is the Bubble Tea model hosting one table
type Model struct {
	bus   events.EventBus
	table *domain.Table
	state *state.AppState

	width       int
	height      int
	help        help.Model
	keys        inputtypes.KeyMap
	inPagerMode bool

	// Selection is nil for tables without checkboxes
	selection *selection.Service
	scope     *scope.Scope

	// Services
	navigator *navigation.Service
	filter    *filter.Service
	sorter    *sorting.Service

	// Rendering
	tableRenderer *views.TableRenderer
	renderer      *views.Renderer
	viewModel     *viewmodels.ViewModel
	helpRenderer  *HelpRenderer

	inputHandler *input.Handler
	helpOps      *HelpOps

	unsubscribe []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model for the configured table
func NewModel(cfg *config.Config, bus events.EventBus) (*Model, error) {
	if bus == nil {
		bus = events.NewBus()
	}
	table := cfg.DomainTable()

	m := &Model{
		bus:       bus,
		table:     table,
		state:     state.NewAppState(),
		help:      help.New(),
		keys:      inputtypes.NewKeyMap(),
		navigator: navigation.NewService(bus),
		filter:    filter.NewService(bus),
		sorter:    sorting.NewService(len(table.Columns), bus),
		helpOps:   NewHelpOps(nil),
	}

	m.scope = scope.New()
	if cfg.UI.Selectable {
		m.selection = selection.NewService(toIDs(table.SelectableIDs()), m.onSelectionChange, bus)
		m.scope = m.scope.WithSelection(m.selection)
		if cfg.UI.WithoutSelectAll {
			m.keys.ToggleAll.SetEnabled(false)
		}
	} else {
		m.keys.DisableSelection()
	}

	drawers := cfg.UI.Drawers && table.HasDrawers()
	if !drawers {
		m.keys.DisableDrawers()
	}

	styles := views.NewStyles()
	tableRenderer, err := views.NewTableRenderer(styles, m.scope, table, views.TableOptions{
		WithoutSelectAll: cfg.UI.WithoutSelectAll,
		Drawers:          drawers,
		Labels: disclosure.Labels{
			Collapsed: cfg.UI.CollapsedLabel,
			Expanded:  cfg.UI.ExpandedLabel,
		},
		OnExpand: m.onDrawerExpand,
		Bus:      bus,
	})
	if err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	m.tableRenderer = tableRenderer
	m.renderer = views.NewRenderer(styles, tableRenderer)

	m.inputHandler = input.New(m.keys)
	m.viewModel = viewmodels.NewViewModel(m.state, table, textinput.New())
	m.helpRenderer = NewHelpRenderer("tablegrip", m.keys.FullHelp())

	m.navigator.SetCountFunction(func() int { return len(m.state.Rows) })
	m.subscribe()
	m.refreshRows(true)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.state.ClearStatus()

		mode := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		if m.inputHandler.CurrentMode() != mode {
			log.Printf("Input mode: %s", m.inputHandler.ModeName())
		}
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline full help
			log.Printf("Help pager failed: %v", msg.err)
			m.state.SetError(fmt.Sprintf("Help pager failed: %v", msg.err))
			m.state.ShowFullHelp = !m.state.ShowFullHelp
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help, m.helpKeys())
	m.viewModel.SetViewport(viewmodels.Viewport{
		Cursor: m.navigator.GetCursor(),
		Offset: m.navigator.GetViewportOffset(),
		Height: m.navigator.GetViewportHeight(),
	})
	m.viewModel.SetSelection(m.selection != nil, m.selectedCount())
	m.viewModel.SetFilterQuery(m.filter.GetQuery())

	mode := viewmodels.InputModeNormal
	if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
		mode = viewmodels.InputModeFilter
	}
	m.viewModel.SetInputMode(mode, m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	viewState := m.viewModel.BuildViewState()
	if viewState.StatusMessage == "" {
		viewState.StatusMessage = m.drawerHint()
	}
	return m.renderer.Render(viewState)
}

// Selected returns the selected row ids in table order
func (m *Model) Selected() []string {
	if m.selection == nil {
		return nil
	}
	var ids []string
	for _, row := range m.table.Rows {
		if m.selection.IsSelected(selection.ID(row.ID)) {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

// Done reports whether the user finished with q
func (m *Model) Done() bool {
	return m.state.Done
}

// Aborted reports whether the user quit with ctrl+c
func (m *Model) Aborted() bool {
	return m.state.Aborted
}

// Close removes the model's event subscriptions
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ToggleSelectAction:
		m.scope.Selection().ToggleSelected(selection.ID(a.ID))

	case inputtypes.ToggleSelectAllAction:
		m.scope.Selection().ToggleSelectAll()

	case inputtypes.DeselectAllAction:
		m.scope.Selection().DeselectAll()

	case inputtypes.ToggleDrawerAction:
		if !m.tableRenderer.ToggleDrawer(a.ID) {
			log.Printf("No drawer for row %s", a.ID)
		}

	case inputtypes.UpdateTextAction:
		// Preview only; the selection is reconciled once the query is submitted
		m.filter.SetQuery(a.Text)
		m.refreshRows(false)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.applyFilter(a.Text)
		}

	case inputtypes.CancelTextAction, inputtypes.ClearFilterAction:
		m.applyFilter("")

	case inputtypes.CycleSortAction:
		m.sorter.NextColumn()
		m.refreshRows(true)
		m.state.SetStatus("Sorted by " + m.sorter.GetModeString(m.table.Columns))

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.state.ShowFullHelp = !m.state.ShowFullHelp
			return nil
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		if a.Force {
			m.state.Aborted = true
		} else {
			m.state.Done = true
		}
		return tea.Quit
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// applyFilter sets the filter query and rebuilds the visible rows
func (m *Model) applyFilter(query string) {
	m.filter.SetQuery(query)
	m.refreshRows(true)
}

// refreshRows rebuilds the visible rows and keeps the cursor on the same row
// while it stays visible. With reconcile the visible selectable rows become
// the selection's universe.
func (m *Model) refreshRows(reconcile bool) {
	current, hadRow := m.state.RowAt(m.navigator.GetCursor())

	m.state.Rows = m.sorter.Sort(m.filter.Apply(m.table.Rows))
	if reconcile && m.selection != nil {
		before := m.selection.Count()
		m.selection.SetUniverse(toIDs(m.state.SelectableIDs()))
		if dropped := before - m.selection.Count(); dropped > 0 {
			m.state.SetStatus(fmt.Sprintf("%d hidden row(s) deselected", dropped))
		}
	}

	if hadRow {
		if index := m.state.IndexOf(current.ID); index >= 0 {
			m.navigator.MoveToIndex(index)
			return
		}
	}
	m.navigator.Clamp()
}

func (m *Model) subscribe() {
	m.unsubscribe = append(m.unsubscribe,
		m.bus.Subscribe(events.TypeOf(selection.UniverseChangedEvent{}), func(e interface{}) {
			event := e.(selection.UniverseChangedEvent)
			log.Printf("Selectable rows changed: +%d -%d, %d total", len(event.Added), len(event.Removed), event.Total)
		}),
		m.bus.Subscribe(events.TypeOf(selection.SelectionChangedEvent{}), func(e interface{}) {
			event := e.(selection.SelectionChangedEvent)
			log.Printf("Selection v%d (%s): %d selected", event.Version, event.Cause, event.Total)
		}),
		m.bus.Subscribe(events.TypeOf(disclosure.DrawerCollapsedEvent{}), func(e interface{}) {
			log.Printf("Drawer closed for %s", e.(disclosure.DrawerCollapsedEvent).Row)
		}),
		m.bus.Subscribe(events.TypeOf(filter.FilterAppliedEvent{}), func(e interface{}) {
			event := e.(filter.FilterAppliedEvent)
			m.state.SetStatus(fmt.Sprintf("%d of %d rows match", event.MatchCount, event.Total))
		}),
		m.bus.Subscribe(events.TypeOf(sorting.SortChangedEvent{}), func(e interface{}) {
			event := e.(sorting.SortChangedEvent)
			log.Printf("Sort column changed from %d to %d", event.OldColumn, event.NewColumn)
		}),
	)
}

func (m *Model) onSelectionChange(sel selection.Selection) {
	log.Printf("Selection changed: %v", sel.IDs())
}

func (m *Model) onDrawerExpand(rowID string) {
	log.Printf("Drawer opened for %s", rowID)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Rows:   m.state.Rows,
		Cursor: m.navigator.GetCursor(),
		Scope:  m.scope,
		Query:  m.filter.GetQuery(),
		Count:  m.selectedCount(),
	}
}

func (m *Model) selectedCount() int {
	if m.selection == nil {
		return 0
	}
	return m.selection.Count()
}

// helpKeys returns the bindings for the footer of the current mode
func (m *Model) helpKeys() help.KeyMap {
	if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
		return inputtypes.NewFilterKeyMap()
	}
	return m.keys
}

// drawerHint describes the drawer toggle of the cursor row
func (m *Model) drawerHint() string {
	row, ok := m.state.RowAt(m.navigator.GetCursor())
	if !ok {
		return ""
	}
	d, ok := m.tableRenderer.DrawerRow(row.ID)
	if !ok {
		return ""
	}
	return m.keys.Drawer.Help().Key + ": " + d.Label()
}

func toIDs(values []string) []selection.ID {
	ids := make([]selection.ID, len(values))
	for i, v := range values {
		ids[i] = selection.ID(v)
	}
	return ids
}
