package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/state"
	"tablegrip/internal/ui/views"
)

// Viewport is the cursor and scroll position of the table
type Viewport struct {
	Cursor int
	Offset int
	Height int
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	table            *domain.Table
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	viewport         Viewport
	selectable       bool
	selectedCount    int
	filterQuery      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, table *domain.Table, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		table:            table,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetViewport sets the cursor and scroll position
func (vm *ViewModel) SetViewport(v Viewport) {
	vm.viewport = v
}

// SetSelection sets the selection indicator. selectable is false for tables
// without checkboxes.
func (vm *ViewModel) SetSelection(selectable bool, count int) {
	vm.selectable = selectable
	vm.selectedCount = count
}

// SetFilterQuery sets the active filter shown in the title line
func (vm *ViewModel) SetFilterQuery(query string) {
	vm.filterQuery = query
}

// SetInputMode sets the current input mode and its prompt
func (vm *ViewModel) SetInputMode(mode InputMode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	helpLine := ""
	if vm.keys != nil {
		vm.help.ShowAll = vm.state.ShowFullHelp
		helpLine = vm.help.View(vm.keys)
	}

	return views.ViewState{
		Width:   vm.width,
		Height:  vm.height,
		Caption: vm.table.Caption,
		Table: views.TableView{
			Columns: vm.table.Columns,
			Rows:    vm.state.Rows,
			Cursor:  vm.viewport.Cursor,
			Offset:  vm.viewport.Offset,
			Height:  vm.viewport.Height,
		},
		Selectable:    vm.selectable,
		SelectedCount: vm.selectedCount,
		FilterQuery:   vm.filterQuery,
		InputMode:     vm.inputTransformer.GetInputModeString(),
		TextInput:     vm.inputTransformer.GetInputText(),
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpLine:      helpLine,
	}
}
