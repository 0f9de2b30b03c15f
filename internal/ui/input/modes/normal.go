package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tablegrip/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Toggle):
		// Rows without a checkbox ignore space
		if ctx.Selectable() && ctx.CurrentRowSelectable() {
			return []types.Action{types.ToggleSelectAction{ID: ctx.CurrentRowID()}}, true
		}
		return nil, true

	case key.Matches(msg, k.ToggleAll):
		if ctx.Selectable() {
			return []types.Action{types.ToggleSelectAllAction{}}, true
		}
		return nil, true

	case key.Matches(msg, k.DeselectAll):
		// Esc clears the selection first, then the filter
		if ctx.Selectable() && (ctx.HasSelection() || msg.String() != "esc") {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case key.Matches(msg, k.Drawer):
		if ctx.CurrentRowHasDrawer() {
			return []types.Action{types.ToggleDrawerAction{ID: ctx.CurrentRowID()}}, true
		}
		return nil, false

	case key.Matches(msg, k.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// Esc also clears a filter when selection keys are disabled
	if msg.Type == tea.KeyEsc && ctx.FilterQuery() != "" {
		return []types.Action{types.ClearFilterAction{}}, true
	}

	return nil, false
}
