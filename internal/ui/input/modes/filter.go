package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"tablegrip/internal/ui/input/types"
)

type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter", ti),
	}
}

// Enter starts from the active query so it can be refined
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil && ctx.FilterQuery() != "" {
		m.textInput.SetValue(ctx.FilterQuery())
		m.textInput.CursorEnd()
	}
	return actions
}
