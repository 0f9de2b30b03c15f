package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeFilter
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and the label shown before the input
func (it *InputTransformer) SetMode(mode InputMode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if it.mode == InputModeNormal {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the prompt label of the input mode
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == InputModeNormal {
		return ""
	}
	return it.prompt
}
