package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ScoreInput wraps bubbles/textinput for entering a raw model score. Only
// characters that can appear in a float literal get through.
type ScoreInput struct {
	Model textinput.Model
}

// NewScoreInput creates a focused score input.
func NewScoreInput(placeholder string) ScoreInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 12
	return ScoreInput{Model: ti}
}

// Init returns the initial command.
func (s ScoreInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update filters keystrokes and forwards the rest to the inner input.
func (s ScoreInput) Update(msg tea.Msg) (ScoreInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !strings.ContainsAny(key, "0123456789.-+") {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s ScoreInput) View() string {
	return s.Model.View()
}

// Value returns the raw input text.
func (s ScoreInput) Value() string {
	return s.Model.Value()
}

// Score parses the current input as a float64.
func (s ScoreInput) Score() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s.Model.Value()), 64)
}

// Reset clears the input.
func (s *ScoreInput) Reset() {
	s.Model.SetValue("")
}
