package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/G3mha/genetic-programming/internal/ui/layout"
)

// Screen is one full-frame view of the result explorer. The stack owns the
// header and footer chrome; a screen renders only the content area.
type Screen interface {
	// Init returns an initial command when the screen is first opened.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content for the given content area.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg asks the stack to open a screen on top of the current one.
type PushMsg struct {
	Screen Screen
}

// BackMsg asks the stack to close the current screen.
type BackMsg struct{}

// HomeMsg asks the stack to unwind to the root screen.
type HomeMsg struct{}

// To returns a command that opens the given screen.
func To(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Back returns a command that closes the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Home returns a command that unwinds to the root screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Stack manages the screen stack. The root screen is never removed.
type Stack struct {
	screens []Screen
}

// NewStack creates a stack with the given root screen.
func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Push opens a screen on top of the stack and runs its Init.
func (s *Stack) Push(scr Screen) tea.Cmd {
	s.screens = append(s.screens, scr)
	return scr.Init()
}

// Back closes the top screen. No-op at the root.
func (s *Stack) Back() tea.Cmd {
	if len(s.screens) <= 1 {
		return nil
	}
	s.screens = s.screens[:len(s.screens)-1]
	return nil
}

// Home unwinds to the root screen. No-op at the root.
func (s *Stack) Home() tea.Cmd {
	if len(s.screens) <= 1 {
		return nil
	}
	s.screens = s.screens[:1]
	return nil
}

// Active returns the screen currently on top.
func (s *Stack) Active() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens on the stack.
func (s *Stack) Depth() int {
	return len(s.screens)
}

// Update handles navigation messages itself and forwards everything else to
// the active screen.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return s.Push(msg.Screen)
	case BackMsg:
		return s.Back()
	case HomeMsg:
		return s.Home()
	}

	active := s.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	s.screens[len(s.screens)-1] = updated
	return cmd
}

// View renders the active screen.
func (s *Stack) View(width, height int) string {
	active := s.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
