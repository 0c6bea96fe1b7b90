package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)

	next := &stubScreen{title: "next"}
	st.Push(next)

	if st.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", st.Depth())
	}
	if st.Active().Title() != "next" {
		t.Errorf("Active() = %q, want %q", st.Active().Title(), "next")
	}
	if !next.initRan {
		t.Error("Init did not run on the pushed screen")
	}
}

func TestBack(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)
	st.Push(&stubScreen{title: "next"})

	st.Back()

	if st.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", st.Depth())
	}
	if st.Active().Title() != "root" {
		t.Errorf("Active() = %q, want %q", st.Active().Title(), "root")
	}
}

func TestBackNoopAtRoot(t *testing.T) {
	st := NewStack(&stubScreen{title: "root"})

	st.Back()

	if st.Depth() != 1 {
		t.Errorf("Depth() = %d after Back at root, want 1", st.Depth())
	}
}

func TestHomeUnwinds(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)
	st.Push(&stubScreen{title: "second"})
	st.Push(&stubScreen{title: "third"})

	st.Home()

	if st.Depth() != 1 {
		t.Errorf("Depth() = %d after Home, want 1", st.Depth())
	}
	if st.Active().Title() != "root" {
		t.Errorf("Active() = %q, want %q", st.Active().Title(), "root")
	}
}

func TestUpdateHandlesNavMessages(t *testing.T) {
	st := NewStack(&stubScreen{title: "root"})

	next := &stubScreen{title: "next"}
	st.Update(PushMsg{Screen: next})
	if st.Active().Title() != "next" {
		t.Errorf("Active() = %q after PushMsg, want %q", st.Active().Title(), "next")
	}

	st.Update(BackMsg{})
	if st.Depth() != 1 {
		t.Errorf("Depth() = %d after BackMsg, want 1", st.Depth())
	}

	st.Update(PushMsg{Screen: &stubScreen{title: "a"}})
	st.Update(PushMsg{Screen: &stubScreen{title: "b"}})
	st.Update(HomeMsg{})
	if st.Depth() != 1 {
		t.Errorf("Depth() = %d after HomeMsg, want 1", st.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "root"}
	top := &stubScreen{title: "top"}
	st := NewStack(root)
	st.Push(top)

	st.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if top.updates != 1 {
		t.Errorf("active screen saw %d updates, want 1", top.updates)
	}
	if root.updates != 0 {
		t.Errorf("covered screen saw %d updates, want 0", root.updates)
	}
}

func TestNavCommands(t *testing.T) {
	next := &stubScreen{title: "next"}

	if msg := To(next)(); msg != (PushMsg{Screen: next}) {
		t.Errorf("To() produced %#v", msg)
	}
	if msg := Back()(); msg != (BackMsg{}) {
		t.Errorf("Back() produced %#v", msg)
	}
	if msg := Home()(); msg != (HomeMsg{}) {
		t.Errorf("Home() produced %#v", msg)
	}
}
