package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func newStack(t *testing.T, names ...string) (*Router, []*fakeScreen) {
	t.Helper()
	screens := make([]*fakeScreen, len(names))
	for i, n := range names {
		screens[i] = &fakeScreen{name: n}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func wantActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Fatalf("active = %q, want %q", got, name)
	}
}

func TestPushGrowsStackAndInits(t *testing.T) {
	r, screens := newStack(t, "home", "practice")

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	wantActive(t, r, "practice")
	if !screens[1].initRan {
		t.Fatal("pushed screen's Init did not run")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r, _ := newStack(t, "home", "practice")

	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	wantActive(t, r, "home")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r, _ := newStack(t, "home")

	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	wantActive(t, r, "home")
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r, _ := newStack(t, "onboarding")

	next := &fakeScreen{name: "home"}
	r.Replace(next)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	wantActive(t, r, "home")
	if !next.initRan {
		t.Fatal("replacement screen's Init did not run")
	}
}

func TestReplaceAboveBottom(t *testing.T) {
	r, _ := newStack(t, "home", "simulation")

	r.Replace(&fakeScreen{name: "results"})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	wantActive(t, r, "results")
}

func TestNavigationMessages(t *testing.T) {
	r, _ := newStack(t, "home")

	pushed := &fakeScreen{name: "practice"}
	r.Update(PushScreenMsg{Screen: pushed})
	wantActive(t, r, "practice")

	swapped := &fakeScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	wantActive(t, r, "results")
	if !swapped.initRan {
		t.Fatal("Init did not run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	wantActive(t, r, "home")
}
