package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepiq/internal/screen"
)

type initMsg struct{ name string }

// fakeScreen records the messages it receives.
type fakeScreen struct {
	name string
	got  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{f.name} }
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.got = append(f.got, msg)
	return f, nil
}

func (f *fakeScreen) View(w, h int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushRunsInit(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	cmd := r.Update(PushScreenMsg{Screen: &fakeScreen{name: "roadmap"}})

	require.NotNil(t, cmd)
	assert.Equal(t, initMsg{"roadmap"}, cmd())
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "roadmap", r.Active().Title())
	assert.Equal(t, "roadmap", r.View(80, 24))
}

func TestPopKeepsRoot(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "analysis"})
	r.Push(&fakeScreen{name: "problems"})

	assert.True(t, r.Pop())
	assert.Equal(t, "analysis", r.Active().Title())

	r.Update(PopScreenMsg{})
	assert.Equal(t, "home", r.Active().Title())

	assert.False(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
}

func TestKeysReachTopOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	top := &fakeScreen{name: "roadmap"}
	r := New(home)
	r.Push(top)

	key := tea.KeyPressMsg{Code: tea.KeyEnter}
	r.Update(key)

	assert.Empty(t, home.got)
	assert.Equal(t, []tea.Msg{key}, top.got)
}

func TestReportReachesEveryScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	mid := &fakeScreen{name: "analysis"}
	top := &fakeScreen{name: "problems"}
	r := New(home)
	r.Push(mid)
	r.Push(top)

	r.Update(screen.ReportMsg{})

	for _, s := range []*fakeScreen{home, mid, top} {
		assert.Len(t, s.got, 1, s.name)
	}
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}))
	assert.Equal(t, "", r.View(80, 24))
}
