// Package router keeps the stack of screens shown inside the app frame.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepiq/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. The root screen is never closed.
type PopScreenMsg struct{}

// Router is a stack of screens. Only the top screen receives input.
type Router struct {
	stack []screen.Screen
}

// New starts a stack with root at the bottom.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen and reports whether anything was closed.
func (r *Router) Pop() bool {
	if len(r.stack) < 2 {
		return false
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Active returns the top screen, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

// Depth is the number of open screens.
func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages. A ReportMsg reaches every open screen
// so a screen is current again when the one above it closes.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case screen.ReportMsg:
		return r.broadcast(msg)
	}
	return r.forward(msg)
}

func (r *Router) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range r.stack {
		var cmd tea.Cmd
		r.stack[i], cmd = r.stack[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r *Router) forward(msg tea.Msg) tea.Cmd {
	n := len(r.stack)
	if n == 0 {
		return nil
	}
	var cmd tea.Cmd
	r.stack[n-1], cmd = r.stack[n-1].Update(msg)
	return cmd
}

// View renders the top screen.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
