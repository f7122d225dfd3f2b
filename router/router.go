// Package router keeps the host's navigation history. The current path is
// what modals compare between updates to notice a location change.
package router

import (
	"strings"

	"github.com/andareed/siftly-modal/logging"
)

// History is a stack of visited paths. It always holds at least one path.
type History struct {
	stack []string
}

func New(initial string) *History {
	return &History{stack: []string{Clean(initial)}}
}

// Clean normalizes p to an absolute path without a trailing slash.
func Clean(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Push navigates to p. Pushing the current path is a no-op and reports
// false.
func (h *History) Push(p string) bool {
	p = Clean(p)
	if p == h.Path() {
		return false
	}
	h.stack = append(h.stack, p)
	logging.Debugf("router: push %s (depth=%d)", p, len(h.stack))
	return true
}

// Back pops the current path. It reports false, leaving the history as is,
// when only the root entry is left.
func (h *History) Back() bool {
	if len(h.stack) <= 1 {
		return false
	}
	h.stack = h.stack[:len(h.stack)-1]
	logging.Debugf("router: back to %s (depth=%d)", h.Path(), len(h.stack))
	return true
}

func (h *History) Path() string { return h.stack[len(h.stack)-1] }

func (h *History) Len() int { return len(h.stack) }
