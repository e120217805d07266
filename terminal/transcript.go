// Package terminal holds the operator transcript and the text-mode front end.
package terminal

import (
	"strings"
	"sync"
)

// DefaultScrollback is the number of lines a transcript keeps by default.
const DefaultScrollback = 2000

// Transcript is an append-only log of operator-facing lines with bounded
// scrollback. It is safe for concurrent use.
type Transcript struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	version uint64
	top     bool
}

// NewTranscript creates a transcript keeping at most limit lines
// (DefaultScrollback when limit < 1).
func NewTranscript(limit int) *Transcript {
	if limit < 1 {
		limit = DefaultScrollback
	}
	return &Transcript{limit: limit}
}

// Println appends s. Embedded newlines start new transcript lines.
func (t *Transcript) Println(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = append(t.lines, strings.Split(s, "\n")...)
	if over := len(t.lines) - t.limit; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
	t.version++
	t.top = false
}

// ScrollToTop asks views to show the first retained line until the next
// Println.
func (t *Transcript) ScrollToTop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.top = true
	t.version++
}

// AtTop reports whether ScrollToTop is in effect.
func (t *Transcript) AtTop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.top
}

// Version increases on every change, so views can skip redundant redraws.
func (t *Transcript) Version() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

// Len is the number of retained lines.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// Lines returns a copy of the retained lines.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}

// Window returns up to n lines for a view of that height: the first n while
// scrolled to the top, the last n otherwise.
func (t *Transcript) Window(n int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n <= 0 {
		return nil
	}
	if n >= len(t.lines) {
		return append([]string(nil), t.lines...)
	}
	if t.top {
		return append([]string(nil), t.lines[:n]...)
	}
	return append([]string(nil), t.lines[len(t.lines)-n:]...)
}

// String joins the retained lines.
func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}
