package adapter

import (
	"log/slog"
	"strings"
)

// History is an in-memory address bar with back/forward navigation. It stores
// fragments without the leading '#'.
//
// Writes from a navigator (SetFragment) are recorded silently. Navigations
// initiated by the user (Back, Forward, Navigate) notify the subscriber.
type History struct {
	entries    []string
	pos        int
	subscriber func(fragment string)
}

// NewHistory creates a history whose only entry is initial.
func NewHistory(initial string) *History {
	return &History{entries: []string{normalizeFragment(initial)}}
}

// Fragment returns the current fragment.
func (h *History) Fragment() string {
	return h.entries[h.pos]
}

// SetFragment pushes fragment as a new entry and drops the forward history.
func (h *History) SetFragment(fragment string) {
	h.push(normalizeFragment(fragment))
}

// ReplaceFragment overwrites the current entry without touching the entries
// before or after it.
func (h *History) ReplaceFragment(fragment string) {
	h.entries[h.pos] = normalizeFragment(fragment)

	slog.Debug("history replace", "fragment", h.entries[h.pos], "pos", h.pos)
}

// Subscribe registers the callback for user-initiated changes. A later call
// replaces the previous subscriber.
func (h *History) Subscribe(fn func(fragment string)) {
	h.subscriber = fn
}

// Navigate pushes a user-typed address and notifies the subscriber. Typing
// the current address again is a no-op.
func (h *History) Navigate(fragment string) {
	fragment = normalizeFragment(fragment)
	if fragment == h.Fragment() {
		return
	}

	h.push(fragment)
	h.notify()
}

// Back moves one entry back. It reports false at the oldest entry.
func (h *History) Back() bool {
	if !h.CanBack() {
		return false
	}

	h.pos--
	h.notify()

	return true
}

// Forward moves one entry forward. It reports false at the newest entry.
func (h *History) Forward() bool {
	if !h.CanForward() {
		return false
	}

	h.pos++
	h.notify()

	return true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool {
	return h.pos > 0
}

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool {
	return h.pos < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) push(fragment string) {
	h.entries = append(h.entries[:h.pos+1], fragment)
	h.pos = len(h.entries) - 1

	slog.Debug("history push", "fragment", fragment, "entries", len(h.entries))
}

func (h *History) notify() {
	slog.Debug("address changed", "fragment", h.Fragment())

	if h.subscriber != nil {
		h.subscriber(h.Fragment())
	}
}

func normalizeFragment(fragment string) string {
	return strings.TrimPrefix(strings.TrimSpace(fragment), "#")
}
