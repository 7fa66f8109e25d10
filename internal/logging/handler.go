// Package logging routes slog records into the status bar of a running
// bubbletea program.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskui/core"
)

// Sender is the part of *tea.Program the handler needs.
type Sender interface {
	Send(msg tea.Msg)
}

// queueSize bounds the records waiting for the program. Records beyond it are
// dropped rather than blocking the caller.
const queueSize = 64

// senderRef forwards queued messages to one sender from its own goroutine.
// Handle may run inside the program's Update, where a direct Send would wait
// on the event loop that is busy running it.
type senderRef struct {
	sender Sender
	queue  chan tea.Msg
	done   chan struct{}
}

func newSenderRef(s Sender) *senderRef {
	ref := &senderRef{sender: s, queue: make(chan tea.Msg, queueSize), done: make(chan struct{})}
	go ref.pump()
	return ref
}

func (r *senderRef) pump() {
	for {
		select {
		case msg := <-r.queue:
			r.sender.Send(msg)
		case <-r.done:
			return
		}
	}
}

func (r *senderRef) offer(msg tea.Msg) {
	select {
	case r.queue <- msg:
	default:
	}
}

// TUIHandler is a slog.Handler that turns records at or above its level into
// core.StatusMsg values. Records arriving before SetSender are dropped.
// Handlers derived via WithAttrs/WithGroup share the sender.
type TUIHandler struct {
	level  slog.Leveler
	sender *atomic.Pointer[senderRef]
	attrs  []slog.Attr
	prefix string
}

func NewTUIHandler(level slog.Leveler) *TUIHandler {
	return &TUIHandler{level: level, sender: &atomic.Pointer[senderRef]{}}
}

// SetSender is safe to call from any goroutine. Pass a *tea.Program, or nil
// to stop delivery.
func (h *TUIHandler) SetSender(s Sender) {
	var next *senderRef
	if s != nil {
		next = newSenderRef(s)
	}
	if prev := h.sender.Swap(next); prev != nil {
		close(prev.done)
	}
}

func (h *TUIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *TUIHandler) Handle(_ context.Context, record slog.Record) error {
	ref := h.sender.Load()
	if ref == nil {
		return nil
	}
	ref.offer(StatusFromRecord(record, h.attrs, h.prefix))
	return nil
}

func (h *TUIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (h *TUIHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *TUIHandler) clone() *TUIHandler {
	return &TUIHandler{
		level:  h.level,
		sender: h.sender,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		prefix: h.prefix,
	}
}

// StatusFromRecord formats record as "message (key=value, ...)".
func StatusFromRecord(record slog.Record, attrs []slog.Attr, prefix string) core.StatusMsg {
	parts := make([]string, 0, len(attrs)+record.NumAttrs())
	for _, a := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", a.Key, a.Value))
	}
	record.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s%s=%s", prefix, a.Key, a.Value))
		return true
	})
	text := record.Message
	if len(parts) > 0 {
		text += " (" + strings.Join(parts, ", ") + ")"
	}
	return core.StatusMsg{Text: text, Code: record.Level.String(), Level: statusLevel(record.Level)}
}

func statusLevel(l slog.Level) core.StatusLevel {
	switch {
	case l >= slog.LevelError:
		return core.StatusError
	case l >= slog.LevelWarn:
		return core.StatusWarn
	default:
		return core.StatusInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
// An empty string means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}
