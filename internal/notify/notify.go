// Package notify delivers success and error toasts to the author.
package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notifier shows a message. It never blocks and returns nothing.
type Notifier interface {
	Notify(kind Kind, message string)
}

type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) {
	f(kind, message)
}

type Toast struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Queue holds toasts until the next response drains them.
type Queue struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(kind Kind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = append(q.toasts, Toast{Kind: kind, Message: message})
}

// Drain returns the pending toasts in arrival order and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	toasts := q.toasts
	q.toasts = nil
	return toasts
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

type Log struct {
	Logger zerolog.Logger
}

func (l Log) Notify(kind Kind, message string) {
	ev := l.Logger.Info()
	if kind == Error {
		ev = l.Logger.Warn()
	}
	ev.Str("kind", string(kind)).Str("message", message).Msg("Toast")
}

type multi []Notifier

func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}

// HXTrigger encodes toasts as an HX-Trigger header value. The page script
// listens for the "toast" event. The value is pure ASCII: browsers read
// header bytes as Latin-1.
func HXTrigger(toasts []Toast) (string, error) {
	data, err := json.Marshal(map[string][]Toast{"toast": toasts})
	if err != nil {
		return "", err
	}
	return asciiJSON(data), nil
}

// asciiJSON rewrites every non-ASCII rune of encoded JSON as \uXXXX escapes.
func asciiJSON(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, r := range string(data) {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}
