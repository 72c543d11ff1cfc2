package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notification is a short user-facing message ("toast").
type Notification struct {
	Kind    Kind
	Message string
	At      time.Time
}

// Notifier receives notifications emitted by stores and services.
// Presentation is up to the implementation.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Func adapts a function to Notifier.
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) { f(kind, message) }

// Discard drops every notification.
var Discard Notifier = Func(func(Kind, string) {})

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(kind Kind, message string) {
	fields := []zap.Field{zap.String("kind", string(kind)), zap.String("message", message)}
	if kind == KindError {
		l.log.Warn("notification", fields...)
		return
	}
	l.log.Info("notification", fields...)
}

// Tee fans a notification out to every non-nil notifier.
func Tee(ns ...Notifier) Notifier {
	return Func(func(kind Kind, message string) {
		for _, n := range ns {
			if n != nil {
				n.Notify(kind, message)
			}
		}
	})
}

// Recorder keeps notifications until drained. Safe for concurrent use; the
// terminal front end drains it after every command.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	r.items = append(r.items, Notification{Kind: kind, Message: message, At: now()})
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Messages returns the recorded message texts in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	for i, n := range r.items {
		out[i] = n.Message
	}
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Drain returns and clears the recorded notifications.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	return out
}
