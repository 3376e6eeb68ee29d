package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/savorly/savorly-client/internal/logger"
	"github.com/savorly/savorly-client/internal/model"
)

var _ model.Notifier = (*Queue)(nil)

// Queue holds ephemeral user-facing messages. Each toast lives until its
// expiry timer fires or it is removed explicitly, whichever comes first.
// Toasts are listed in insertion order.
type Queue struct {
	mu       sync.Mutex
	toasts   []model.Toast
	timers   map[uuid.UUID]*time.Timer
	ttl      time.Duration
	onChange func([]model.Toast)
	logger   *logger.Logger
}

// NewQueue creates an empty queue with the default toast lifetime.
func NewQueue(logger *logger.Logger) *Queue {
	return &Queue{
		timers: make(map[uuid.UUID]*time.Timer),
		ttl:    model.ToastTTL,
		logger: logger,
	}
}

// Subscribe registers the callback invoked with a snapshot after every
// change. Replaces any previous subscriber.
func (q *Queue) Subscribe(fn func([]model.Toast)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.onChange = fn
}

// Add appends a toast with a fresh id and schedules its expiry. Non-blocking;
// any number of toasts may be pending with independent timers.
func (q *Queue) Add(message string, kind model.ToastKind) uuid.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()

	toast := model.Toast{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	q.toasts = append(q.toasts, toast)
	q.timers[toast.ID] = time.AfterFunc(q.ttl, func() { q.Remove(toast.ID) })

	q.logger.Debug("Notification queue: toast added",
		"id", toast.ID,
		"kind", string(kind),
		"message", message)

	q.notifyLocked()

	return toast.ID
}

// Notify implements model.Notifier.
func (q *Queue) Notify(message string, kind model.ToastKind) {
	q.Add(message, kind)
}

// Remove drops the toast with the given id and cancels its timer. No-op when
// the toast is already gone, so a timer firing after an explicit dismissal
// has no effect.
func (q *Queue) Remove(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	timer, ok := q.timers[id]
	if !ok {
		return
	}
	timer.Stop()
	delete(q.timers, id)

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}

	q.notifyLocked()
}

// Toasts returns the pending toasts in insertion order.
func (q *Queue) Toasts() []model.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]model.Toast(nil), q.toasts...)
}

// Close cancels every pending timer and drops all toasts.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
}

func (q *Queue) notifyLocked() {
	if q.onChange == nil {
		return
	}
	snapshot := append([]model.Toast(nil), q.toasts...)
	q.onChange(snapshot)
}
