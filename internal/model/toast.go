package model

import (
	"time"

	"github.com/google/uuid"
)

// ToastTTL is how long a toast stays up before auto-dismissal.
const ToastTTL = 3000 * time.Millisecond

// ToastKind enumerates toast severities.
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

// Toast is one ephemeral user-facing message.
type Toast struct {
	ID        uuid.UUID
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
}

// Notifier lets any component surface a message to the user without knowing
// how it is rendered.
type Notifier interface {
	Notify(message string, kind ToastKind)
}
