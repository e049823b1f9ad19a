package service

import (
	"sync"
	"time"

	"github.com/brainbridge/catalog-gateway/internal/models"
)

// Notifier is the single-slot notification surface of one view. A new
// notification replaces the current one and restarts the expiry timer;
// Dismiss clears immediately and cancels the pending expiry.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *models.Notification
	seq     uint64
}

// NewNotifier constructs a notifier with the given auto-dismiss TTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Notifier{ttl: ttl}
}

// Show replaces the current notification.
func (n *Notifier) Show(message, kind string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	n.current = &models.Notification{Message: message, Kind: kind}

	// The sequence number ties the expiry to this exact notification:
	// a newer Show or an explicit Dismiss makes the stale timer a no-op.
	seq := n.seq
	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.seq == seq {
			n.current = nil
		}
	})
}

// Success shows a success notification.
func (n *Notifier) Success(message string) {
	n.Show(message, models.NotifySuccess)
}

// Error shows an error notification.
func (n *Notifier) Error(message string) {
	n.Show(message, models.NotifyError)
}

// Dismiss clears the slot and cancels the pending expiry.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.current = nil
}

// Current returns a copy of the active notification, or nil.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	copied := *n.current
	return &copied
}
