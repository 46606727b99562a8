package tui

import "sync"

// Notices collects user-facing notifications raised while saving. Pass it
// as the store.Notifier of the service the sidebar drives.
type Notices struct {
	mu   sync.Mutex
	last string
}

// NewNotices returns an empty Notices.
func NewNotices() *Notices { return &Notices{} }

// Notify implements store.Notifier.
func (n *Notices) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = msg
}

// Take returns the latest notification and clears it.
func (n *Notices) Take() string {
	if n == nil {
		return ""
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	msg := n.last
	n.last = ""
	return msg
}
