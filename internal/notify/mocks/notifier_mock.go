package mocks

import (
	"sync"

	"github.com/example/bookshop/internal/notify"
)

// MockNotifier records every notification for assertions in tests.
type MockNotifier struct {
	mu sync.Mutex

	// Calls holds notifications in the order they were emitted.
	Calls []notify.Notification
}

// NewMockNotifier creates an empty recording notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{Calls: make([]notify.Notification, 0)}
}

func (m *MockNotifier) Notify(n notify.Notification) {
	m.mu.Lock()
	m.Calls = append(m.Calls, n)
	m.mu.Unlock()
}

// Last returns the most recent notification, if any.
func (m *MockNotifier) Last() (notify.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return notify.Notification{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

// Reset clears recorded notifications.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	m.Calls = make([]notify.Notification, 0)
	m.mu.Unlock()
}
