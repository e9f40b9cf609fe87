package test

import (
	"context"
	"sync"
)

// Notification is one captured delivery attempt.
type Notification struct {
	UserID    int64
	Title     string
	Message   string
	ActionURL string
}

// NotifierStub records notifications instead of delivering them.
type NotifierStub struct {
	mu            sync.Mutex
	Notifications []Notification
	Err           error
}

// Notify captures the notification and returns the configured error.
func (s *NotifierStub) Notify(ctx context.Context, userID int64, title, message, actionURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notifications = append(s.Notifications, Notification{UserID: userID, Title: title, Message: message, ActionURL: actionURL})
	return s.Err
}

// Sent returns a copy of the captured notifications.
func (s *NotifierStub) Sent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.Notifications))
	copy(out, s.Notifications)
	return out
}
