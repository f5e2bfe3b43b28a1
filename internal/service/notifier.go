package service

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned when the messaging credentials required for
// delivery are missing. No outbound call is attempted in that case.
var ErrNotConfigured = errors.New("messaging credentials not configured")

// ContactMessage is a validated contact form submission ready for delivery
type ContactMessage struct {
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time
}

// Notifier delivers a contact message to a messaging backend. Implementations
// are swappable so validation and formatting stay independent of the
// concrete provider.
type Notifier interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}
