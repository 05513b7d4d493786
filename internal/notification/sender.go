package notification

import "context"

// Message is a single outbound email with both renderings.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Implementations make exactly one attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
