package adapter

import "context"

// SendEmailInput holds the fields for one outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's identifier for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending email digests.
type EmailSender interface {
	// Send sends an email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
