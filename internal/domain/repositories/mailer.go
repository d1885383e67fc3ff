package repositories

import "context"

type OutgoingMail struct {
	Subject string
	Body    string
	// ReplyTo is optional and dropped when it is not a valid address.
	ReplyTo string
}

// Mailer relays a message to the site owner's inbox.
type Mailer interface {
	Send(ctx context.Context, mail OutgoingMail) error
}
