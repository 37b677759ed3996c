package mail

import (
	"context"
	"fmt"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

// Notifier renders notifications with Templates and hands them to a Sender.
type Notifier struct {
	templates *Templates
	sender    Sender
}

var _ port.Notifier = (*Notifier)(nil)

func NewNotifier(templates *Templates, sender Sender) *Notifier {
	return &Notifier{templates: templates, sender: sender}
}

func (n *Notifier) Notify(ctx context.Context, msg domain.Notification) error {
	if msg.Recipient == "" {
		return fmt.Errorf("notification %s has no recipient", msg.Kind)
	}
	subject, body, err := n.templates.Render(msg)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, msg.Recipient, subject, body)
}
