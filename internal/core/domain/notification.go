package domain

// NotificationKind selects the message template sent to a user.
type NotificationKind string

const (
	NotifyInvestmentCompleted NotificationKind = "investment_completed"
	NotifyInvestmentRefunded  NotificationKind = "investment_refunded"
	NotifyPayoutScheduled     NotificationKind = "payout_scheduled"
	NotifyPayoutPaid          NotificationKind = "payout_paid"
	NotifyPayoutFailed        NotificationKind = "payout_failed"
)

// Notification is a single outbound message to one recipient. Data feeds
// the template selected by Kind.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Data      map[string]string
}

// PayoutNotificationKind maps a payout's target status to its template.
func PayoutNotificationKind(status PayoutStatus) NotificationKind {
	switch status {
	case PayoutPaid:
		return NotifyPayoutPaid
	case PayoutFailed:
		return NotifyPayoutFailed
	default:
		return NotifyPayoutScheduled
	}
}
