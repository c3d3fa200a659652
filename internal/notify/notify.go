// Package notify defines the outbound message-delivery boundary.
// Delivery is fire-and-forget; failures are logged by callers and
// never roll back state already committed.
package notify

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notify.go github.com/xxreen/MAID-BOT-24H/internal/notify Notifier

// Notifier delivers a text message to a channel or user
type Notifier interface {
	// Send delivers text to the channel with the given ID
	Send(ctx context.Context, channelID, text string) error

	// SendDirect delivers text to the user with the given ID
	SendDirect(ctx context.Context, userID, text string) error
}
