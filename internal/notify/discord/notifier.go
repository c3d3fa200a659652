// Package discord implements the notify.Notifier interface on a
// discordgo session.
package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Config holds configuration for the Discord notifier
type Config struct {
	// Session is an opened discordgo session
	Session *discordgo.Session
}

// Notifier sends messages through a Discord session
type Notifier struct {
	session *discordgo.Session
}

// New creates a new Discord notifier
func New(cfg *Config) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Notifier{
		session: cfg.Session,
	}, nil
}

// Send delivers text to a channel
func (n *Notifier) Send(ctx context.Context, channelID, text string) error {
	_, err := n.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
	}
	return nil
}

// SendDirect delivers text to a user via a DM channel
func (n *Notifier) SendDirect(ctx context.Context, userID, text string) error {
	channel, err := n.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM with %s: %w", userID, err)
	}

	_, err = n.session.ChannelMessageSend(channel.ID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to DM %s: %w", userID, err)
	}
	return nil
}
