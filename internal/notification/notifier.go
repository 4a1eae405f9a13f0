package notification

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/BetEngine_Go/internal/logger"
)

// LogNotifier writes reminders to the structured log
type LogNotifier struct{}

func (LogNotifier) Name() string { return SinkLog }

func (LogNotifier) Notify(ctx context.Context, reminder Reminder) error {
	logger.FromContext(ctx).Info(reminder.Title,
		"body", reminder.Body,
		"sport", reminder.Sport,
		"event_id", reminder.EventID)
	return nil
}

// DiscordNotifier posts reminders to a Discord channel webhook
type DiscordNotifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
}

// NewDiscordNotifier creates a webhook notifier. No bot token is needed to execute a webhook.
func NewDiscordNotifier(webhookID, webhookToken string) (*DiscordNotifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDiscordSession, err)
	}
	return NewDiscordNotifierWithSession(session, webhookID, webhookToken), nil
}

// NewDiscordNotifierWithSession uses an existing session, e.g. one with a custom HTTP client
func NewDiscordNotifierWithSession(session *discordgo.Session, webhookID, webhookToken string) *DiscordNotifier {
	return &DiscordNotifier{
		session:      session,
		webhookID:    webhookID,
		webhookToken: webhookToken,
	}
}

func (d *DiscordNotifier) Name() string { return SinkDiscord }

func (d *DiscordNotifier) Notify(ctx context.Context, reminder Reminder) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       reminder.Title,
			Description: reminder.Body,
			Footer:      &discordgo.MessageEmbedFooter{Text: reminder.Sport},
		}},
	}
	if _, err := d.session.WebhookExecute(d.webhookID, d.webhookToken, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDiscordExecute, err)
	}
	return nil
}
