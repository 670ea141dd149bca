package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	notificationChannelID string
	stream                *EventStream
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string // empty registers commands globally
	APIURL  string
	APIKey  string

	// NotificationChannelID receives level-up and bonus drop announcements; empty disables them
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:               s,
		Client:                apiclient.NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:                 cfg.AppID,
		GuildID:               cfg.GuildID,
		Registry:              NewCommandRegistry(),
		notificationChannelID: cfg.NotificationChannelID,
	}, nil
}

// Start opens the gateway connection and, when a notification channel is
// configured, starts following the API's event stream.
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.notificationChannelID != "" {
		b.stream = NewEventStream(b.Client.BaseURL, b.Client.APIKey, []string{EventTypeLevelUp, EventTypeBonusDrop})
		NewNotifier(b.Session, b.notificationChannelID).Subscribe(b.stream)
		b.stream.Start(ctx)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the event stream and the gateway connection
func (b *Bot) Stop() {
	if b.stream != nil {
		b.stream.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}

// ErrNoNotificationChannel is returned when announcements are not configured
var ErrNoNotificationChannel = errors.New("notification channel not configured")

// SendNotification posts an embed to the notification channel
func (b *Bot) SendNotification(embed *discordgo.MessageEmbed) error {
	if b.notificationChannelID == "" {
		return ErrNoNotificationChannel
	}
	_, err := b.Session.ChannelMessageSendEmbed(b.notificationChannelID, embed)
	return err
}
