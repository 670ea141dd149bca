package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkillForge_Go/internal/sse"
	"github.com/osse101/SkillForge_Go/internal/utils"
)

// EmbedSender posts an embed to a channel; *discordgo.Session satisfies it
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier announces skill events in a Discord channel
type Notifier struct {
	sender             EmbedSender
	notificationChanID string
}

// NewNotifier creates a notifier posting to notificationChanID
func NewNotifier(sender EmbedSender, notificationChanID string) *Notifier {
	return &Notifier{
		sender:             sender,
		notificationChanID: notificationChanID,
	}
}

// Subscribe registers the notifier's handlers on a stream
func (n *Notifier) Subscribe(stream *EventStream) {
	stream.OnEvent(EventTypeLevelUp, n.handleLevelUp)
	stream.OnEvent(EventTypeBonusDrop, n.handleBonusDrop)
}

func (n *Notifier) handleLevelUp(event StreamEvent) error {
	var payload sse.LevelUpPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(streamLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}

	skillName := utils.DisplayName(payload.Skill)
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Level Up! %s", skillName),
		Description: fmt.Sprintf("**%s** reached **level %d** in %s!", payload.PlayerID, payload.NewLevel, skillName),
		Color:       0xFFD700, // Gold
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Skill", Value: skillName, Inline: true},
			{Name: "New Level", Value: fmt.Sprintf("%d", payload.NewLevel), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterSkillForge},
	}

	return n.send(event, embed, "player_id", payload.PlayerID, "level", payload.NewLevel)
}

func (n *Notifier) handleBonusDrop(event StreamEvent) error {
	var payload sse.BonusDropPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(streamLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Bonus Drop!",
		Description: fmt.Sprintf("**%s** found %dx %s from %s.", payload.PlayerID, payload.Amount, payload.ItemID, utils.DisplayName(payload.Skill)),
		Color:       0xb87333,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterSkillForge},
	}

	return n.send(event, embed, "player_id", payload.PlayerID, "item_id", payload.ItemID)
}

func (n *Notifier) send(event StreamEvent, embed *discordgo.MessageEmbed, logAttrs ...any) error {
	if n.notificationChanID == "" {
		return nil
	}

	if _, err := n.sender.ChannelMessageSendEmbed(n.notificationChanID, embed); err != nil {
		slog.Error(streamLogMsgNotificationFailed, "error", err, "event_type", event.Type)
		return err
	}

	slog.Info(streamLogMsgNotificationSent, append([]any{"event_type", event.Type}, logAttrs...)...)
	return nil
}
