package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
)

// APIClient is the SkillForge API client used by command handlers
type APIClient = apiclient.APIClient

// CommandHandler answers one slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry maps slash command names to their definition and handler
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates an empty registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command. A second registration under the same name replaces the first.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle runs the handler for a slash command. Buttons and autocomplete are ignored.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		RecordCommand()
		h(s, i, client)
	}
}

// sorted returns the registered commands ordered by name
func (r *CommandRegistry) sorted() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(a, b int) bool { return cmds[a].Name < cmds[b].Name })
	return cmds
}

// RegisterCommands publishes /mining, /mining-top and /ping to the configured
// guild (or globally without one). Discord rate limits command writes, so the
// overwrite is skipped when the published set already matches.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	desired := registry.sorted()

	if !forceUpdate {
		published, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
		if err != nil {
			return fmt.Errorf("failed to fetch published commands: %w", err)
		}
		if commandSetsMatch(published, desired) {
			slog.Info("Slash commands up to date", "count", len(desired), "guild_id", b.GuildID)
			return nil
		}
		slog.Info("Slash commands changed", "published", len(published), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desired); err != nil {
		return fmt.Errorf("failed to publish commands: %w", err)
	}
	slog.Info("Slash commands published", "count", len(desired), "forced", forceUpdate, "guild_id", b.GuildID)
	return nil
}

// commandSetsMatch compares two command sets by fingerprint, ignoring order
// and the ids Discord assigns.
func commandSetsMatch(published, desired []*discordgo.ApplicationCommand) bool {
	if len(published) != len(desired) {
		return false
	}
	have := make(map[string]string, len(published))
	for _, cmd := range published {
		have[cmd.Name] = commandFingerprint(cmd)
	}
	for _, cmd := range desired {
		if fp, ok := have[cmd.Name]; !ok || fp != commandFingerprint(cmd) {
			return false
		}
	}
	return true
}

// commandFingerprint flattens the fields users can see: names, descriptions,
// permissions, and option bounds.
func commandFingerprint(cmd *discordgo.ApplicationCommand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|", cmd.Name, cmd.Description)
	if cmd.DefaultMemberPermissions != nil {
		fmt.Fprintf(&b, "perm=%d", *cmd.DefaultMemberPermissions)
	}
	writeOptionFingerprints(&b, cmd.Options)
	return b.String()
}

func writeOptionFingerprints(b *strings.Builder, opts []*discordgo.ApplicationCommandOption) {
	for _, o := range opts {
		fmt.Fprintf(b, "(%d:%s|%s|req=%t|max=%g", o.Type, o.Name, o.Description, o.Required, o.MaxValue)
		if o.MinValue != nil {
			fmt.Fprintf(b, "|min=%g", *o.MinValue)
		}
		for _, c := range o.Choices {
			fmt.Fprintf(b, "|%s=%v", c.Name, c.Value)
		}
		writeOptionFingerprints(b, o.Options)
		b.WriteByte(')')
	}
}

// deferReply acknowledges the interaction so API calls can outlast Discord's
// 3 second window. Handlers return when it fails.
func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to defer interaction", "error", err)
		return false
	}
	return true
}

// editReply replaces the deferred reply with text
func editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		slog.Error("Failed to edit interaction reply", "error", err)
	}
}

// editReplyEmbed replaces the deferred reply with one embed
func editReplyEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to edit interaction reply", "error", err)
	}
}

// replyAPIError tells the player what went wrong with a skill server call
func replyAPIError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	editReply(s, i, apiErrorMessage(err))
}

// apiErrorMessage maps API client errors onto player-facing text
func apiErrorMessage(err error) string {
	if err == nil {
		return MsgGenericError
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest:
			return MsgInvalidRequest
		case http.StatusNotFound:
			return MsgPlayerNotFound
		case http.StatusServiceUnavailable:
			return MsgServerUnavailable
		}
	}

	msg := strings.TrimPrefix(err.Error(), "API error: ")
	switch {
	case strings.Contains(msg, "Player not found"):
		return MsgPlayerNotFound
	case strings.Contains(msg, "temporarily unavailable"), strings.Contains(msg, "max retries exceeded"):
		return MsgServerUnavailable
	case strings.Contains(msg, "Invalid request"):
		return MsgInvalidRequest
	default:
		return "❌ " + msg
	}
}

// invokingUser is the member's user in a guild and the plain user in a DM
func invokingUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the top-level command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

// skillEmbed builds the reply card for mining commands. Admin changes carry the admin footer.
func skillEmbed(title, body string, color int, admin bool) *discordgo.MessageEmbed {
	footer := FooterSkillForge
	if admin {
		footer = FooterSkillForgeAdmin
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}
