package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/utils"
)

// Mining command names and options
const (
	CommandMining            = "mining"
	CommandMiningLeaderboard = "mining-top"

	OptionOperation = "operation"
	OptionLevels    = "levels"
	OptionPlayer    = "player"
	OptionLimit     = "limit"

	OperationAddLevel = "addlevel"
	OperationReset    = "reset"

	colorMining      = 0xb87333 // Copper
	colorAdmin       = 0x95a5a6
	colorLeaderboard = 0x1abc9c
)

var numberPrinter = message.NewPrinter(language.English)

// Option bounds mirror the admin and leaderboard request limits
var (
	minLevelsOption float64 = -1000
	minLimitOption  float64 = 1
)

const (
	maxLevelsOption = 1000
	maxLimitOption  = 100
)

// MiningCommand returns the /mining command: without an operation it shows the
// player's level; addlevel and reset change it.
func MiningCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandMining,
		Description: "View or change a Mining level",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionOperation,
				Description: "addlevel or reset (leave empty to view)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLevels,
				Description: "Number of levels to add (addlevel only, may be negative)",
				Required:    false,
				MinValue:    &minLevelsOption,
				MaxValue:    maxLevelsOption,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionPlayer,
				Description: "Player id (default: your Discord id)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferReply(s, i) {
			return
		}

		ctx := context.Background()
		options := optionMap(i)

		playerID := invokingUser(i).ID
		if opt, ok := options[OptionPlayer]; ok && opt.StringValue() != "" {
			playerID = opt.StringValue()
		}

		operation := ""
		if opt, ok := options[OptionOperation]; ok {
			operation = strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}

		var (
			status *domain.SkillStatus
			err    error
			title  = "⛏️ Mining"
			color  = colorMining
			admin  bool
		)

		switch operation {
		case "":
			status, err = client.GetMiningStatus(ctx, playerID)
		case OperationAddLevel:
			opt, ok := options[OptionLevels]
			if !ok {
				editReply(s, i, MsgLevelsRequired)
				return
			}
			if !isAdmin(i) {
				editReply(s, i, MsgAdminOnly)
				return
			}
			status, err = client.AddMiningLevels(ctx, playerID, int(opt.IntValue()))
			title, color, admin = fmt.Sprintf("⛏️ Mining %+d levels", opt.IntValue()), colorAdmin, true
		case OperationReset:
			if !isAdmin(i) {
				editReply(s, i, MsgAdminOnly)
				return
			}
			status, err = client.ResetMining(ctx, playerID)
			title, color, admin = "⛏️ Mining reset", colorAdmin, true
		default:
			editReply(s, i, fmt.Sprintf(MsgUnknownOperation, operation))
			return
		}

		if err != nil {
			slog.Error("Mining command failed", "operation", operation, "player_id", playerID, "error", err)
			replyAPIError(s, i, err)
			return
		}

		editReplyEmbed(s, i, skillEmbed(title, FormatSkillStatus(status), color, admin))
	}

	return cmd, handler
}

// MiningLeaderboardCommand returns the /mining-top command
func MiningLeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandMiningLeaderboard,
		Description: "Top miners by total XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionLimit,
				Description: "Number of players to show (default: 10)",
				Required:    false,
				MinValue:    &minLimitOption,
				MaxValue:    maxLimitOption,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferReply(s, i) {
			return
		}

		limit := 0
		if opt, ok := optionMap(i)[OptionLimit]; ok {
			limit = int(opt.IntValue())
		}

		entries, err := client.MiningLeaderboard(context.Background(), limit)
		if err != nil {
			slog.Error("Failed to get mining leaderboard", "error", err)
			replyAPIError(s, i, err)
			return
		}

		editReplyEmbed(s, i, skillEmbed("🏆 Mining Leaderboard", FormatLeaderboard(entries), colorLeaderboard, false))
	}

	return cmd, handler
}

// FormatSkillStatus renders the level view shown by /mining
func FormatSkillStatus(status *domain.SkillStatus) string {
	return numberPrinter.Sprintf("=== %s ===\nLevel: %d\nXP: %d / %d\nTotal XP: %d",
		utils.DisplayName(status.Skill),
		status.Level,
		status.XPIntoLevel,
		status.XPForLevel,
		status.TotalXP)
}

// FormatLeaderboard renders leaderboard rows, one per line
func FormatLeaderboard(entries []domain.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "Nobody has mined anything yet."
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(numberPrinter.Sprintf("**#%d** %s: Level %d (%d XP)\n", e.Rank, e.PlayerID, e.Level, e.XP))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// isAdmin reports whether the invoking member has the Administrator permission.
// Direct messages have no member and are never admin.
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}
