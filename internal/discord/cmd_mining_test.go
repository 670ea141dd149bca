package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func adminInteraction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := createTestInteraction(CommandMining, options)
	i.Member.Permissions = discordgo.PermissionAdministrator
	return i
}

func TestMiningCommand_View(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	ctx.Mux.HandleFunc("/api/v1/mining/players/user-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		WriteJSON(w, domain.SkillStatus{
			PlayerID:    "user-1",
			Skill:       domain.SkillMining,
			Level:       3,
			TotalXP:     433,
			XPIntoLevel: 50,
			XPForLevel:  520,
		})
	})

	handler(ctx.Session, createTestInteraction(CommandMining, nil), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	embed := (*edit.Embeds)[0]
	assert.Equal(t, "=== Mining ===\nLevel: 3\nXP: 50 / 520\nTotal XP: 433", embed.Description)
}

func TestMiningCommand_ViewOtherPlayer(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	var requested string
	ctx.Mux.HandleFunc("/api/v1/mining/players/", func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		WriteJSON(w, domain.SkillStatus{PlayerID: "steve", Skill: domain.SkillMining, Level: 1})
	})

	handler(ctx.Session, createTestInteraction(CommandMining, []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption(OptionPlayer, "steve"),
	}), ctx.APIClient)

	assert.Equal(t, "/api/v1/mining/players/steve", requested)
}

func TestMiningCommand_PlayerNotFound(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	ctx.Mux.HandleFunc("/api/v1/mining/players/user-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Player not found"}`))
	})

	handler(ctx.Session, createTestInteraction(CommandMining, nil), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgPlayerNotFound, *edit.Content)
}

func TestMiningCommand_AddLevel(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	ctx.Mux.HandleFunc("/api/v1/admin/mining/add-levels", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user-1", body["player_id"])
		assert.EqualValues(t, 2, body["levels"])
		WriteJSON(w, domain.SkillStatus{PlayerID: "user-1", Skill: domain.SkillMining, Level: 3, TotalXP: 433, XPIntoLevel: 50, XPForLevel: 520})
	})

	handler(ctx.Session, adminInteraction(
		stringOption(OptionOperation, "AddLevel"),
		intOption(OptionLevels, 2),
	), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	embed := (*edit.Embeds)[0]
	assert.Equal(t, "⛏️ Mining +2 levels", embed.Title)
	assert.Contains(t, embed.Description, "Level: 3")
	assert.Equal(t, FooterSkillForgeAdmin, embed.Footer.Text)
}

func TestMiningCommand_AddLevelRequiresLevels(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	handler(ctx.Session, adminInteraction(stringOption(OptionOperation, OperationAddLevel)), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgLevelsRequired, *edit.Content)
}

func TestMiningCommand_MutationsNeedAdmin(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	called := false
	ctx.Mux.HandleFunc("/api/v1/admin/mining/reset", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler(ctx.Session, createTestInteraction(CommandMining, []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption(OptionOperation, OperationReset),
	}), ctx.APIClient)

	assert.False(t, called)
	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, MsgAdminOnly, *edit.Content)
}

func TestMiningCommand_Reset(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	ctx.Mux.HandleFunc("/api/v1/admin/mining/reset", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.SkillStatus{PlayerID: "user-1", Skill: domain.SkillMining, Level: 1, XPForLevel: 100})
	})

	handler(ctx.Session, adminInteraction(stringOption(OptionOperation, OperationReset)), ctx.APIClient)

	embed := (*ctx.LastEdit(t).Embeds)[0]
	assert.Equal(t, "⛏️ Mining reset", embed.Title)
	assert.Equal(t, "=== Mining ===\nLevel: 1\nXP: 0 / 100\nTotal XP: 0", embed.Description)
}

func TestMiningCommand_UnknownOperation(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningCommand()

	handler(ctx.Session, adminInteraction(stringOption(OptionOperation, "prestige")), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Equal(t, "Unknown operation: prestige", *edit.Content)
}

func TestMiningLeaderboardCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := MiningLeaderboardCommand()

	ctx.Mux.HandleFunc("/api/v1/mining/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		WriteJSON(w, []domain.LeaderboardEntry{
			{Rank: 1, PlayerID: "alex", Level: 12, XP: 12500},
			{Rank: 2, PlayerID: "steve", Level: 3, XP: 433},
		})
	})

	handler(ctx.Session, createTestInteraction(CommandMiningLeaderboard, []*discordgo.ApplicationCommandInteractionDataOption{
		intOption(OptionLimit, 3),
	}), ctx.APIClient)

	embed := (*ctx.LastEdit(t).Embeds)[0]
	assert.Equal(t, "**#1** alex: Level 12 (12,500 XP)\n**#2** steve: Level 3 (433 XP)", embed.Description)
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	assert.Equal(t, "Nobody has mined anything yet.", FormatLeaderboard(nil))
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, isAdmin(createTestInteraction(CommandMining, nil)))
	assert.True(t, isAdmin(adminInteraction()))

	dm := createTestInteraction(CommandMining, nil)
	dm.Member = nil
	dm.User = &discordgo.User{ID: "u"}
	assert.False(t, isAdmin(dm))
}

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := PingCommand()
	ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"status": "ok"})
	})

	handler(ctx.Session, createTestInteraction("ping", nil), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Contains(t, *edit.Content, "Skill server answered")
}
