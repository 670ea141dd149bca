package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand checks that the bot is alive and that the skill server answers
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and skill server are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferReply(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()

		start := time.Now()
		if err := client.Healthz(ctx); err != nil {
			editReply(s, i, "Pong! 🏓 but the skill server is not answering.")
			return
		}
		editReply(s, i, fmt.Sprintf("Pong! 🏓 Skill server answered in %dms.", time.Since(start).Milliseconds()))
	}

	return cmd, handler
}
