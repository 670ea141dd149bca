package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/discord"
	"github.com/osse101/SkillForge_Go/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	if err := config.ValidateEnv(config.DiscordRequiredEnvVars...); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-discord", cfg.Version, cfg.Environment, false))
	slog.Info("Configured API URL", "url", cfg.APIURL)
	if cfg.DiscordNotificationChannelID != "" {
		slog.Info("Event notifications enabled", "channel_id", cfg.DiscordNotificationChannelID)
	}

	bot, err := discord.New(discord.Config{
		Token:                 cfg.DiscordToken,
		AppID:                 cfg.DiscordAppID,
		GuildID:               cfg.DiscordGuildID,
		APIURL:                cfg.APIURL,
		APIKey:                cfg.APIKey,
		NotificationChannelID: cfg.DiscordNotificationChannelID,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.DiscordWebhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	if cfg.DiscordForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		// Commands registered earlier keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.MiningCommand,
		discord.MiningLeaderboardCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
