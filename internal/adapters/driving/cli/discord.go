package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hearthlabs/parley/internal/adapters/driven/auth"
	configfile "github.com/hearthlabs/parley/internal/adapters/driven/config/file"
	knowledgefile "github.com/hearthlabs/parley/internal/adapters/driven/knowledge/file"
	"github.com/hearthlabs/parley/internal/adapters/driving/discord"
	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/logger"
)

var discordCmd = &cobra.Command{
	Use:   "discord",
	Short: "Run the Discord bot",
	Long: `Connects to Discord and answers guild messages with knowledge-base
responses. The bot token is read from the ` + auth.EnvToken + `
environment variable, falling back to the token file named in config
(discord.token_file). The knowledge file is watched and hot-reloaded
while the bot runs.`,
	RunE: runDiscord,
}

func init() {
	rootCmd.AddCommand(discordCmd)
}

func runDiscord(cmd *cobra.Command, _ []string) error {
	tokens := auth.NewDiscordTokenProvider(configStore.GetString(configfile.KeyDiscordTokenFile))
	token, err := tokens.Token()
	if err != nil {
		return err
	}

	resolver, source, cleanup, err := buildResolver(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := knowledgefile.Watch(ctx, source, func(kb *domain.KnowledgeBase) {
		resolver.SwapKnowledgeBase(kb)
	})
	if err != nil {
		logger.Warn("knowledge watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	bot, err := discord.NewBot(resolver, configStore.GetInt(configfile.KeyDiscordRateLimit))
	if err != nil {
		return err
	}

	cmd.Println("Discord bot running. Press Ctrl+C to stop.")
	if err := bot.Run(ctx, token); err != nil {
		return fmt.Errorf("discord bot: %w", err)
	}
	return nil
}
