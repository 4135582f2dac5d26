package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	configfile "github.com/hearthlabs/parley/internal/adapters/driven/config/file"
	knowledgefile "github.com/hearthlabs/parley/internal/adapters/driven/knowledge/file"
	"github.com/hearthlabs/parley/internal/adapters/driving/tui"
	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/logger"
)

var chatWatch bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat TUI",
	Long: `Launch the interactive terminal chat interface.

Type a question and press Enter to get an answer. Say "goodbye" or
press Esc to leave. With --watch the knowledge file is reloaded when it
changes on disk.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatWatch, "watch", false, "reload the knowledge file on change")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug still produces a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	resolver, source, cleanup, err := buildResolver(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if chatWatch {
		watcher, err := knowledgefile.Watch(cmd.Context(), source, func(kb *domain.KnowledgeBase) {
			resolver.SwapKnowledgeBase(kb)
		})
		if err != nil {
			logger.Warn("knowledge watch unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	app, err := tui.NewApp(&tui.Ports{
		Resolver: resolver,
		Greeting: configStore.GetString(configfile.KeyGreeting),
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
