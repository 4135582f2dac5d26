package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	knowledgefile "github.com/hearthlabs/parley/internal/adapters/driven/knowledge/file"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Knowledge file maintenance",
}

var kbCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a knowledge file",
	Long: `Parses the knowledge file and compiles every pattern. Malformed
files fail the command; patterns that fail to compile are reported as
warnings, matching how the resolver skips them at runtime.

Checks the named file, or the configured knowledge file when no
argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKBCheck,
}

func init() {
	kbCmd.AddCommand(kbCheckCmd)
	rootCmd.AddCommand(kbCmd)
}

func runKBCheck(cmd *cobra.Command, args []string) error {
	path := knowledgePath()
	if len(args) > 0 {
		path = args[0]
	}

	source := knowledgefile.New(path)
	kb, err := source.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("knowledge file invalid: %w", err)
	}

	broken := 0
	for intent := 0; intent < kb.Len(); intent++ {
		pattern := kb.Pattern(intent)
		if _, err := regexp.Compile("(?i)^" + pattern + "$"); err != nil {
			broken++
			cmd.Printf("  warning: entry %d pattern %q does not compile: %v\n", intent, pattern, err)
		}
	}

	cmd.Printf("%s: %d entries", source.Path(), kb.Len())
	if broken > 0 {
		cmd.Printf(", %d broken patterns (will be skipped at runtime)", broken)
	}
	cmd.Println()
	return nil
}
