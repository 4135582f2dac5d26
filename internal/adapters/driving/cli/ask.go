package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [utterance]",
	Short: "Resolve a single utterance and print the response",
	Long: `Resolves one utterance against the knowledge base and prints the
composed response. Multiple arguments are joined with spaces, so quoting
the whole question is optional.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON shape for --json output.
type askOutput struct {
	Utterance string `json:"utterance"`
	Intent    int    `json:"intent"`
	Resolved  bool   `json:"resolved"`
	Response  string `json:"response"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	resolver, _, cleanup, err := buildResolver(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	utterance := strings.Join(args, " ")
	result, err := resolver.Understand(cmd.Context(), utterance)
	if err != nil {
		return fmt.Errorf("resolving utterance: %w", err)
	}
	response := resolver.Respond(result)

	if askJSON {
		data, err := json.MarshalIndent(askOutput{
			Utterance: utterance,
			Intent:    result.Intent,
			Resolved:  result.Resolved(),
			Response:  response,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(response)
	return nil
}
