// Parley is a FAQ chatbot with an intent-resolution pipeline at its core.
// It answers from a knowledge base of regex patterns, question phrasings,
// and answers, and synthesizes fallback responses for everything else.
package main

import (
	"fmt"
	"os"

	"github.com/hearthlabs/parley/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
