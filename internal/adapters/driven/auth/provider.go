// Package auth resolves the Discord bot token from the environment or
// a token file.
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driven"
)

// EnvToken is the environment variable consulted before the token file.
const EnvToken = "PARLEY_DISCORD_TOKEN"

// Ensure DiscordTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*DiscordTokenProvider)(nil)

// DiscordTokenProvider reads the bot token from the environment first
// and falls back to a file. Tokens are trimmed of surrounding
// whitespace so trailing newlines in token files don't break auth.
type DiscordTokenProvider struct {
	filePath string
}

// NewDiscordTokenProvider creates a provider falling back to the given
// token file path.
func NewDiscordTokenProvider(filePath string) *DiscordTokenProvider {
	return &DiscordTokenProvider{filePath: filePath}
}

// Token returns the bot token, or ErrTokenNotFound when neither the
// environment variable nor the token file yields one.
func (p *DiscordTokenProvider) Token() (string, error) {
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return token, nil
	}

	if p.filePath == "" {
		return "", fmt.Errorf("%w: %s is unset and no token file is configured",
			domain.ErrTokenNotFound, EnvToken)
	}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s is unset and %s does not exist",
				domain.ErrTokenNotFound, EnvToken, p.filePath)
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: token file %s is empty",
			domain.ErrTokenNotFound, p.filePath)
	}
	return token, nil
}
