package driven

// TokenProvider supplies the chat-transport credential. The transport
// holds its own authentication; the core never sees the token.
type TokenProvider interface {
	// Token returns the bot token, or an error when none is configured.
	Token() (string, error)
}
