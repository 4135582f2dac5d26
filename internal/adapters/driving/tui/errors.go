package tui

import "errors"

// ErrMissingResolver indicates the Resolver port was not provided.
var ErrMissingResolver = errors.New("resolver service is required")
