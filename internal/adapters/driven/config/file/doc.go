// Package file provides the file-based implementation of the
// ConfigStore driven port: TOML configuration persisted under the
// parley config directory.
package file
