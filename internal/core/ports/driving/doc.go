// Package driving defines the narrow surface the core exposes to
// transports: resolving an utterance to an intent and composing the
// response text. Everything else in the pipeline is internal.
package driving
