// Package discord runs the resolver as a Discord bot. Every guild
// message the bot can read is resolved and answered in the channel it
// arrived on.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hearthlabs/parley/internal/core/domain"
	"github.com/hearthlabs/parley/internal/core/ports/driving"
	"github.com/hearthlabs/parley/internal/core/services"
	"github.com/hearthlabs/parley/internal/logger"
)

// defaultMessagesPerSecond caps outbound messages below Discord's
// per-channel limit.
const defaultMessagesPerSecond = 5

// resolveTimeout bounds one message's trip through the pipeline, so a
// slow annotation cannot stall the analyzer mutex for every queued
// message behind it.
const resolveTimeout = 10 * time.Second

// Sender delivers a reply to a channel. Satisfied by discordgo's
// session; tests substitute their own.
type Sender interface {
	Send(channelID, content string) error
}

// message is the slice of a Discord event the bot acts on.
type message struct {
	AuthorID  string
	ChannelID string
	Content   string
}

// Bot resolves incoming Discord messages and replies with composed
// responses.
type Bot struct {
	resolver driving.Resolver
	limiter  *rate.Limiter
	selfID   string
}

// NewBot creates a bot over the given resolver. messagesPerSecond
// bounds outbound replies; zero or negative selects the default.
func NewBot(resolver driving.Resolver, messagesPerSecond int) (*Bot, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver service is required")
	}
	if messagesPerSecond <= 0 {
		messagesPerSecond = defaultMessagesPerSecond
	}

	return &Bot{
		resolver: resolver,
		limiter:  rate.NewLimiter(rate.Limit(messagesPerSecond), messagesPerSecond),
	}, nil
}

// Run connects to Discord and serves messages until the context is
// cancelled.
func (b *Bot) Run(ctx context.Context, token string) error {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	// Handlers run on their own goroutines, so they only read bot state.
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.handleMessage(ctx, message{
			AuthorID:  m.Author.ID,
			ChannelID: m.ChannelID,
			Content:   m.Content,
		}, sessionSender{session: s})
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("opening discord connection: %w", err)
	}
	// State.User is populated by the Ready event, which Open waits for.
	b.selfID = session.State.User.ID
	logger.Info("discord bot connected as %s", session.State.User.Username)

	<-ctx.Done()
	return session.Close()
}

// handleMessage resolves one incoming message and sends the reply.
// Messages from the bot itself are ignored. Recoverable resolution
// errors degrade to the apology response via Respond on an unresolved
// result; cancellation stops the reply entirely.
func (b *Bot) handleMessage(ctx context.Context, msg message, sender Sender) {
	if msg.AuthorID == b.selfID {
		return
	}

	id := uuid.NewString()
	logger.Debug("[%s] message from %s: %q", id, msg.AuthorID, msg.Content)

	rctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	result, err := b.resolver.Understand(rctx, msg.Content)
	if err != nil {
		if !services.IsRecoverable(err) {
			return
		}
		logger.Warn("[%s] resolution failed: %v", id, err)
		result = domain.Unresolved()
	}
	response := b.resolver.Respond(result)

	if err := b.limiter.Wait(ctx); err != nil {
		return
	}
	if err := sender.Send(msg.ChannelID, response); err != nil {
		logger.Warn("[%s] sending reply: %v", id, err)
	}
}

// sessionSender adapts a live discordgo session to the Sender
// interface.
type sessionSender struct {
	session *discordgo.Session
}

func (s sessionSender) Send(channelID, content string) error {
	_, err := s.session.ChannelMessageSend(channelID, content)
	return err
}
