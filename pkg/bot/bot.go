// Package bot adapts move engines to a chat-style game host: the host sends
// the moves played so far and gets a move back, and may send chat messages.
package bot

import (
	"fmt"
	"io"
	"log"

	"furrybot/pkg/engine"
	"furrybot/pkg/theory"
)

// ChessBot is the interface every bot exposes to the host
type ChessBot interface {
	Name() string
	// NextMove returns a move in coordinate notation, or "" when no legal move exists
	NextMove(history []string) (string, error)
	Reply(chat string) string
}

// FurryBot plays the move chosen by a minimax engine
type FurryBot struct {
	Engine *engine.Engine
	Log    *log.Logger
}

// NewFurryBot returns a FurryBot with a default engine
func NewFurryBot() *FurryBot {
	return &FurryBot{
		Engine: engine.NewEngine(),
		Log:    log.New(io.Discard, "[FURRY] ", 0),
	}
}

func (b *FurryBot) Name() string {
	return "FurryBot"
}

func (b *FurryBot) NextMove(history []string) (string, error) {
	choice, err := b.Engine.SelectMove(history)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	if choice == nil {
		b.logf("no move after %d plies", len(history))
		return "", nil
	}
	if b.logging() {
		if name := theory.Name(history); name != "" {
			b.logf("in the %s", name)
		}
	}
	b.logf("move:%s score:%d nodes:%d", choice.UCI, choice.Score, choice.Nodes)
	return choice.UCI, nil
}

// Reply answers any chat message with the bot's name
func (b *FurryBot) Reply(chat string) string {
	return "FurryBot"
}

// logging reports whether log lines go anywhere
func (b *FurryBot) logging() bool {
	return b.Log != nil && b.Log.Writer() != io.Discard
}

func (b *FurryBot) logf(format string, args ...interface{}) {
	if b.logging() {
		b.Log.Printf(format, args...)
	}
}
