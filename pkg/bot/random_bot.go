package bot

import (
	"fmt"
	"math/rand"

	"furrybot/pkg/rules"
)

// RandomBot plays a uniformly random legal move. With Forcing set it only
// considers mating moves, or checks when there is no mate.
type RandomBot struct {
	Rand        *rand.Rand
	Forcing     bool
	NewPosition rules.Factory
}

// NewRandomBot returns a RandomBot seeded with seed
func NewRandomBot(seed int64, forcing bool) *RandomBot {
	return &RandomBot{
		Rand:        rand.New(rand.NewSource(seed)),
		Forcing:     forcing,
		NewPosition: rules.NewNotnil,
	}
}

func (b *RandomBot) Name() string {
	if b.Forcing {
		return "Forcing Random Bot"
	}
	return "Random Bot"
}

func (b *RandomBot) NextMove(history []string) (string, error) {
	factory := b.NewPosition
	if factory == nil {
		factory = rules.NewNotnil
	}
	pos, err := factory(history)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	moves := pos.LegalMoves()
	if b.Forcing {
		if forcing := FilterForcing(pos, moves); len(forcing) > 0 {
			moves = forcing
		}
	}
	if len(moves) == 0 {
		return "", nil
	}
	return pos.UCI(moves[b.Rand.Intn(len(moves))]), nil
}

func (b *RandomBot) Reply(chat string) string {
	return b.Name()
}

// FilterForcing keeps the moves that deliver mate, or the checks when none do
func FilterForcing(pos rules.Position, moves []rules.Move) []rules.Move {
	var mates, checks []rules.Move
	for _, m := range moves {
		if !m.Check {
			continue
		}
		checks = append(checks, m)
		undo := pos.Apply(m)
		if pos.Status() == rules.Checkmate {
			mates = append(mates, m)
		}
		undo()
	}
	if len(mates) > 0 {
		return mates
	}
	return checks
}
