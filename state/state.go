package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateDeal, &deal{})
	register(consts.StateTurn, &turn{})
	register(consts.StateOver, &over{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Session is one terminal game from the welcome banner to the winner.
type Session struct {
	Game     *game.Game
	HandSize int
	// MaxTurns ends the session without a winner once reached. Zero means no limit.
	MaxTurns int

	turns int
}

func (s *Session) Turns() int {
	return s.turns
}

type State interface {
	Next(session *Session) (consts.StateID, error)
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Load runs the session state by state until one of them returns no successor.
func Load(session *Session) error {
	defer subscribe(&eventPrinter{session: session})()

	stateID := Root()
	for stateID > 0 {
		next, err := states[stateID].Next(session)
		if err != nil {
			log.Error(err)
			return err
		}
		stateID = next
	}
	return nil
}
