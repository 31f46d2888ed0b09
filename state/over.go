package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type over struct{}

func (*over) Next(session *Session) (consts.StateID, error) {
	winner := session.Game.Winner()
	if winner == nil {
		log.Infof("[%s] stopped after %d turns without a winner\n", session.Game.ID(), session.turns)
		return 0, nil
	}
	ui.Print(msg.Message.WinnerFound(winner.Name()))
	log.Infof("[%s] %s\n", session.Game.ID(), session.Game.Snapshot(winner))
	return 0, nil
}
