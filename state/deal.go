package state

import (
	"github.com/ratel-online/uno/consts"
)

type deal struct{}

func (*deal) Next(session *Session) (consts.StateID, error) {
	if err := session.Game.Deal(session.HandSize); err != nil {
		return 0, err
	}
	if _, err := session.Game.PlayFirstCard(); err != nil {
		return 0, err
	}
	return consts.StateTurn, nil
}
