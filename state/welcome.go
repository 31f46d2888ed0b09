package state

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type welcome struct{}

func (*welcome) Next(session *Session) (consts.StateID, error) {
	ui.Print(msg.Message.Welcome())
	return consts.StateDeal, nil
}
