package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load(config.File())
	if err != nil {
		log.Error(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		return
	}
	ui.Delay = cfg.Delay

	pile := card.StandardDeck()
	pile.Shuffle()
	players := player.CreatePlayers(cfg.Players, cfg.HumanName)
	session := &state.Session{
		Game:     game.New(pile, players),
		HandSize: cfg.HandSize,
	}
	state.Load(session)
}
