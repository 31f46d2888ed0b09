package player

import (
	"github.com/ratel-online/core/util/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// MaxBots is how many computer players CreatePlayers can name.
var MaxBots = len(botNames)

// CreatePlayers seats the human first, followed by numberOfPlayers-1 computer
// players. The human is always seated and at most MaxBots computers join.
func CreatePlayers(numberOfPlayers int, humanPlayerName string) []Player {
	if numberOfPlayers < 1 {
		numberOfPlayers = 1
	}
	if numberOfPlayers-1 > MaxBots {
		numberOfPlayers = MaxBots + 1
	}
	players := make([]Player, 0, numberOfPlayers)
	players = append(players, NewHumanPlayer(humanPlayerName))
	players = append(players, generateBots(numberOfPlayers-1)...)
	return players
}

func generateBots(amount int) []Player {
	names := make([]string, len(botNames))
	copy(names, botNames)
	for i := len(names) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}

	bots := make([]Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewComputerPlayer(botName))
	}
	return bots
}
