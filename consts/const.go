package consts

const (
	MinPlayers = 2
	MaxPlayers = 10

	DefaultPlayers  = 4
	DefaultHandSize = 7
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateDeal
	StateTurn
	StateOver
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsPlayersInvalid  = NewErr(1, true, "Players invalid. ")
	ErrorsHandSizeInvalid = NewErr(1, true, "Hand size invalid. ")
	ErrorsCardNotInHand   = NewErr(1, false, "Card is not in hand. ")
	ErrorsCardNotPlayable = NewErr(1, false, "Card does not match the putdown pile. ")
	ErrorsPickupPileEmpty = NewErr(1, true, "No cards left to pick up. ")
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsColorInvalid    = NewErr(1, false, "Color invalid. ")
)
