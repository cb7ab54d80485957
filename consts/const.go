package consts

const (
	MinPlayers = 2
	// MaxPlayers is the largest table a 108 card deck can deal plus flip a top card for.
	MaxPlayers = 15

	HandSize = 7

	WinningScore      = 500
	MaxTurnsPerRound  = 2000
	MaxRoundsPerMatch = 100
	DefaultConcurrent = 4
	DefaultStrategy   = "good"
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
	ErrorsNotEnoughPlayers = NewErr(1, true, "At least 2 players are required to start a game. ")
	ErrorsTooManyPlayers   = NewErr(1, true, "Too many players for a single deck. ")
	ErrorsGameStarted      = NewErr(1, true, "Game has already started. ")
	ErrorsGameNotStarted   = NewErr(1, false, "Game has not started. ")
	ErrorsPlayerInvalid    = NewErr(1, false, "Player invalid. ")
	ErrorsSessionInvalid   = NewErr(1, false, "Session invalid. ")
	ErrorsConfigInvalid    = NewErr(1, true, "Config invalid. ")
)
