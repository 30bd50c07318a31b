package consts

const (
	DefaultCardsPerPlayer = 7

	StandardWildCount      = 4
	StandardWildDrawAmount = 4
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
	ErrorsPlayerCountInvalid    = NewErr(1, true, "Player count invalid. ")
	ErrorsCardsPerPlayerInvalid = NewErr(1, true, "Cards per player invalid. ")
	ErrorsInsufficientCards     = NewErr(1, true, "Not enough cards to deal every seat. ")
	ErrorsPlayDirectionInvalid  = NewErr(1, true, "Play direction must be 1 or -1. ")
	ErrorsNotWildCard           = NewErr(1, true, "Only wild cards accept a resolved color. ")
	ErrorsColorResolved         = NewErr(1, true, "Wild card color already resolved. ")
	ErrorsColorInvalid          = NewErr(1, false, "Color invalid. ")
)
