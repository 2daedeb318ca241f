package yahtzee

// YahtzeeError is a custom error type for Yahtzee game errors
type YahtzeeError string

// Error implements the error interface
func (e YahtzeeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       YahtzeeError = "game not found"
	ErrPlayerNotFound     YahtzeeError = "player not found"
	ErrGameAlreadyExists  YahtzeeError = "a yahtzee game is already running in this channel"
	ErrGameFinished       YahtzeeError = "game is already finished"
	ErrInvalidPlayerCount YahtzeeError = "yahtzee is played with 1 to 8 players"
	ErrInvalidPlayerName  YahtzeeError = "player names cannot be empty"
	ErrDuplicatePlayer    YahtzeeError = "a player cannot join the same game twice"
	ErrInvalidPlayer      YahtzeeError = "player is not part of this game"
	ErrInvalidCategory    YahtzeeError = "unknown score card category"
	ErrInvalidScore       YahtzeeError = "score cannot be negative"
	ErrNoScores           YahtzeeError = "no scores have been recorded yet"
	ErrNilConfig          YahtzeeError = "config cannot be nil"
	ErrNilYahtzeeRepo     YahtzeeError = "yahtzee repository cannot be nil"
	ErrNilPlayerRepo      YahtzeeError = "player repository cannot be nil"
	ErrNilClock           YahtzeeError = "clock cannot be nil"
	ErrNilUUIDGenerator   YahtzeeError = "UUID generator cannot be nil"
)
