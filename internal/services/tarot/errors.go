package tarot

// TarotError is a custom error type for Tarot game errors
type TarotError string

// Error implements the error interface
func (e TarotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound        TarotError = "game not found"
	ErrRoundNotFound       TarotError = "round not found"
	ErrGameAlreadyExists   TarotError = "a tarot game is already running in this channel"
	ErrGameNotActive       TarotError = "game is not active"
	ErrInvalidPlayerCount  TarotError = "tarot is played with 3, 4 or 5 players"
	ErrInvalidPlayerName   TarotError = "player names cannot be empty"
	ErrInvalidTaker        TarotError = "taker is not seated at this table"
	ErrInvalidCalledPlayer TarotError = "called player is not seated at this table"
	ErrCallNotAllowed      TarotError = "only 5-player games call a partner"
	ErrInvalidRound        TarotError = "invalid round"
	ErrNilConfig           TarotError = "config cannot be nil"
	ErrNilTarotRepo        TarotError = "tarot repository cannot be nil"
	ErrNilPlayerRepo       TarotError = "player repository cannot be nil"
	ErrNilClock            TarotError = "clock cannot be nil"
	ErrNilUUIDGenerator    TarotError = "UUID generator cannot be nil"
)
