package messaging

import "github.com/KirkDiggler/scorepad/internal/models"

// GameType identifies which score sheet a message is about
type GameType string

const (
	GameTypeTarot   GameType = "tarot"
	GameTypeYahtzee GameType = "yahtzee"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable. Zero seeds from the clock.
	Seed int64
}

// GetRoundResultMessageInput contains the input for GetRoundResultMessage
type GetRoundResultMessageInput struct {
	TakerName string
	Bid       models.Bid
	IsWon     bool
	Chelem    models.Chelem

	// Score is the signed round score before it is split between players
	Score int
}

// GetRoundResultMessageOutput contains the output for GetRoundResultMessage
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
}

// GetGameOverMessageInput contains the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	GameType   GameType
	WinnerName string
	Score      int
}

// GetGameOverMessageOutput contains the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetYahtzeeScoreMessageInput contains the input for GetYahtzeeScoreMessage
type GetYahtzeeScoreMessageInput struct {
	PlayerName string
	Category   models.YahtzeeCategory
	Score      int
}

// GetYahtzeeScoreMessageOutput contains the output for GetYahtzeeScoreMessage
type GetYahtzeeScoreMessageOutput struct {
	Message string
}
