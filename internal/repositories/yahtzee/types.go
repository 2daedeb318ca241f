package yahtzee

import "github.com/KirkDiggler/scorepad/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.YahtzeeGame
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByChannelInput contains parameters for retrieving a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGamesForPlayerInput contains parameters for retrieving a player's games
type GetGamesForPlayerInput struct {
	PlayerID string
}

// GetGamesForPlayerOutput contains the games of a player
type GetGamesForPlayerOutput struct {
	Games []*models.YahtzeeGame
}

// SaveScoreInput contains parameters for saving a score
type SaveScoreInput struct {
	Score *models.YahtzeeScore
}

// GetScoresForGameInput contains parameters for retrieving the scores of a game
type GetScoresForGameInput struct {
	GameID string
}

// GetScoresForGameOutput contains the scores of a game
type GetScoresForGameOutput struct {
	Scores []*models.YahtzeeScore
}

// GetScoresForPlayerInput contains parameters for retrieving the scores of a player
type GetScoresForPlayerInput struct {
	PlayerID string
}

// GetScoresForPlayerOutput contains the scores of a player
type GetScoresForPlayerOutput struct {
	Scores []*models.YahtzeeScore
}
