package yahtzee

import (
	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	playerRepo "github.com/KirkDiggler/scorepad/internal/repositories/player"
	yahtzeeRepo "github.com/KirkDiggler/scorepad/internal/repositories/yahtzee"
)

// Config holds configuration for the Yahtzee service
type Config struct {
	// Repository dependencies
	YahtzeeRepo yahtzeeRepo.Repository
	PlayerRepo  playerRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerInput identifies someone joining a game.
// An empty ID creates a guest player with a generated ID.
type PlayerInput struct {
	ID   string
	Name string
}

// CreateGameInput contains parameters for starting a game
type CreateGameInput struct {
	ChannelID string

	// Players are the players in turn order
	Players []PlayerInput
}

// CreateGameOutput contains the result of starting a game
type CreateGameOutput struct {
	Game    *models.YahtzeeGame
	Players []*models.Player
}

// GetGameByChannelInput contains parameters for finding a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByChannelOutput contains the unfinished game of a channel
type GetGameByChannelOutput struct {
	Game    *models.YahtzeeGame
	Players []*models.Player
}

// RecordScoreInput contains parameters for writing a score
type RecordScoreInput struct {
	GameID string

	// PlayerIndex is the player's position in the game, starting at 0
	PlayerIndex int

	Category models.YahtzeeCategory
	Score    int
}

// RecordScoreOutput contains the written score and the player's new total
type RecordScoreOutput struct {
	Score  *models.YahtzeeScore
	Player *models.Player

	// Total includes the upper section bonus once it is earned
	Total int
}

// FinishGameInput contains parameters for finishing a game
type FinishGameInput struct {
	GameID string
}

// FinishGameOutput contains the finished game and its final standings
type FinishGameOutput struct {
	Game    *models.YahtzeeGame
	Entries []TotalEntry
}

// GetGameTotalsInput contains parameters for reading a game's totals
type GetGameTotalsInput struct {
	GameID string
}

// TotalEntry is one player's line on the game's score sheet
type TotalEntry struct {
	PlayerID    string
	PlayerName  string
	AvatarColor string
	Seat        int
	Total       int

	// Filled is the number of categories the player has written
	Filled int
}

// GetGameTotalsOutput contains every player's total, highest first
type GetGameTotalsOutput struct {
	Game    *models.YahtzeeGame
	Entries []TotalEntry
}

// GetPlayerStatisticsInput contains parameters for a player's statistics
type GetPlayerStatisticsInput struct {
	PlayerID string
}

// GetPlayerStatisticsOutput contains a player's figures across all games
type GetPlayerStatisticsOutput struct {
	Statistics     *models.PlayerStatistics
	CategoryStats  map[models.YahtzeeCategory]*models.CategoryStat
	YahtzeeCount   int
	UpperBonusRate float64

	UpperSectionAverage float64
	LowerSectionAverage float64
}
