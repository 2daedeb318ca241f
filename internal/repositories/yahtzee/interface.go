package yahtzee

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorepad/internal/repositories/yahtzee Repository

import (
	"context"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Repository defines the interface for Yahtzee game and score persistence
type Repository interface {
	// SaveGame persists a game and indexes it under each of its players
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.YahtzeeGame, error)

	// GetGameByChannel retrieves the unfinished game of a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.YahtzeeGame, error)

	// GetGamesForPlayer retrieves every game a player took part in, oldest first
	GetGamesForPlayer(ctx context.Context, input *GetGamesForPlayerInput) (*GetGamesForPlayerOutput, error)

	// SaveScore writes a box of a player's score card, replacing any previous value
	SaveScore(ctx context.Context, input *SaveScoreInput) error

	// GetScoresForGame retrieves every score written in a game
	GetScoresForGame(ctx context.Context, input *GetScoresForGameInput) (*GetScoresForGameOutput, error)

	// GetScoresForPlayer retrieves every score a player wrote across their games
	GetScoresForPlayer(ctx context.Context, input *GetScoresForPlayerInput) (*GetScoresForPlayerOutput, error)
}
