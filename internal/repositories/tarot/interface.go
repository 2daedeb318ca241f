package tarot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorepad/internal/repositories/tarot Repository

import (
	"context"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Repository defines the interface for Tarot game and round persistence
type Repository interface {
	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.TarotGame, error)

	// GetGameByChannel retrieves the active game of a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.TarotGame, error)

	// SaveRound creates a round or replaces the round with the same ID
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// NextRoundNumber hands out the number of the next round of a game.
	// Concurrent callers never get the same number.
	NextRoundNumber(ctx context.Context, input *NextRoundNumberInput) (int, error)

	// GetRound retrieves a single round of a game
	GetRound(ctx context.Context, input *GetRoundInput) (*models.TarotRound, error)

	// GetRounds retrieves all rounds of a game ordered by round number
	GetRounds(ctx context.Context, input *GetRoundsInput) (*GetRoundsOutput, error)

	// DeleteRound removes a round from a game
	DeleteRound(ctx context.Context, input *DeleteRoundInput) error
}
