package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorepad/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves several players, in the order of the requested IDs
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// DeactivatePlayer flags a player as removed from the directory
	DeactivatePlayer(ctx context.Context, input *DeactivatePlayerInput) error
}
