package player

import "github.com/KirkDiggler/scorepad/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInput contains parameters for retrieving several players
type GetPlayersInput struct {
	PlayerIDs []string
}

// GetPlayersOutput contains the players, in the order they were requested
type GetPlayersOutput struct {
	Players []*models.Player
}

// DeactivatePlayerInput contains parameters for deactivating a player
type DeactivatePlayerInput struct {
	PlayerID string
}
