package tarot

import "context"

// Service defines the interface for Tarot score keeping
type Service interface {
	// CreateGame starts a new score sheet in a channel
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGameByChannel returns the running game of a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// AddRound scores a finished round and appends it to the game
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// UpdateRound rescores an existing round in place
	UpdateRound(ctx context.Context, input *UpdateRoundInput) (*UpdateRoundOutput, error)

	// DeleteRound removes a round and renumbers the rounds after it
	DeleteRound(ctx context.Context, input *DeleteRoundInput) (*DeleteRoundOutput, error)

	// GetScoreboard returns the running totals of every player
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// GetTakerPerformance returns per-player taker statistics
	GetTakerPerformance(ctx context.Context, input *GetTakerPerformanceInput) (*GetTakerPerformanceOutput, error)

	// EndGame completes a game and frees its channel
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
}
