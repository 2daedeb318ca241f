package yahtzee

import "context"

// Service defines the interface for Yahtzee score keeping
type Service interface {
	// CreateGame starts a new score card in a channel
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGameByChannel returns the unfinished game of a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// RecordScore writes a box of a player's score card
	RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error)

	// FinishGame closes a game and records its winner
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)

	// GetGameTotals returns every player's total in a game
	GetGameTotals(ctx context.Context, input *GetGameTotalsInput) (*GetGameTotalsOutput, error)

	// GetPlayerStatistics summarises a player's history across games
	GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error)
}
