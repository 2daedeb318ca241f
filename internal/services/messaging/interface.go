package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundResultMessage returns a message for a scored Tarot round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetGameOverMessage returns a message announcing the winner of a game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetYahtzeeScoreMessage returns a comment for a written Yahtzee box
	GetYahtzeeScoreMessage(ctx context.Context, input *GetYahtzeeScoreMessageInput) (*GetYahtzeeScoreMessageOutput, error)
}
