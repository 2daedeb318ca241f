package tarot

import "github.com/KirkDiggler/scorepad/internal/models"

// ScoreInput contains the announcements and card count of a finished round
type ScoreInput struct {
	Bid            models.Bid
	Bouts          int
	PointsScored   int
	HasPetitAuBout bool
	HasPoignee     bool

	// PoigneeLevel is required when HasPoignee is set and ignored otherwise
	PoigneeLevel *models.PoigneeLevel

	Chelem models.Chelem
}

// RoundResult is the taker-relative outcome of a round
type RoundResult struct {
	PointsScored int
	PointsNeeded int

	// BaseScore is the contract value, multiplied by the bid and signed by the outcome
	BaseScore int

	// Bonus is the sum of petit au bout, poignée and chelem
	Bonus int

	TotalScore int
	IsWon      bool
}
