package yahtzee

import "github.com/KirkDiggler/scorepad/internal/models"

// PlayerStatisticsInput contains everything needed to summarise one player
type PlayerStatisticsInput struct {
	PlayerID   string
	PlayerName string

	// Games are the games the player took part in
	Games []*models.YahtzeeGame

	// PlayerScores are the player's scores across Games
	PlayerScores []*models.YahtzeeScore

	// AllScores are the scores of every player in Games. Not consulted.
	AllScores []*models.YahtzeeScore
}
