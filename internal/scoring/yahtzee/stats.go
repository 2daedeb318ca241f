// Package yahtzee aggregates Yahtzee score cards into player statistics.
package yahtzee

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/KirkDiggler/scorepad/internal/models"
)

const (
	// UpperBonusThreshold is the upper subtotal that earns the bonus
	UpperBonusThreshold = 63

	// UpperBonus is added to a game total when the threshold is reached
	UpperBonus = 35

	// YahtzeeScore is the value of the first Yahtzee
	YahtzeeScore = 50

	// YahtzeeBonus is added to the Yahtzee box for every extra Yahtzee
	YahtzeeBonus = 100
)

// CountYahtzees counts the Yahtzees rolled, bonus Yahtzees included
func CountYahtzees(scores []*models.YahtzeeScore) int {
	count := 0
	for _, score := range scores {
		if score.Category != models.CategoryYahtzee || score.Score < YahtzeeScore {
			continue
		}
		count += 1 + (score.Score-YahtzeeScore)/YahtzeeBonus
	}
	return count
}

// CalculateGameTotals returns the player's final total for each game,
// upper bonus included. Games without scores total zero.
func CalculateGameTotals(games []*models.YahtzeeGame, scores []*models.YahtzeeScore, playerID string) map[string]int {
	playerScores := lo.Filter(scores, func(score *models.YahtzeeScore, _ int) bool {
		return score.PlayerID == playerID
	})
	byGame := lo.GroupBy(playerScores, func(score *models.YahtzeeScore) string {
		return score.GameID
	})

	totals := make(map[string]int, len(games))
	for _, game := range games {
		totals[game.ID] = cardTotal(byGame[game.ID])
	}
	return totals
}

// cardTotal sums one score card and applies the upper bonus
func cardTotal(scores []*models.YahtzeeScore) int {
	total := lo.SumBy(scores, scoreValue)
	if upperSubtotal(scores) >= UpperBonusThreshold {
		total += UpperBonus
	}
	return total
}

func upperSubtotal(scores []*models.YahtzeeScore) int {
	return lo.SumBy(lo.Filter(scores, isUpper), scoreValue)
}

// CalculateCategoryStats summarises every category of the score card.
//
// A zero score counts as a scratched box, so a genuine zero in chance is
// counted as zeroed too. The average includes zero entries.
func CalculateCategoryStats(scores []*models.YahtzeeScore, totalGames int) map[models.YahtzeeCategory]*models.CategoryStat {
	byCategory := lo.GroupBy(scores, func(score *models.YahtzeeScore) models.YahtzeeCategory {
		return score.Category
	})

	stats := make(map[models.YahtzeeCategory]*models.CategoryStat, len(models.YahtzeeCategories))
	for _, category := range models.YahtzeeCategories {
		entries := byCategory[category]

		timesScored := lo.CountBy(entries, func(score *models.YahtzeeScore) bool {
			return score.Score > 0
		})
		timesZeroed := max(totalGames-timesScored, 0)

		best := 0
		if len(entries) > 0 {
			best = lo.Max(lo.Map(entries, func(score *models.YahtzeeScore, _ int) int {
				return score.Score
			}))
		}

		zeroRate := 0.0
		if totalGames > 0 {
			zeroRate = float64(timesZeroed) / float64(totalGames) * 100
		}

		stats[category] = &models.CategoryStat{
			Average:     meanScore(entries),
			TimesScored: timesScored,
			TimesZeroed: timesZeroed,
			ZeroRate:    zeroRate,
			Best:        best,
		}
	}

	return stats
}

// CalculateUpperBonusRate returns the percentage of the player's finished
// games where the upper section earned the bonus
func CalculateUpperBonusRate(games []*models.YahtzeeGame, scores []*models.YahtzeeScore, playerID string) float64 {
	finished := lo.Filter(games, func(game *models.YahtzeeGame, _ int) bool {
		return game.IsFinished
	})
	if len(finished) == 0 {
		return 0
	}

	byGame := lo.GroupBy(lo.Filter(scores, func(score *models.YahtzeeScore, _ int) bool {
		return score.PlayerID == playerID
	}), func(score *models.YahtzeeScore) string {
		return score.GameID
	})

	withBonus := lo.CountBy(finished, func(game *models.YahtzeeGame) bool {
		return upperSubtotal(byGame[game.ID]) >= UpperBonusThreshold
	})

	return float64(withBonus) / float64(len(finished)) * 100
}

// CalculateUpperSectionAverage returns the mean score of the number categories
func CalculateUpperSectionAverage(scores []*models.YahtzeeScore) float64 {
	return meanScore(lo.Filter(scores, isUpper))
}

// CalculateLowerSectionAverage returns the mean score of the combination categories
func CalculateLowerSectionAverage(scores []*models.YahtzeeScore) float64 {
	return meanScore(lo.Filter(scores, isLower))
}

// CalculatePlayerStatistics summarises a player's games.
// Wins are matched on the winner's display name.
func CalculatePlayerStatistics(input *PlayerStatisticsInput) *models.PlayerStatistics {
	finished := lo.CountBy(input.Games, func(game *models.YahtzeeGame) bool {
		return game.IsFinished
	})
	wins := lo.CountBy(input.Games, func(game *models.YahtzeeGame) bool {
		return game.IsFinished && game.WinnerName == input.PlayerName
	})

	winRate := 0.0
	if finished > 0 {
		winRate = float64(wins) / float64(finished) * 100
	}

	totals := lo.Values(CalculateGameTotals(input.Games, input.PlayerScores, input.PlayerID))

	averageScore := 0.0
	highScore := 0
	if len(totals) > 0 {
		averageScore = stat.Mean(lo.Map(totals, func(total int, _ int) float64 {
			return float64(total)
		}), nil)
		highScore = lo.Max(totals)
	}

	return &models.PlayerStatistics{
		PlayerID:      input.PlayerID,
		PlayerName:    input.PlayerName,
		TotalGames:    len(input.Games),
		FinishedGames: finished,
		Wins:          wins,
		WinRate:       winRate,
		AverageScore:  averageScore,
		HighScore:     highScore,
	}
}

// DetermineWinner returns the display name of the player with the highest
// total in the game, along with every player's total. Ties go to the
// player seated first.
func DetermineWinner(game *models.YahtzeeGame, players []*models.Player, scores []*models.YahtzeeScore) (string, map[string]int) {
	totals := make(map[string]int, len(players))
	winner := ""
	best := 0
	for i, player := range players {
		total := CalculateGameTotals([]*models.YahtzeeGame{game}, scores, player.ID)[game.ID]
		totals[player.ID] = total
		if i == 0 || total > best {
			winner = player.Name
			best = total
		}
	}
	return winner, totals
}

func isUpper(score *models.YahtzeeScore, _ int) bool {
	return score.Category.IsUpper()
}

// isLower skips categories that are not on the score card
func isLower(score *models.YahtzeeScore, _ int) bool {
	return score.Category.IsValid() && !score.Category.IsUpper()
}

func scoreValue(score *models.YahtzeeScore) int {
	return score.Score
}

func meanScore(scores []*models.YahtzeeScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(lo.Map(scores, func(score *models.YahtzeeScore, _ int) float64 {
		return float64(score.Score)
	}), nil)
}
