// Package progression aggregates the rounds of a Tarot game into per-taker statistics.
package progression

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// MinRoundsForStats is the number of rounds a game needs before taker
// statistics are reported
const MinRoundsForStats = 3

// CalculateTakerPerformance summarises every player's rounds as taker.
//
// Players who never took are left out. A round counts as won when its
// stored score is strictly positive. Partner statistics are only kept for
// 5-player games.
func CalculateTakerPerformance(players []*models.Player, rounds []*models.TarotRound, playerCount int) map[string]*models.TakerPerformance {
	performance := make(map[string]*models.TakerPerformance)
	if len(rounds) < MinRoundsForStats {
		return performance
	}

	for _, player := range players {
		if player == nil {
			continue
		}

		takerRounds := lo.Filter(rounds, func(round *models.TarotRound, _ int) bool {
			taker, ok := models.PlayerAt(players, round.TakerPlayerID)
			return ok && taker.ID == player.ID
		})
		if len(takerRounds) == 0 {
			continue
		}

		perf := summarise(takerRounds)
		if playerCount == 5 {
			perf.PartnerStats = partnerStats(players, player.ID, takerRounds)
		}
		performance[player.ID] = perf
	}

	return performance
}

func summarise(rounds []*models.TarotRound) *models.TakerPerformance {
	wins := lo.Filter(rounds, isWin)
	losses := lo.Reject(rounds, isWin)

	distribution, order := bidDistribution(rounds)

	return &models.TakerPerformance{
		TakerRounds:       len(rounds),
		Wins:              len(wins),
		Losses:            len(losses),
		WinRate:           percentage(len(wins), len(rounds)),
		AvgWinPoints:      meanScore(wins),
		AvgLossPoints:     meanScore(losses),
		TotalPointsGained: lo.SumBy(wins, roundScore),
		TotalPointsLost:   lo.SumBy(losses, roundScore),
		PreferredBid:      preferredBid(distribution, order),
		BidDistribution:   distribution,
		BidOrder:          order,
	}
}

// bidDistribution counts bids and remembers the order they were first seen in
func bidDistribution(rounds []*models.TarotRound) (map[models.Bid]int, []models.Bid) {
	distribution := make(map[models.Bid]int)
	var order []models.Bid
	for _, round := range rounds {
		if _, seen := distribution[round.Bid]; !seen {
			order = append(order, round.Bid)
		}
		distribution[round.Bid]++
	}
	return distribution, order
}

// preferredBid returns the first bid in order with the highest count
func preferredBid(distribution map[models.Bid]int, order []models.Bid) models.Bid {
	var best models.Bid
	bestCount := 0
	for _, bid := range order {
		if distribution[bid] > bestCount {
			best = bid
			bestCount = distribution[bid]
		}
	}
	return best
}

// partnerStats groups the rounds where the taker called someone else.
// Nil is returned when there are none.
func partnerStats(players []*models.Player, takerID string, rounds []*models.TarotRound) map[string]*models.PartnerStats {
	var stats map[string]*models.PartnerStats

	for _, round := range rounds {
		if round.CalledPlayerID == nil {
			continue
		}
		partner, ok := models.PlayerAt(players, *round.CalledPlayerID)
		if !ok || partner.ID == takerID {
			continue
		}

		if stats == nil {
			stats = make(map[string]*models.PartnerStats)
		}
		entry, ok := stats[partner.ID]
		if !ok {
			entry = &models.PartnerStats{}
			stats[partner.ID] = entry
		}

		entry.GamesPlayed++
		if isWin(round, 0) {
			entry.Wins++
		} else {
			entry.Losses++
		}
	}

	for _, entry := range stats {
		entry.WinRate = percentage(entry.Wins, entry.GamesPlayed)
	}

	return stats
}

func isWin(round *models.TarotRound, _ int) bool {
	return round.Score > 0
}

func roundScore(round *models.TarotRound) int {
	return round.Score
}

func meanScore(rounds []*models.TarotRound) float64 {
	if len(rounds) == 0 {
		return 0
	}
	return stat.Mean(lo.Map(rounds, func(round *models.TarotRound, _ int) float64 {
		return float64(round.Score)
	}), nil)
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
