// Package tarot scores French Tarot rounds and spreads them across the table.
package tarot

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/scorepad/internal/models"
)

const (
	// MaxPoints is the total card points in a Tarot deck
	MaxPoints = 91

	// MaxBouts is the number of oudlers in the deck
	MaxBouts = 3

	contractBase   = 25
	petitAuBoutPts = 10
)

// pointsNeededByBouts maps the number of oudlers held to the contract threshold
var pointsNeededByBouts = [MaxBouts + 1]int{56, 51, 41, 36}

// PointsNeeded returns the card points the taker needs for the given number of bouts
func PointsNeeded(bouts int) int {
	if bouts < 0 {
		bouts = 0
	}
	if bouts > MaxBouts {
		bouts = MaxBouts
	}
	return pointsNeededByBouts[bouts]
}

// ValidateScoreInput reports announcements that cannot come from a real round
func ValidateScoreInput(input *ScoreInput) error {
	if input == nil {
		return errors.New("score input cannot be nil")
	}
	if !input.Bid.IsValid() {
		return fmt.Errorf("unknown bid %q", input.Bid)
	}
	if input.Bouts < 0 || input.Bouts > MaxBouts {
		return fmt.Errorf("bouts must be between 0 and %d, got %d", MaxBouts, input.Bouts)
	}
	if input.PointsScored < 0 || input.PointsScored > MaxPoints {
		return fmt.Errorf("points scored must be between 0 and %d, got %d", MaxPoints, input.PointsScored)
	}
	if input.HasPoignee && (input.PoigneeLevel == nil || !input.PoigneeLevel.IsValid()) {
		return errors.New("a poignée needs a level")
	}
	if !input.Chelem.IsValid() {
		return fmt.Errorf("unknown chelem %q", input.Chelem)
	}
	return nil
}

// CalculateScore computes the taker-relative score of a round.
//
// Only the contract and petit au bout follow the outcome of the round and
// the bid multiplier. Poignée is always added as a positive flat bonus and
// chelem is added as-is.
func CalculateScore(input *ScoreInput) *RoundResult {
	multiplier := input.Bid.Multiplier()
	pointsNeeded := PointsNeeded(input.Bouts)
	isWon := input.PointsScored >= pointsNeeded

	difference := input.PointsScored - pointsNeeded
	if difference < 0 {
		difference = -difference
	}

	sign := 1
	if !isWon {
		sign = -1
	}

	baseScore := sign * (contractBase + difference) * multiplier

	bonus := 0
	if input.HasPetitAuBout {
		bonus += sign * petitAuBoutPts * multiplier
	}
	if input.HasPoignee && input.PoigneeLevel != nil {
		bonus += input.PoigneeLevel.Bonus()
	}
	bonus += input.Chelem.Bonus()

	return &RoundResult{
		PointsScored: input.PointsScored,
		PointsNeeded: pointsNeeded,
		BaseScore:    baseScore,
		Bonus:        bonus,
		TotalScore:   baseScore + bonus,
		IsWon:        isWon,
	}
}

// CalculateRoundDeltas spreads one round's score across the table.
// The deltas always sum to zero. Nil is returned when the taker cannot
// be resolved.
func CalculateRoundDeltas(players []*models.Player, round *models.TarotRound, playerCount int) map[string]int {
	taker, ok := models.PlayerAt(players, round.TakerPlayerID)
	if !ok {
		return nil
	}

	var partner *models.Player
	if playerCount == 5 && round.CalledPlayerID != nil {
		if called, ok := models.PlayerAt(players, *round.CalledPlayerID); ok && called.ID != taker.ID {
			partner = called
		}
	}

	score := round.Score
	deltas := make(map[string]int, len(players))
	for _, p := range players {
		if p == nil {
			continue
		}
		switch {
		case p.ID == taker.ID:
			deltas[p.ID] += score * takerMultiplier(playerCount, partner != nil)
		case partner != nil && p.ID == partner.ID:
			deltas[p.ID] += score
		default:
			deltas[p.ID] -= score
		}
	}

	return deltas
}

// takerMultiplier is the number of opponents the taker collects from,
// net of what a called partner shares
func takerMultiplier(playerCount int, hasPartner bool) int {
	switch playerCount {
	case 3:
		return 2
	case 4:
		return 3
	case 5:
		if hasPartner {
			return 2
		}
		return 4
	default:
		// Keep the round zero-sum for unusual table sizes
		return playerCount - 1
	}
}

// CalculateTotalScores accumulates the distributed score of every round.
// Every player starts at zero so players who never appear still get an entry.
func CalculateTotalScores(players []*models.Player, rounds []*models.TarotRound, playerCount int) map[string]int {
	totals := make(map[string]int, len(players))
	for _, p := range players {
		if p != nil {
			totals[p.ID] = 0
		}
	}

	for _, round := range rounds {
		for playerID, delta := range CalculateRoundDeltas(players, round, playerCount) {
			totals[playerID] += delta
		}
	}

	return totals
}
