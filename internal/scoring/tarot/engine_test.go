package tarot

import (
	"testing"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	players []*models.Player
}

func (s *EngineTestSuite) SetupTest() {
	s.players = []*models.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Chloé"},
		{ID: "p4", Name: "David"},
		{ID: "p5", Name: "Emma"},
	}
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func level(l models.PoigneeLevel) *models.PoigneeLevel {
	return &l
}

func called(index string) *string {
	return &index
}

func (s *EngineTestSuite) TestCalculateScore() {
	testCases := []struct {
		name     string
		input    *ScoreInput
		expected *RoundResult
	}{
		{
			name:  "prise made exactly",
			input: &ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 51, Chelem: models.ChelemNone},
			expected: &RoundResult{
				PointsScored: 51, PointsNeeded: 51, BaseScore: 25, Bonus: 0, TotalScore: 25, IsWon: true,
			},
		},
		{
			name:  "prise lost without bouts",
			input: &ScoreInput{Bid: models.BidPrise, Bouts: 0, PointsScored: 40, Chelem: models.ChelemNone},
			expected: &RoundResult{
				PointsScored: 40, PointsNeeded: 56, BaseScore: -41, Bonus: 0, TotalScore: -41, IsWon: false,
			},
		},
		{
			name:  "garde with petit au bout",
			input: &ScoreInput{Bid: models.BidGarde, Bouts: 2, PointsScored: 51, HasPetitAuBout: true},
			expected: &RoundResult{
				PointsScored: 51, PointsNeeded: 41, BaseScore: 70, Bonus: 20, TotalScore: 90, IsWon: true,
			},
		},
		{
			name:  "lost garde sans loses petit au bout too",
			input: &ScoreInput{Bid: models.BidGardeSans, Bouts: 3, PointsScored: 30, HasPetitAuBout: true},
			expected: &RoundResult{
				PointsScored: 30, PointsNeeded: 36, BaseScore: -124, Bonus: -40, TotalScore: -164, IsWon: false,
			},
		},
		{
			name: "poignee stays positive on a lost contract",
			input: &ScoreInput{
				Bid: models.BidGarde, Bouts: 1, PointsScored: 41,
				HasPoignee: true, PoigneeLevel: level(models.PoigneeDouble),
			},
			expected: &RoundResult{
				PointsScored: 41, PointsNeeded: 51, BaseScore: -70, Bonus: 30, TotalScore: -40, IsWon: false,
			},
		},
		{
			name: "poignee is not multiplied",
			input: &ScoreInput{
				Bid: models.BidGardeContre, Bouts: 3, PointsScored: 36,
				HasPoignee: true, PoigneeLevel: level(models.PoigneeTriple),
			},
			expected: &RoundResult{
				PointsScored: 36, PointsNeeded: 36, BaseScore: 150, Bonus: 40, TotalScore: 190, IsWon: true,
			},
		},
		{
			name:  "poignee level ignored without poignee",
			input: &ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 51, PoigneeLevel: level(models.PoigneeSimple)},
			expected: &RoundResult{
				PointsScored: 51, PointsNeeded: 51, BaseScore: 25, Bonus: 0, TotalScore: 25, IsWon: true,
			},
		},
		{
			name:  "announced chelem made",
			input: &ScoreInput{Bid: models.BidGardeSans, Bouts: 3, PointsScored: 91, Chelem: models.ChelemAnnouncedSuccess},
			expected: &RoundResult{
				PointsScored: 91, PointsNeeded: 36, BaseScore: 320, Bonus: 400, TotalScore: 720, IsWon: true,
			},
		},
		{
			name:  "announced chelem failed on a won contract",
			input: &ScoreInput{Bid: models.BidPrise, Bouts: 2, PointsScored: 61, Chelem: models.ChelemAnnouncedFail},
			expected: &RoundResult{
				PointsScored: 61, PointsNeeded: 41, BaseScore: 45, Bonus: -200, TotalScore: -155, IsWon: true,
			},
		},
		{
			name:  "unannounced chelem",
			input: &ScoreInput{Bid: models.BidPrise, Bouts: 3, PointsScored: 91, Chelem: models.ChelemNonAnnouncedSuccess},
			expected: &RoundResult{
				PointsScored: 91, PointsNeeded: 36, BaseScore: 80, Bonus: 200, TotalScore: 280, IsWon: true,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, CalculateScore(tc.input))
		})
	}
}

func (s *EngineTestSuite) TestCalculateScoreIsDeterministic() {
	input := &ScoreInput{
		Bid: models.BidGarde, Bouts: 2, PointsScored: 47,
		HasPetitAuBout: true, HasPoignee: true, PoigneeLevel: level(models.PoigneeSimple),
		Chelem: models.ChelemNone,
	}

	s.Equal(CalculateScore(input), CalculateScore(input))
}

func (s *EngineTestSuite) TestPointsNeeded() {
	s.Equal(56, PointsNeeded(0))
	s.Equal(51, PointsNeeded(1))
	s.Equal(41, PointsNeeded(2))
	s.Equal(36, PointsNeeded(3))
}

func (s *EngineTestSuite) TestValidateScoreInput() {
	s.NoError(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 51}))
	s.Error(ValidateScoreInput(nil))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: "petite", Bouts: 1, PointsScored: 51}))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 4, PointsScored: 51}))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 92}))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: -1}))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 51, HasPoignee: true}))
	s.Error(ValidateScoreInput(&ScoreInput{Bid: models.BidPrise, Bouts: 1, PointsScored: 51, Chelem: "maybe"}))
}

func (s *EngineTestSuite) TestPlayerAt() {
	player, ok := models.PlayerAt(s.players, "2")
	s.Require().True(ok)
	s.Equal("p3", player.ID)

	for _, index := range []string{"", "abc", "-1", "5", "1.0"} {
		_, ok := models.PlayerAt(s.players, index)
		s.False(ok, "index %q should not resolve", index)
	}
}

func (s *EngineTestSuite) TestCalculateTotalScoresThreePlayers() {
	rounds := []*models.TarotRound{
		{RoundNumber: 1, TakerPlayerID: "0", Score: 50},
	}

	totals := CalculateTotalScores(s.players[:3], rounds, 3)

	s.Equal(map[string]int{"p1": 100, "p2": -50, "p3": -50}, totals)
}

func (s *EngineTestSuite) TestCalculateTotalScoresFourPlayers() {
	rounds := []*models.TarotRound{
		{RoundNumber: 1, TakerPlayerID: "1", Score: -30},
		{RoundNumber: 2, TakerPlayerID: "3", Score: 41},
	}

	totals := CalculateTotalScores(s.players[:4], rounds, 4)

	s.Equal(map[string]int{"p1": 30 - 41, "p2": -90 - 41, "p3": 30 - 41, "p4": 30 + 123}, totals)
}

func (s *EngineTestSuite) TestCalculateTotalScoresFivePlayersWithPartner() {
	rounds := []*models.TarotRound{
		{RoundNumber: 1, TakerPlayerID: "0", CalledPlayerID: called("2"), Score: 60},
	}

	totals := CalculateTotalScores(s.players, rounds, 5)

	s.Equal(map[string]int{"p1": 120, "p2": -60, "p3": 60, "p4": -60, "p5": -60}, totals)
}

func (s *EngineTestSuite) TestCalculateTotalScoresFivePlayersSolo() {
	rounds := []*models.TarotRound{
		{RoundNumber: 1, TakerPlayerID: "4", Score: 35},
		{RoundNumber: 2, TakerPlayerID: "1", CalledPlayerID: called("1"), Score: -25},
		{RoundNumber: 3, TakerPlayerID: "2", CalledPlayerID: called("9"), Score: 10},
	}

	totals := CalculateTotalScores(s.players, rounds, 5)

	s.Equal(map[string]int{
		"p1": -35 + 25 - 10,
		"p2": -35 - 100 - 10,
		"p3": -35 + 25 + 40,
		"p4": -35 + 25 - 10,
		"p5": 140 + 25 - 10,
	}, totals)
}

func (s *EngineTestSuite) TestCalculateTotalScoresSkipsUnresolvableTaker() {
	rounds := []*models.TarotRound{
		{RoundNumber: 1, TakerPlayerID: "abc", Score: 50},
		{RoundNumber: 2, TakerPlayerID: "7", Score: 50},
	}

	totals := CalculateTotalScores(s.players[:4], rounds, 4)

	s.Equal(map[string]int{"p1": 0, "p2": 0, "p3": 0, "p4": 0}, totals)
}

func (s *EngineTestSuite) TestCalculateTotalScoresEmpty() {
	s.Equal(map[string]int{"p1": 0, "p2": 0, "p3": 0}, CalculateTotalScores(s.players[:3], nil, 3))
}

func TestCalculateTotalScoresIsZeroSum(t *testing.T) {
	players := []*models.Player{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}
	bids := models.Bids

	for playerCount := 3; playerCount <= 5; playerCount++ {
		var rounds []*models.TarotRound
		for i := 0; i < 40; i++ {
			input := &ScoreInput{
				Bid:            bids[i%len(bids)],
				Bouts:          i % 4,
				PointsScored:   (i * 7) % 92,
				HasPetitAuBout: i%5 == 0,
			}
			round := &models.TarotRound{
				RoundNumber:   i + 1,
				TakerPlayerID: string(rune('0' + i%playerCount)),
				Score:         CalculateScore(input).TotalScore,
			}
			if playerCount == 5 && i%3 != 0 {
				round.CalledPlayerID = called(string(rune('0' + (i+i/5)%playerCount)))
			}
			rounds = append(rounds, round)

			deltas := CalculateRoundDeltas(players[:playerCount], round, playerCount)
			sum := 0
			for _, delta := range deltas {
				sum += delta
			}
			assert.Zero(t, sum, "round %d with %d players", i+1, playerCount)
		}

		totals := CalculateTotalScores(players[:playerCount], rounds, playerCount)
		require.Len(t, totals, playerCount)
		sum := 0
		for _, total := range totals {
			sum += total
		}
		assert.Zero(t, sum, "%d players", playerCount)
	}
}
