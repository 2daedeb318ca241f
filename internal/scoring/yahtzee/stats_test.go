package yahtzee

import (
	"testing"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/stretchr/testify/suite"
)

type StatsTestSuite struct {
	suite.Suite
	games []*models.YahtzeeGame
}

func (s *StatsTestSuite) SetupTest() {
	s.games = []*models.YahtzeeGame{
		{ID: "g1", PlayerCount: 2, IsFinished: true, WinnerName: "Alice"},
		{ID: "g2", PlayerCount: 2, IsFinished: true, WinnerName: "Bob"},
		{ID: "g3", PlayerCount: 2, IsFinished: false},
	}
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func score(gameID, playerID string, category models.YahtzeeCategory, value int) *models.YahtzeeScore {
	return &models.YahtzeeScore{GameID: gameID, PlayerID: playerID, Category: category, Score: value}
}

// upperCard returns an upper section adding up to exactly 63
func upperCard(gameID, playerID string) []*models.YahtzeeScore {
	return []*models.YahtzeeScore{
		score(gameID, playerID, models.CategoryAces, 3),
		score(gameID, playerID, models.CategoryTwos, 6),
		score(gameID, playerID, models.CategoryThrees, 9),
		score(gameID, playerID, models.CategoryFours, 12),
		score(gameID, playerID, models.CategoryFives, 15),
		score(gameID, playerID, models.CategorySixes, 18),
	}
}

func (s *StatsTestSuite) TestCountYahtzees() {
	s.Equal(2, CountYahtzees([]*models.YahtzeeScore{score("g1", "p1", models.CategoryYahtzee, 150)}))
	s.Equal(3, CountYahtzees([]*models.YahtzeeScore{
		score("g1", "p1", models.CategoryYahtzee, 50),
		score("g2", "p1", models.CategoryYahtzee, 150),
	}))
	s.Equal(3, CountYahtzees([]*models.YahtzeeScore{score("g1", "p1", models.CategoryYahtzee, 250)}))
	s.Equal(0, CountYahtzees([]*models.YahtzeeScore{
		score("g1", "p1", models.CategoryYahtzee, 0),
		score("g1", "p1", models.CategoryChance, 50),
		score("g1", "p1", models.CategoryFullHouse, 25),
	}))
	s.Equal(0, CountYahtzees(nil))
}

func (s *StatsTestSuite) TestCalculateGameTotalsWithUpperBonus() {
	scores := upperCard("g1", "p1")

	totals := CalculateGameTotals(s.games[:1], scores, "p1")

	s.Equal(map[string]int{"g1": 98}, totals)
}

func (s *StatsTestSuite) TestCalculateGameTotalsWithoutUpperBonus() {
	scores := append(upperCard("g1", "p1")[1:],
		score("g1", "p1", models.CategoryChance, 22),
		score("g1", "p1", models.CategoryYahtzee, 50),
	)

	totals := CalculateGameTotals(s.games[:1], scores, "p1")

	s.Equal(map[string]int{"g1": 60 + 22 + 50}, totals)
}

func (s *StatsTestSuite) TestCalculateGameTotalsPerGameAndPlayer() {
	scores := append(upperCard("g1", "p1"),
		score("g1", "p1", models.CategoryLargeStraight, 40),
		score("g1", "p2", models.CategoryLargeStraight, 40),
		score("g2", "p1", models.CategoryFullHouse, 25),
		score("g2", "p2", models.CategorySixes, 30),
	)

	totals := CalculateGameTotals(s.games, scores, "p1")

	s.Equal(map[string]int{"g1": 63 + 35 + 40, "g2": 25, "g3": 0}, totals)
}

func (s *StatsTestSuite) TestCalculateCategoryStats() {
	scores := []*models.YahtzeeScore{
		score("g1", "p1", models.CategoryFullHouse, 25),
		score("g2", "p1", models.CategoryFullHouse, 0),
		score("g3", "p1", models.CategoryFullHouse, 25),
		score("g1", "p1", models.CategorySixes, 24),
		score("g2", "p1", models.CategorySixes, 12),
	}

	stats := CalculateCategoryStats(scores, 4)

	s.Len(stats, 13)

	fullHouse := stats[models.CategoryFullHouse]
	s.Equal(2, fullHouse.TimesScored)
	s.Equal(2, fullHouse.TimesZeroed)
	s.InDelta(50.0/3, fullHouse.Average, 1e-9, "zero entries count toward the average")
	s.Equal(25, fullHouse.Best)
	s.Equal(50.0, fullHouse.ZeroRate)

	sixes := stats[models.CategorySixes]
	s.Equal(18.0, sixes.Average)
	s.Equal(24, sixes.Best)
	s.Equal(2, sixes.TimesScored)

	chance := stats[models.CategoryChance]
	s.Equal(&models.CategoryStat{TimesZeroed: 4, ZeroRate: 100}, chance)
}

func (s *StatsTestSuite) TestCalculateCategoryStatsEmpty() {
	stats := CalculateCategoryStats(nil, 0)

	s.Len(stats, 13)
	for _, category := range models.YahtzeeCategories {
		s.Equal(&models.CategoryStat{}, stats[category])
	}
}

func (s *StatsTestSuite) TestCalculateCategoryStatsClampsZeroed() {
	scores := []*models.YahtzeeScore{
		score("g1", "p1", models.CategoryChance, 20),
		score("g2", "p1", models.CategoryChance, 21),
	}

	stats := CalculateCategoryStats(scores, 1)

	s.Equal(0, stats[models.CategoryChance].TimesZeroed)
	s.Equal(0.0, stats[models.CategoryChance].ZeroRate)
}

func (s *StatsTestSuite) TestCalculateUpperBonusRate() {
	scores := append(upperCard("g1", "p1"), upperCard("g3", "p1")...)
	scores = append(scores, score("g2", "p1", models.CategorySixes, 30))
	scores = append(scores, upperCard("g2", "p2")...)

	s.Equal(50.0, CalculateUpperBonusRate(s.games, scores, "p1"))
	s.Equal(50.0, CalculateUpperBonusRate(s.games, scores, "p2"))
	s.Equal(0.0, CalculateUpperBonusRate(s.games[2:], scores, "p1"))
	s.Equal(0.0, CalculateUpperBonusRate(nil, scores, "p1"))
}

func (s *StatsTestSuite) TestSectionAverages() {
	scores := []*models.YahtzeeScore{
		score("g1", "p1", models.CategoryAces, 2),
		score("g1", "p1", models.CategoryFives, 10),
		score("g1", "p1", models.CategoryChance, 23),
		score("g1", "p1", models.CategoryYahtzee, 50),
		score("g1", "p1", models.CategorySmallStraight, 0),
	}

	s.Equal(6.0, CalculateUpperSectionAverage(scores))
	s.Equal(73.0/3, CalculateLowerSectionAverage(scores))
	s.Equal(0.0, CalculateUpperSectionAverage(scores[2:]))
	s.Equal(0.0, CalculateLowerSectionAverage(nil))
}

func (s *StatsTestSuite) TestLowerSectionAverageIgnoresUnknownCategories() {
	scores := []*models.YahtzeeScore{
		score("g1", "p1", models.YahtzeeCategory("bogus"), 100),
		score("g1", "p1", models.CategoryChance, 20),
	}

	s.Equal(20.0, CalculateLowerSectionAverage(scores))
	s.Equal(0.0, CalculateUpperSectionAverage(scores))
}

func (s *StatsTestSuite) TestCalculatePlayerStatistics() {
	playerScores := append(upperCard("g1", "p1"),
		score("g1", "p1", models.CategoryChance, 22),
		score("g2", "p1", models.CategoryChance, 30),
	)

	stats := CalculatePlayerStatistics(&PlayerStatisticsInput{
		PlayerID:     "p1",
		PlayerName:   "Alice",
		Games:        s.games,
		PlayerScores: playerScores,
	})

	s.Equal(&models.PlayerStatistics{
		PlayerID:      "p1",
		PlayerName:    "Alice",
		TotalGames:    3,
		FinishedGames: 2,
		Wins:          1,
		WinRate:       50,
		AverageScore:  (120.0 + 30 + 0) / 3,
		HighScore:     120,
	}, stats)
}

func (s *StatsTestSuite) TestCalculatePlayerStatisticsWithoutGames() {
	stats := CalculatePlayerStatistics(&PlayerStatisticsInput{PlayerID: "p1", PlayerName: "Alice"})

	s.Equal(&models.PlayerStatistics{PlayerID: "p1", PlayerName: "Alice"}, stats)
}

func (s *StatsTestSuite) TestDetermineWinner() {
	players := []*models.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Chloé"},
	}
	scores := append(upperCard("g1", "p2"),
		score("g1", "p1", models.CategoryChance, 98),
		score("g1", "p3", models.CategoryChance, 12),
	)

	winner, totals := DetermineWinner(s.games[0], players, scores)

	s.Equal("Alice", winner, "a tie goes to the first seat")
	s.Equal(map[string]int{"p1": 98, "p2": 98, "p3": 12}, totals)
}
