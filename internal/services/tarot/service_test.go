package tarot

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/scorepad/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/scorepad/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scorepad/internal/models"
	playerRepo "github.com/KirkDiggler/scorepad/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/scorepad/internal/repositories/player/mocks"
	tarotRepo "github.com/KirkDiggler/scorepad/internal/repositories/tarot"
	tarotMocks "github.com/KirkDiggler/scorepad/internal/repositories/tarot/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TarotServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockTarotRepo  *tarotMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	tarotService   Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testGameID    string
	testChannelID string

	// Reusable test fixtures
	players       []*models.Player
	fourPlayers   *models.TarotGame
	fivePlayers   *models.TarotGame
	existingPrise *models.TarotRound
}

func (s *TarotServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTarotRepo = tarotMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testChannelID = "test-channel-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.players = []*models.Player{
		{ID: "p1", Name: "Alice", AvatarColor: models.AvatarColorForSeat(0), Active: true},
		{ID: "p2", Name: "Bob", AvatarColor: models.AvatarColorForSeat(1), Active: true},
		{ID: "p3", Name: "Chloé", AvatarColor: models.AvatarColorForSeat(2), Active: true},
		{ID: "p4", Name: "David", AvatarColor: models.AvatarColorForSeat(3), Active: true},
		{ID: "p5", Name: "Emma", AvatarColor: models.AvatarColorForSeat(4), Active: true},
	}

	s.fourPlayers = &models.TarotGame{
		ID:          s.testGameID,
		ChannelID:   s.testChannelID,
		PlayerCount: 4,
		PlayerIDs:   []string{"p1", "p2", "p3", "p4"},
		Status:      models.GameStatusActive,
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}

	s.fivePlayers = &models.TarotGame{
		ID:          s.testGameID,
		ChannelID:   s.testChannelID,
		PlayerCount: 5,
		PlayerIDs:   []string{"p1", "p2", "p3", "p4", "p5"},
		Status:      models.GameStatusActive,
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}

	s.existingPrise = &models.TarotRound{
		ID:            "round-1",
		GameID:        s.testGameID,
		RoundNumber:   1,
		TakerPlayerID: "1",
		Bid:           models.BidPrise,
		Bouts:         1,
		PointsScored:  51,
		Chelem:        models.ChelemNone,
		Score:         25,
		CreatedAt:     s.testTime,
	}

	svc, err := New(&Config{
		TarotRepo:     s.mockTarotRepo,
		PlayerRepo:    s.mockPlayerRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.tarotService = svc
}

func (s *TarotServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTarotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TarotServiceTestSuite))
}

// expectGame sets up loading a game and its players
func (s *TarotServiceTestSuite) expectGame(game *models.TarotGame) {
	s.mockTarotRepo.EXPECT().
		GetGame(gomock.Any(), &tarotRepo.GetGameInput{GameID: game.ID}).
		Return(game, nil)

	s.mockPlayerRepo.EXPECT().
		GetPlayers(gomock.Any(), &playerRepo.GetPlayersInput{PlayerIDs: game.PlayerIDs}).
		Return(&playerRepo.GetPlayersOutput{Players: s.players[:game.PlayerCount]}, nil)
}

func (s *TarotServiceTestSuite) expectRounds(rounds ...*models.TarotRound) {
	s.mockTarotRepo.EXPECT().
		GetRounds(gomock.Any(), &tarotRepo.GetRoundsInput{GameID: s.testGameID}).
		Return(&tarotRepo.GetRoundsOutput{Rounds: rounds}, nil)
}

func (s *TarotServiceTestSuite) expectNextRoundNumber(number int) {
	s.mockTarotRepo.EXPECT().
		NextRoundNumber(gomock.Any(), &tarotRepo.NextRoundNumberInput{GameID: s.testGameID}).
		Return(number, nil)
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func (s *TarotServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilTarotRepo, err)

	_, err = New(&Config{TarotRepo: s.mockTarotRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilPlayerRepo, err)

	_, err = New(&Config{TarotRepo: s.mockTarotRepo, PlayerRepo: s.mockPlayerRepo, UUIDGenerator: s.mockUUID})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{TarotRepo: s.mockTarotRepo, PlayerRepo: s.mockPlayerRepo, Clock: s.mockClock})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *TarotServiceTestSuite) TestCreateGame_HappyPath() {
	s.mockTarotRepo.EXPECT().
		GetGameByChannel(gomock.Any(), &tarotRepo.GetGameByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, tarotRepo.ErrGameNotFound)

	s.mockUUID.EXPECT().NewUUID().Return("p1")
	s.mockUUID.EXPECT().NewUUID().Return("p2")
	s.mockUUID.EXPECT().NewUUID().Return("p3")
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	for _, player := range s.players[:3] {
		s.mockPlayerRepo.EXPECT().
			SavePlayer(gomock.Any(), &playerRepo.SavePlayerInput{Player: player}).
			Return(nil)
	}

	expectedGame := &models.TarotGame{
		ID:          s.testGameID,
		ChannelID:   s.testChannelID,
		PlayerCount: 3,
		PlayerIDs:   []string{"p1", "p2", "p3"},
		Status:      models.GameStatusActive,
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}
	s.mockTarotRepo.EXPECT().
		SaveGame(gomock.Any(), &tarotRepo.SaveGameInput{Game: expectedGame}).
		Return(nil)

	output, err := s.tarotService.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Alice", " Bob ", "Chloé"},
	})

	s.Require().NoError(err)
	s.Equal(expectedGame, output.Game)
	s.Equal(s.players[:3], output.Players)
}

func (s *TarotServiceTestSuite) TestCreateGame_InvalidPlayerCount() {
	for _, names := range [][]string{
		{"Alice", "Bob"},
		{"A", "B", "C", "D", "E", "F"},
	} {
		_, err := s.tarotService.CreateGame(s.ctx, &CreateGameInput{
			ChannelID:   s.testChannelID,
			PlayerNames: names,
		})
		s.Equal(ErrInvalidPlayerCount, err)
	}
}

func (s *TarotServiceTestSuite) TestCreateGame_EmptyName() {
	_, err := s.tarotService.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Alice", "  ", "Chloé"},
	})
	s.Equal(ErrInvalidPlayerName, err)
}

func (s *TarotServiceTestSuite) TestCreateGame_AlreadyRunning() {
	s.mockTarotRepo.EXPECT().
		GetGameByChannel(gomock.Any(), &tarotRepo.GetGameByChannelInput{ChannelID: s.testChannelID}).
		Return(s.fourPlayers, nil)

	_, err := s.tarotService.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Alice", "Bob", "Chloé"},
	})
	s.Equal(ErrGameAlreadyExists, err)
}

func (s *TarotServiceTestSuite) TestCreateGame_LookupError() {
	expectedError := errors.New("redis is down")
	s.mockTarotRepo.EXPECT().
		GetGameByChannel(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	_, err := s.tarotService.CreateGame(s.ctx, &CreateGameInput{
		ChannelID:   s.testChannelID,
		PlayerNames: []string{"Alice", "Bob", "Chloé"},
	})
	s.Equal(expectedError, err)
}

func (s *TarotServiceTestSuite) TestGetGameByChannel_NotFound() {
	s.mockTarotRepo.EXPECT().
		GetGameByChannel(gomock.Any(), &tarotRepo.GetGameByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, tarotRepo.ErrGameNotFound)

	_, err := s.tarotService.GetGameByChannel(s.ctx, &GetGameByChannelInput{ChannelID: s.testChannelID})
	s.Equal(ErrGameNotFound, err)
}

func (s *TarotServiceTestSuite) TestAddRound_FivePlayersWithPartner() {
	s.expectGame(s.fivePlayers)
	s.expectNextRoundNumber(2)
	s.mockUUID.EXPECT().NewUUID().Return("round-2")

	expectedRound := &models.TarotRound{
		ID:             "round-2",
		GameID:         s.testGameID,
		RoundNumber:    2,
		TakerPlayerID:  "0",
		CalledPlayerID: strPtr("2"),
		Bid:            models.BidGarde,
		Bouts:          2,
		PointsScored:   51,
		HasPetitAuBout: true,
		Chelem:         models.ChelemNone,
		Score:          90,
		CreatedAt:      s.testTime,
	}
	s.mockTarotRepo.EXPECT().
		SaveRound(gomock.Any(), &tarotRepo.SaveRoundInput{Round: expectedRound}).
		Return(nil)
	s.mockTarotRepo.EXPECT().
		SaveGame(gomock.Any(), &tarotRepo.SaveGameInput{Game: s.fivePlayers}).
		Return(nil)

	output, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round: RoundDetails{
			TakerIndex:     0,
			CalledIndex:    intPtr(2),
			Bid:            models.BidGarde,
			Bouts:          2,
			PointsScored:   51,
			HasPetitAuBout: true,
		},
	})

	s.Require().NoError(err)
	s.Equal(expectedRound, output.Round)
	s.Equal(41, output.Result.PointsNeeded)
	s.Equal(90, output.Result.TotalScore)
	s.True(output.Result.IsWon)
	s.Equal(map[string]int{"p1": 180, "p2": -90, "p3": 90, "p4": -90, "p5": -90}, output.Deltas)
}

func (s *TarotServiceTestSuite) TestAddRound_PoigneeLevelStoredOnlyWithPoignee() {
	s.expectGame(s.fourPlayers)
	s.expectNextRoundNumber(1)
	s.mockUUID.EXPECT().NewUUID().Return("round-1")

	double := models.PoigneeDouble
	var saved *models.TarotRound
	s.mockTarotRepo.EXPECT().
		SaveRound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tarotRepo.SaveRoundInput) error {
			saved = input.Round
			return nil
		})
	s.mockTarotRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round: RoundDetails{
			TakerIndex:   3,
			Bid:          models.BidPrise,
			Bouts:        0,
			PointsScored: 40,
			PoigneeLevel: &double,
		},
	})

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Nil(saved.PoigneeLevel)
	s.Equal(1, saved.RoundNumber)
	s.Equal("3", saved.TakerPlayerID)
	s.Equal(-41, output.Round.Score)
	s.Equal(map[string]int{"p1": 41, "p2": 41, "p3": 41, "p4": -123}, output.Deltas)
}

func (s *TarotServiceTestSuite) TestAddRound_NumberingError() {
	s.expectGame(s.fourPlayers)
	s.mockTarotRepo.EXPECT().
		NextRoundNumber(gomock.Any(), gomock.Any()).
		Return(0, errors.New("redis down"))

	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round:  RoundDetails{TakerIndex: 0, Bid: models.BidGarde, Bouts: 1, PointsScored: 60},
	})
	s.Require().Error(err)
}

func (s *TarotServiceTestSuite) TestAddRound_CallNotAllowedWithFourPlayers() {
	s.expectGame(s.fourPlayers)

	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round: RoundDetails{
			TakerIndex:   0,
			CalledIndex:  intPtr(1),
			Bid:          models.BidGarde,
			Bouts:        1,
			PointsScored: 60,
		},
	})
	s.Equal(ErrCallNotAllowed, err)
}

func (s *TarotServiceTestSuite) TestAddRound_InvalidSeats() {
	s.expectGame(s.fivePlayers)
	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round:  RoundDetails{TakerIndex: 5, Bid: models.BidGarde, Bouts: 1, PointsScored: 60},
	})
	s.Equal(ErrInvalidTaker, err)

	s.expectGame(s.fivePlayers)
	_, err = s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round:  RoundDetails{TakerIndex: 0, CalledIndex: intPtr(-1), Bid: models.BidGarde, Bouts: 1, PointsScored: 60},
	})
	s.Equal(ErrInvalidCalledPlayer, err)
}

func (s *TarotServiceTestSuite) TestAddRound_InvalidAnnouncements() {
	s.expectGame(s.fourPlayers)

	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round:  RoundDetails{TakerIndex: 0, Bid: models.BidGarde, Bouts: 1, PointsScored: 95},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidRound)
}

func (s *TarotServiceTestSuite) TestAddRound_GameNotActive() {
	completed := *s.fourPlayers
	completed.Status = models.GameStatusCompleted
	s.mockTarotRepo.EXPECT().
		GetGame(gomock.Any(), &tarotRepo.GetGameInput{GameID: s.testGameID}).
		Return(&completed, nil)

	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{
		GameID: s.testGameID,
		Round:  RoundDetails{TakerIndex: 0, Bid: models.BidGarde, Bouts: 1, PointsScored: 60},
	})
	s.Equal(ErrGameNotActive, err)
}

func (s *TarotServiceTestSuite) TestAddRound_GameNotFound() {
	s.mockTarotRepo.EXPECT().
		GetGame(gomock.Any(), &tarotRepo.GetGameInput{GameID: "missing"}).
		Return(nil, tarotRepo.ErrGameNotFound)

	_, err := s.tarotService.AddRound(s.ctx, &AddRoundInput{GameID: "missing"})
	s.Equal(ErrGameNotFound, err)
}

func (s *TarotServiceTestSuite) TestUpdateRound_KeepsIdentity() {
	s.expectGame(s.fourPlayers)
	s.mockTarotRepo.EXPECT().
		GetRound(gomock.Any(), &tarotRepo.GetRoundInput{GameID: s.testGameID, RoundID: "round-1"}).
		Return(s.existingPrise, nil)

	expectedRound := &models.TarotRound{
		ID:            "round-1",
		GameID:        s.testGameID,
		RoundNumber:   1,
		TakerPlayerID: "1",
		Bid:           models.BidGardeSans,
		Bouts:         1,
		PointsScored:  46,
		Chelem:        models.ChelemNone,
		Score:         -120,
		CreatedAt:     s.testTime,
	}
	s.mockTarotRepo.EXPECT().
		SaveRound(gomock.Any(), &tarotRepo.SaveRoundInput{Round: expectedRound}).
		Return(nil)
	s.mockTarotRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.tarotService.UpdateRound(s.ctx, &UpdateRoundInput{
		GameID:  s.testGameID,
		RoundID: "round-1",
		Round:   RoundDetails{TakerIndex: 1, Bid: models.BidGardeSans, Bouts: 1, PointsScored: 46},
	})

	s.Require().NoError(err)
	s.Equal(expectedRound, output.Round)
	s.False(output.Result.IsWon)
}

func (s *TarotServiceTestSuite) TestUpdateRound_NotFound() {
	s.expectGame(s.fourPlayers)
	s.mockTarotRepo.EXPECT().
		GetRound(gomock.Any(), gomock.Any()).
		Return(nil, tarotRepo.ErrRoundNotFound)

	_, err := s.tarotService.UpdateRound(s.ctx, &UpdateRoundInput{
		GameID:  s.testGameID,
		RoundID: "nope",
		Round:   RoundDetails{TakerIndex: 1, Bid: models.BidGarde, Bouts: 1, PointsScored: 46},
	})
	s.Equal(ErrRoundNotFound, err)
}

func (s *TarotServiceTestSuite) TestDeleteRound_RenumbersLaterRounds() {
	s.expectGame(s.fourPlayers)
	s.mockTarotRepo.EXPECT().
		DeleteRound(gomock.Any(), &tarotRepo.DeleteRoundInput{GameID: s.testGameID, RoundID: "round-2"}).
		Return(nil)

	round3 := &models.TarotRound{ID: "round-3", GameID: s.testGameID, RoundNumber: 3, TakerPlayerID: "2", Score: 10}
	round4 := &models.TarotRound{ID: "round-4", GameID: s.testGameID, RoundNumber: 4, TakerPlayerID: "3", Score: 20}
	s.expectRounds(s.existingPrise, round3, round4)

	s.mockTarotRepo.EXPECT().
		SaveRound(gomock.Any(), &tarotRepo.SaveRoundInput{Round: &models.TarotRound{
			ID: "round-3", GameID: s.testGameID, RoundNumber: 2, TakerPlayerID: "2", Score: 10,
		}}).
		Return(nil)
	s.mockTarotRepo.EXPECT().
		SaveRound(gomock.Any(), &tarotRepo.SaveRoundInput{Round: &models.TarotRound{
			ID: "round-4", GameID: s.testGameID, RoundNumber: 3, TakerPlayerID: "3", Score: 20,
		}}).
		Return(nil)

	output, err := s.tarotService.DeleteRound(s.ctx, &DeleteRoundInput{
		GameID:  s.testGameID,
		RoundID: "round-2",
	})

	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal(2, output.Renumbered)
}

func (s *TarotServiceTestSuite) TestDeleteRound_NotFound() {
	s.expectGame(s.fourPlayers)
	s.mockTarotRepo.EXPECT().
		DeleteRound(gomock.Any(), gomock.Any()).
		Return(tarotRepo.ErrRoundNotFound)

	_, err := s.tarotService.DeleteRound(s.ctx, &DeleteRoundInput{GameID: s.testGameID, RoundID: "nope"})
	s.Equal(ErrRoundNotFound, err)
}

func (s *TarotServiceTestSuite) TestGetScoreboard() {
	s.expectGame(s.fourPlayers)
	s.expectRounds(
		s.existingPrise,
		&models.TarotRound{ID: "round-2", RoundNumber: 2, TakerPlayerID: "3", Score: -30},
		&models.TarotRound{ID: "round-3", RoundNumber: 3, TakerPlayerID: "oops", Score: 500},
	)

	output, err := s.tarotService.GetScoreboard(s.ctx, &GetScoreboardInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Require().Len(output.Entries, 4)
	s.Equal(ScoreboardEntry{PlayerID: "p2", PlayerName: "Bob", AvatarColor: models.AvatarColorForSeat(1), Seat: 1, Total: 75 + 30}, output.Entries[0])
	s.Equal("p1", output.Entries[1].PlayerID)
	s.Equal(5, output.Entries[1].Total)
	s.Equal("p3", output.Entries[2].PlayerID)
	s.Equal(5, output.Entries[2].Total)
	s.Equal(ScoreboardEntry{PlayerID: "p4", PlayerName: "David", AvatarColor: models.AvatarColorForSeat(3), Seat: 3, Total: -25 - 90}, output.Entries[3])
	s.Len(output.Rounds, 3)

	sum := 0
	for _, entry := range output.Entries {
		sum += entry.Total
	}
	s.Zero(sum)
}

func (s *TarotServiceTestSuite) TestGetTakerPerformance_NotEnoughRounds() {
	s.expectGame(s.fourPlayers)
	s.expectRounds(s.existingPrise)

	output, err := s.tarotService.GetTakerPerformance(s.ctx, &GetTakerPerformanceInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Empty(output.Performance)
	s.Equal(1, output.RoundCount)
}

func (s *TarotServiceTestSuite) TestGetTakerPerformance() {
	s.expectGame(s.fivePlayers)
	s.expectRounds(
		&models.TarotRound{ID: "r1", RoundNumber: 1, TakerPlayerID: "0", CalledPlayerID: strPtr("4"), Bid: models.BidGarde, Score: 60},
		&models.TarotRound{ID: "r2", RoundNumber: 2, TakerPlayerID: "0", Bid: models.BidGarde, Score: -80},
		&models.TarotRound{ID: "r3", RoundNumber: 3, TakerPlayerID: "2", CalledPlayerID: strPtr("2"), Bid: models.BidPrise, Score: 30},
	)

	output, err := s.tarotService.GetTakerPerformance(s.ctx, &GetTakerPerformanceInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Require().Len(output.Performance, 2)
	alice := output.Performance["p1"]
	s.Equal(2, alice.TakerRounds)
	s.Equal(50.0, alice.WinRate)
	s.Equal(models.BidGarde, alice.PreferredBid)
	s.Equal(&models.PartnerStats{GamesPlayed: 1, Wins: 1, WinRate: 100}, alice.PartnerStats["p5"])
	s.Nil(output.Performance["p3"].PartnerStats)
}

func (s *TarotServiceTestSuite) TestEndGame() {
	game := *s.fourPlayers
	s.expectGame(&game)
	s.expectRounds(s.existingPrise)

	s.mockTarotRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tarotRepo.SaveGameInput) error {
			s.Equal(models.GameStatusCompleted, input.Game.Status)
			return nil
		})

	for _, player := range s.players[:4] {
		s.mockPlayerRepo.EXPECT().
			DeactivatePlayer(gomock.Any(), &playerRepo.DeactivatePlayerInput{PlayerID: player.ID}).
			Return(nil)
	}

	output, err := s.tarotService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(models.GameStatusCompleted, output.Game.Status)
	s.Equal("p2", output.Entries[0].PlayerID)
	s.Equal(75, output.Entries[0].Total)
}

func (s *TarotServiceTestSuite) TestEndGame_AlreadyCompleted() {
	game := *s.fourPlayers
	game.Status = models.GameStatusCompleted
	s.expectGame(&game)
	s.expectRounds()

	_, err := s.tarotService.EndGame(s.ctx, &EndGameInput{GameID: s.testGameID})
	s.Equal(ErrGameNotActive, err)
}
