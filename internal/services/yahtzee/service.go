package yahtzee

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	playerRepo "github.com/KirkDiggler/scorepad/internal/repositories/player"
	yahtzeeRepo "github.com/KirkDiggler/scorepad/internal/repositories/yahtzee"
	yahtzeeScoring "github.com/KirkDiggler/scorepad/internal/scoring/yahtzee"
)

const (
	minPlayers = 1
	maxPlayers = 8
)

// service implements the Service interface
type service struct {
	yahtzeeRepo   yahtzeeRepo.Repository
	playerRepo    playerRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new Yahtzee service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.YahtzeeRepo == nil {
		return nil, ErrNilYahtzeeRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		yahtzeeRepo:   cfg.YahtzeeRepo,
		playerRepo:    cfg.PlayerRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGame starts a new score card in a channel
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if len(input.Players) < minPlayers || len(input.Players) > maxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	seen := make(map[string]bool, len(input.Players))
	for _, p := range input.Players {
		if strings.TrimSpace(p.Name) == "" {
			return nil, ErrInvalidPlayerName
		}
		if p.ID == "" {
			continue
		}
		if seen[p.ID] {
			return nil, ErrDuplicatePlayer
		}
		seen[p.ID] = true
	}

	existing, err := s.yahtzeeRepo.GetGameByChannel(ctx, &yahtzeeRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil && existing != nil {
		return nil, ErrGameAlreadyExists
	}
	if err != nil && !errors.Is(err, yahtzeeRepo.ErrGameNotFound) {
		return nil, err
	}

	now := s.clock.Now()

	players := make([]*models.Player, 0, len(input.Players))
	for seat, p := range input.Players {
		id := p.ID
		if id == "" {
			id = s.uuidGenerator.NewUUID()
		}

		player := &models.Player{
			ID:          id,
			Name:        strings.TrimSpace(p.Name),
			AvatarColor: models.AvatarColorForSeat(seat),
			Active:      true,
		}

		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	game := &models.YahtzeeGame{
		ID:          s.uuidGenerator.NewUUID(),
		ChannelID:   input.ChannelID,
		PlayerCount: len(players),
		PlayerIDs: lo.Map(players, func(player *models.Player, _ int) string {
			return player.ID
		}),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.yahtzeeRepo.SaveGame(ctx, &yahtzeeRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("game_id", game.ID).
		Str("channel_id", game.ChannelID).
		Int("player_count", game.PlayerCount).
		Msg("yahtzee game created")

	return &CreateGameOutput{
		Game:    game,
		Players: players,
	}, nil
}

// GetGameByChannel returns the unfinished game of a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	game, err := s.yahtzeeRepo.GetGameByChannel(ctx, &yahtzeeRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, yahtzeeRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	players, err := s.getPlayers(ctx, game)
	if err != nil {
		return nil, err
	}

	return &GetGameByChannelOutput{
		Game:    game,
		Players: players,
	}, nil
}

// RecordScore writes a box of a player's score card
func (s *service) RecordScore(ctx context.Context, input *RecordScoreInput) (*RecordScoreOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	if input.Score < 0 {
		return nil, ErrInvalidScore
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished {
		return nil, ErrGameFinished
	}

	if input.PlayerIndex < 0 || input.PlayerIndex >= len(game.PlayerIDs) {
		return nil, ErrInvalidPlayer
	}

	players, err := s.getPlayers(ctx, game)
	if err != nil {
		return nil, err
	}
	player := players[input.PlayerIndex]

	score := &models.YahtzeeScore{
		GameID:   game.ID,
		PlayerID: player.ID,
		Category: input.Category,
		Score:    input.Score,
	}

	if err := s.yahtzeeRepo.SaveScore(ctx, &yahtzeeRepo.SaveScoreInput{
		Score: score,
	}); err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.yahtzeeRepo.SaveGame(ctx, &yahtzeeRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, err
	}

	scores, err := s.getScores(ctx, game)
	if err != nil {
		return nil, err
	}

	total := yahtzeeScoring.CalculateGameTotals([]*models.YahtzeeGame{game}, scores, player.ID)[game.ID]

	log.Debug().
		Str("game_id", game.ID).
		Str("player_id", player.ID).
		Str("category", string(score.Category)).
		Int("score", score.Score).
		Int("total", total).
		Msg("yahtzee score recorded")

	return &RecordScoreOutput{
		Score:  score,
		Player: player,
		Total:  total,
	}, nil
}

// FinishGame closes a game and records its winner
func (s *service) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, scores, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished {
		return nil, ErrGameFinished
	}

	if len(scores) == 0 {
		return nil, ErrNoScores
	}

	winnerName, totals := yahtzeeScoring.DetermineWinner(game, players, scores)

	game.IsFinished = true
	game.WinnerName = winnerName
	game.UpdatedAt = s.clock.Now()

	if err := s.yahtzeeRepo.SaveGame(ctx, &yahtzeeRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("game_id", game.ID).
		Str("winner", winnerName).
		Msg("yahtzee game finished")

	return &FinishGameOutput{
		Game:    game,
		Entries: standings(players, scores, totals),
	}, nil
}

// GetGameTotals returns every player's total in a game
func (s *service) GetGameTotals(ctx context.Context, input *GetGameTotalsInput) (*GetGameTotalsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, scores, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	_, totals := yahtzeeScoring.DetermineWinner(game, players, scores)

	return &GetGameTotalsOutput{
		Game:    game,
		Entries: standings(players, scores, totals),
	}, nil
}

// GetPlayerStatistics summarises a player's history across games
func (s *service) GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	games, err := s.yahtzeeRepo.GetGamesForPlayer(ctx, &yahtzeeRepo.GetGamesForPlayerInput{
		PlayerID: player.ID,
	})
	if err != nil {
		return nil, err
	}

	scores, err := s.yahtzeeRepo.GetScoresForPlayer(ctx, &yahtzeeRepo.GetScoresForPlayerInput{
		PlayerID: player.ID,
	})
	if err != nil {
		return nil, err
	}

	statistics := yahtzeeScoring.CalculatePlayerStatistics(&yahtzeeScoring.PlayerStatisticsInput{
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		Games:        games.Games,
		PlayerScores: scores.Scores,
	})

	// A running game has boxes still to fill, so only completed cards
	// count as opportunities for the category figures
	finished := lo.Filter(games.Games, func(game *models.YahtzeeGame, _ int) bool {
		return game.IsFinished
	})
	finishedIDs := lo.SliceToMap(finished, func(game *models.YahtzeeGame) (string, bool) {
		return game.ID, true
	})
	finishedScores := lo.Filter(scores.Scores, func(score *models.YahtzeeScore, _ int) bool {
		return finishedIDs[score.GameID]
	})

	return &GetPlayerStatisticsOutput{
		Statistics:          statistics,
		CategoryStats:       yahtzeeScoring.CalculateCategoryStats(finishedScores, len(finished)),
		YahtzeeCount:        yahtzeeScoring.CountYahtzees(scores.Scores),
		UpperBonusRate:      yahtzeeScoring.CalculateUpperBonusRate(games.Games, scores.Scores, player.ID),
		UpperSectionAverage: yahtzeeScoring.CalculateUpperSectionAverage(scores.Scores),
		LowerSectionAverage: yahtzeeScoring.CalculateLowerSectionAverage(scores.Scores),
	}, nil
}

// getGame loads a game, mapping the repository's not found error
func (s *service) getGame(ctx context.Context, gameID string) (*models.YahtzeeGame, error) {
	if gameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	game, err := s.yahtzeeRepo.GetGame(ctx, &yahtzeeRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, yahtzeeRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

func (s *service) getPlayers(ctx context.Context, game *models.YahtzeeGame) ([]*models.Player, error) {
	output, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		PlayerIDs: game.PlayerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players for game %s: %w", game.ID, err)
	}
	return output.Players, nil
}

func (s *service) getScores(ctx context.Context, game *models.YahtzeeGame) ([]*models.YahtzeeScore, error) {
	output, err := s.yahtzeeRepo.GetScoresForGame(ctx, &yahtzeeRepo.GetScoresForGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}
	return output.Scores, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.YahtzeeGame, []*models.Player, []*models.YahtzeeScore, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, nil, nil, err
	}

	players, err := s.getPlayers(ctx, game)
	if err != nil {
		return nil, nil, nil, err
	}

	scores, err := s.getScores(ctx, game)
	if err != nil {
		return nil, nil, nil, err
	}

	return game, players, scores, nil
}

// standings ranks the players by total, ties in seat order
func standings(players []*models.Player, scores []*models.YahtzeeScore, totals map[string]int) []TotalEntry {
	filled := lo.CountValuesBy(scores, func(score *models.YahtzeeScore) string {
		return score.PlayerID
	})

	entries := make([]TotalEntry, 0, len(players))
	for seat, player := range players {
		entries = append(entries, TotalEntry{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			AvatarColor: player.AvatarColor,
			Seat:        seat,
			Total:       totals[player.ID],
			Filled:      filled[player.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	return entries
}
