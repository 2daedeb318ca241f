package tarot

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	playerRepo "github.com/KirkDiggler/scorepad/internal/repositories/player"
	tarotRepo "github.com/KirkDiggler/scorepad/internal/repositories/tarot"
	"github.com/KirkDiggler/scorepad/internal/scoring/progression"
	tarotScoring "github.com/KirkDiggler/scorepad/internal/scoring/tarot"
)

const (
	minPlayers = 3
	maxPlayers = 5
)

// service implements the Service interface
type service struct {
	tarotRepo     tarotRepo.Repository
	playerRepo    playerRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new Tarot service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TarotRepo == nil {
		return nil, ErrNilTarotRepo
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
		tarotRepo:     cfg.TarotRepo,
		playerRepo:    cfg.PlayerRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGame starts a new score sheet in a channel
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if len(input.PlayerNames) < minPlayers || len(input.PlayerNames) > maxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	for _, name := range input.PlayerNames {
		if strings.TrimSpace(name) == "" {
			return nil, ErrInvalidPlayerName
		}
	}

	existing, err := s.tarotRepo.GetGameByChannel(ctx, &tarotRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil && existing != nil {
		return nil, ErrGameAlreadyExists
	}
	if err != nil && !errors.Is(err, tarotRepo.ErrGameNotFound) {
		return nil, err
	}

	now := s.clock.Now()

	players := make([]*models.Player, 0, len(input.PlayerNames))
	playerIDs := make([]string, 0, len(input.PlayerNames))
	for seat, name := range input.PlayerNames {
		player := &models.Player{
			ID:          s.uuidGenerator.NewUUID(),
			Name:        strings.TrimSpace(name),
			AvatarColor: models.AvatarColorForSeat(seat),
			Active:      true,
		}

		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: player,
		}); err != nil {
			return nil, err
		}

		players = append(players, player)
		playerIDs = append(playerIDs, player.ID)
	}

	game := &models.TarotGame{
		ID:          s.uuidGenerator.NewUUID(),
		ChannelID:   input.ChannelID,
		PlayerCount: len(players),
		PlayerIDs:   playerIDs,
		Status:      models.GameStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tarotRepo.SaveGame(ctx, &tarotRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("game_id", game.ID).
		Str("channel_id", game.ChannelID).
		Int("player_count", game.PlayerCount).
		Msg("tarot game created")

	return &CreateGameOutput{
		Game:    game,
		Players: players,
	}, nil
}

// GetGameByChannel returns the running game of a channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	game, err := s.tarotRepo.GetGameByChannel(ctx, &tarotRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, tarotRepo.ErrGameNotFound) {
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

// AddRound scores a finished round and appends it to the game
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, err := s.getActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	scoreInput, err := validateRound(game, &input.Round)
	if err != nil {
		return nil, err
	}

	nextNumber, err := s.tarotRepo.NextRoundNumber(ctx, &tarotRepo.NextRoundNumberInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	result := tarotScoring.CalculateScore(scoreInput)
	round := newRound(game.ID, &input.Round, result)
	round.ID = s.uuidGenerator.NewUUID()
	round.RoundNumber = nextNumber
	round.CreatedAt = s.clock.Now()

	if err := s.saveRound(ctx, game, round); err != nil {
		return nil, err
	}

	log.Debug().
		Str("game_id", game.ID).
		Int("round_number", round.RoundNumber).
		Str("bid", string(round.Bid)).
		Int("score", round.Score).
		Bool("won", result.IsWon).
		Msg("tarot round added")

	return &AddRoundOutput{
		Round:  round,
		Result: result,
		Deltas: tarotScoring.CalculateRoundDeltas(players, round, game.PlayerCount),
	}, nil
}

// UpdateRound rescores an existing round, keeping its ID and number
func (s *service) UpdateRound(ctx context.Context, input *UpdateRoundInput) (*UpdateRoundOutput, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	game, players, err := s.getActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	existing, err := s.tarotRepo.GetRound(ctx, &tarotRepo.GetRoundInput{
		GameID:  game.ID,
		RoundID: input.RoundID,
	})
	if err != nil {
		if errors.Is(err, tarotRepo.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	scoreInput, err := validateRound(game, &input.Round)
	if err != nil {
		return nil, err
	}

	result := tarotScoring.CalculateScore(scoreInput)
	round := newRound(game.ID, &input.Round, result)
	round.ID = existing.ID
	round.RoundNumber = existing.RoundNumber
	round.CreatedAt = existing.CreatedAt

	if err := s.saveRound(ctx, game, round); err != nil {
		return nil, err
	}

	return &UpdateRoundOutput{
		Round:  round,
		Result: result,
		Deltas: tarotScoring.CalculateRoundDeltas(players, round, game.PlayerCount),
	}, nil
}

// DeleteRound removes a round and closes the gap in round numbers
func (s *service) DeleteRound(ctx context.Context, input *DeleteRoundInput) (*DeleteRoundOutput, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	game, _, err := s.getActiveGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.tarotRepo.DeleteRound(ctx, &tarotRepo.DeleteRoundInput{
		GameID:  game.ID,
		RoundID: input.RoundID,
	}); err != nil {
		if errors.Is(err, tarotRepo.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	rounds, err := s.tarotRepo.GetRounds(ctx, &tarotRepo.GetRoundsInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	renumbered := 0
	for i, round := range rounds.Rounds {
		if round.RoundNumber == i+1 {
			continue
		}
		round.RoundNumber = i + 1
		if err := s.tarotRepo.SaveRound(ctx, &tarotRepo.SaveRoundInput{
			Round: round,
		}); err != nil {
			return nil, fmt.Errorf("failed to renumber round %s: %w", round.ID, err)
		}
		renumbered++
	}

	return &DeleteRoundOutput{
		Success:    true,
		Renumbered: renumbered,
	}, nil
}

// GetScoreboard returns the running totals of every player
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, rounds, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetScoreboardOutput{
		Game:    game,
		Entries: scoreboard(players, rounds, game.PlayerCount),
		Rounds:  rounds,
	}, nil
}

// GetTakerPerformance returns per-player taker statistics
func (s *service) GetTakerPerformance(ctx context.Context, input *GetTakerPerformanceInput) (*GetTakerPerformanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, rounds, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetTakerPerformanceOutput{
		Players:     players,
		Performance: progression.CalculateTakerPerformance(players, rounds, game.PlayerCount),
		RoundCount:  len(rounds),
	}, nil
}

// EndGame completes a game, frees its channel and retires its players
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game, players, rounds, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if !game.Status.IsActive() {
		return nil, ErrGameNotActive
	}

	game.Status = models.GameStatusCompleted
	game.UpdatedAt = s.clock.Now()

	if err := s.tarotRepo.SaveGame(ctx, &tarotRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, err
	}

	// Tarot players only exist for the length of a score sheet
	for _, player := range players {
		if err := s.playerRepo.DeactivatePlayer(ctx, &playerRepo.DeactivatePlayerInput{
			PlayerID: player.ID,
		}); err != nil {
			return nil, fmt.Errorf("failed to deactivate player %s: %w", player.ID, err)
		}
	}

	log.Info().
		Str("game_id", game.ID).
		Int("rounds", len(rounds)).
		Msg("tarot game ended")

	return &EndGameOutput{
		Game:    game,
		Entries: scoreboard(players, rounds, game.PlayerCount),
	}, nil
}

// getGame loads a game, mapping the repository's not found error
func (s *service) getGame(ctx context.Context, gameID string) (*models.TarotGame, error) {
	if gameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	game, err := s.tarotRepo.GetGame(ctx, &tarotRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, tarotRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

func (s *service) getPlayers(ctx context.Context, game *models.TarotGame) ([]*models.Player, error) {
	output, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		PlayerIDs: game.PlayerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players for game %s: %w", game.ID, err)
	}
	return output.Players, nil
}

func (s *service) getActiveGame(ctx context.Context, gameID string) (*models.TarotGame, []*models.Player, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	if !game.Status.IsActive() {
		return nil, nil, ErrGameNotActive
	}

	players, err := s.getPlayers(ctx, game)
	if err != nil {
		return nil, nil, err
	}

	return game, players, nil
}

// loadGame reads everything the scoring functions need
func (s *service) loadGame(ctx context.Context, gameID string) (*models.TarotGame, []*models.Player, []*models.TarotRound, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, nil, nil, err
	}

	players, err := s.getPlayers(ctx, game)
	if err != nil {
		return nil, nil, nil, err
	}

	output, err := s.tarotRepo.GetRounds(ctx, &tarotRepo.GetRoundsInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	for _, round := range output.Rounds {
		if _, ok := models.PlayerAt(players, round.TakerPlayerID); !ok {
			log.Warn().
				Str("game_id", game.ID).
				Str("round_id", round.ID).
				Str("taker", round.TakerPlayerID).
				Msg("round taker does not match a seat, round is left out of totals")
		}
	}

	return game, players, output.Rounds, nil
}

func (s *service) saveRound(ctx context.Context, game *models.TarotGame, round *models.TarotRound) error {
	if err := s.tarotRepo.SaveRound(ctx, &tarotRepo.SaveRoundInput{
		Round: round,
	}); err != nil {
		return err
	}

	game.UpdatedAt = s.clock.Now()
	return s.tarotRepo.SaveGame(ctx, &tarotRepo.SaveGameInput{
		Game: game,
	})
}

// validateRound checks the seats against the table and the announcements
// against the rules, and returns what the scoring engine needs
func validateRound(game *models.TarotGame, details *RoundDetails) (*tarotScoring.ScoreInput, error) {
	if details.TakerIndex < 0 || details.TakerIndex >= game.PlayerCount {
		return nil, ErrInvalidTaker
	}

	if details.CalledIndex != nil {
		if game.PlayerCount != 5 {
			return nil, ErrCallNotAllowed
		}
		if *details.CalledIndex < 0 || *details.CalledIndex >= game.PlayerCount {
			return nil, ErrInvalidCalledPlayer
		}
	}

	chelem := details.Chelem
	if chelem == "" {
		chelem = models.ChelemNone
	}

	scoreInput := &tarotScoring.ScoreInput{
		Bid:            details.Bid,
		Bouts:          details.Bouts,
		PointsScored:   details.PointsScored,
		HasPetitAuBout: details.HasPetitAuBout,
		HasPoignee:     details.HasPoignee,
		PoigneeLevel:   details.PoigneeLevel,
		Chelem:         chelem,
	}

	if err := tarotScoring.ValidateScoreInput(scoreInput); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRound, err)
	}

	return scoreInput, nil
}

// newRound builds the stored round. Seats are stored as strings.
func newRound(gameID string, details *RoundDetails, result *tarotScoring.RoundResult) *models.TarotRound {
	round := &models.TarotRound{
		GameID:         gameID,
		TakerPlayerID:  strconv.Itoa(details.TakerIndex),
		Bid:            details.Bid,
		Bouts:          details.Bouts,
		PointsScored:   details.PointsScored,
		HasPetitAuBout: details.HasPetitAuBout,
		HasPoignee:     details.HasPoignee,
		Chelem:         details.Chelem,
		Score:          result.TotalScore,
	}

	if round.Chelem == "" {
		round.Chelem = models.ChelemNone
	}

	if details.CalledIndex != nil {
		called := strconv.Itoa(*details.CalledIndex)
		round.CalledPlayerID = &called
	}

	if details.HasPoignee {
		round.PoigneeLevel = details.PoigneeLevel
	}

	return round
}

// scoreboard ranks the players by total, ties in seat order
func scoreboard(players []*models.Player, rounds []*models.TarotRound, playerCount int) []ScoreboardEntry {
	totals := tarotScoring.CalculateTotalScores(players, rounds, playerCount)

	entries := make([]ScoreboardEntry, 0, len(players))
	for seat, player := range players {
		entries = append(entries, ScoreboardEntry{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			AvatarColor: player.AvatarColor,
			Seat:        seat,
			Total:       totals[player.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	return entries
}
