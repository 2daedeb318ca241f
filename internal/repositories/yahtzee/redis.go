package yahtzee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix        = "yahtzee:game:"
	channelKeyPrefix     = "yahtzee:channel:"
	playerGamesKeyPrefix = "yahtzee:player_games:"

	// Scores of a game live in one hash, field "<player ID>|<category>"
	gameScoresKeyPrefix = "yahtzee:scores:"
	scoreFieldSeparator = "|"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis Yahtzee repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed Yahtzee repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, game.ID), gameJSON, 0)

	// Only an unfinished game owns its channel
	if game.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, game.ChannelID)
		if game.IsFinished {
			pipe.Del(ctx, channelKey)
		} else {
			pipe.Set(ctx, channelKey, game.ID, 0)
		}
	}

	for _, playerID := range game.PlayerIDs {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", playerGamesKeyPrefix, playerID), redis.Z{
			Score:  float64(game.CreatedAt.UnixNano()),
			Member: game.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.YahtzeeGame, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.YahtzeeGame
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByChannel retrieves the unfinished game of a channel from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.YahtzeeGame, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// GetGamesForPlayer retrieves a player's games from Redis
func (r *redisRepository) GetGamesForPlayer(ctx context.Context, input *GetGamesForPlayerInput) (*GetGamesForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	gameIDs, err := r.client.ZRange(ctx, fmt.Sprintf("%s%s", playerGamesKeyPrefix, input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game IDs for player: %w", err)
	}

	games := make([]*models.YahtzeeGame, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		game, err := r.GetGame(ctx, &GetGameInput{GameID: gameID})
		if err != nil {
			// Skip games that can't be found
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}

	return &GetGamesForPlayerOutput{
		Games: games,
	}, nil
}

// SaveScore writes a score into the game's score hash
func (r *redisRepository) SaveScore(ctx context.Context, input *SaveScoreInput) error {
	if input == nil || input.Score == nil {
		return errors.New("input and score cannot be nil")
	}

	score := input.Score
	if score.GameID == "" || score.PlayerID == "" {
		return errors.New("game ID and player ID cannot be empty")
	}

	if !score.Category.IsValid() {
		return fmt.Errorf("unknown category %q", score.Category)
	}

	field := scoreField(score.PlayerID, score.Category)
	if err := r.client.HSet(ctx, fmt.Sprintf("%s%s", gameScoresKeyPrefix, score.GameID), field, score.Score).Err(); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}

// GetScoresForGame retrieves every score of a game from Redis
func (r *redisRepository) GetScoresForGame(ctx context.Context, input *GetScoresForGameInput) (*GetScoresForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, fmt.Sprintf("%s%s", gameScoresKeyPrefix, input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores for game: %w", err)
	}

	scores, err := parseScores(input.GameID, fields)
	if err != nil {
		return nil, err
	}

	return &GetScoresForGameOutput{
		Scores: scores,
	}, nil
}

// GetScoresForPlayer retrieves a player's scores from every game they played
func (r *redisRepository) GetScoresForPlayer(ctx context.Context, input *GetScoresForPlayerInput) (*GetScoresForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	gameIDs, err := r.client.ZRange(ctx, fmt.Sprintf("%s%s", playerGamesKeyPrefix, input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game IDs for player: %w", err)
	}

	// Fetch every score hash in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		commands[i] = pipe.HGetAll(ctx, fmt.Sprintf("%s%s", gameScoresKeyPrefix, gameID))
	}

	if len(gameIDs) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to get scores for player: %w", err)
		}
	}

	scores := []*models.YahtzeeScore{}
	for i, cmd := range commands {
		gameScores, err := parseScores(gameIDs[i], cmd.Val())
		if err != nil {
			return nil, err
		}
		for _, score := range gameScores {
			if score.PlayerID == input.PlayerID {
				scores = append(scores, score)
			}
		}
	}

	return &GetScoresForPlayerOutput{
		Scores: scores,
	}, nil
}

func scoreField(playerID string, category models.YahtzeeCategory) string {
	return playerID + scoreFieldSeparator + string(category)
}

// parseScores turns a score hash into score records, sorted for stable output
func parseScores(gameID string, fields map[string]string) ([]*models.YahtzeeScore, error) {
	scores := make([]*models.YahtzeeScore, 0, len(fields))
	for field, value := range fields {
		playerID, category, ok := strings.Cut(field, scoreFieldSeparator)
		if !ok {
			return nil, fmt.Errorf("malformed score field %q in game %s", field, gameID)
		}

		points, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("malformed score %q for %s in game %s: %w", value, field, gameID, err)
		}

		scores = append(scores, &models.YahtzeeScore{
			GameID:   gameID,
			PlayerID: playerID,
			Category: models.YahtzeeCategory(category),
			Score:    points,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].PlayerID != scores[j].PlayerID {
			return scores[i].PlayerID < scores[j].PlayerID
		}
		return scores[i].Category < scores[j].Category
	})

	return scores, nil
}
