package tarot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "tarot:game:"
	channelKeyPrefix    = "tarot:channel:"
	roundKeyPrefix      = "tarot:round:"
	gameRoundsKeyPrefix = "tarot:game_rounds:"
	roundSeqKeyPrefix   = "tarot:round_seq:"
)

// releaseRoundNumber steps the round counter back after a delete, leaving a
// game that never handed out a number untouched
var releaseRoundNumber = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 and tonumber(redis.call("GET", KEYS[1])) > 0 then
	return redis.call("DECR", KEYS[1])
end
return 0
`)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("game not found")

	// ErrRoundNotFound is returned when a round is not found in a game
	ErrRoundNotFound = errors.New("round not found")
)

// Config holds configuration for the Redis Tarot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed Tarot repository
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

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	pipe.Set(ctx, gameKey, gameJSON, 0)

	// Only an active game owns its channel
	if input.Game.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Game.ChannelID)
		if input.Game.Status.IsActive() {
			pipe.Set(ctx, channelKey, input.Game.ID, 0)
		} else {
			pipe.Del(ctx, channelKey)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.TarotGame, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.TarotGame
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByChannel retrieves the active game of a channel from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.TarotGame, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)
	gameID, err := r.client.Get(ctx, channelKey).Result()
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

// SaveRound stores a round and indexes it by round number
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	round := input.Round
	if round.ID == "" || round.GameID == "" {
		return errors.New("round ID and game ID cannot be empty")
	}

	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	pipe := r.client.TxPipeline()

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, round.ID)
	pipe.Set(ctx, roundKey, roundJSON, 0)

	gameRoundsKey := fmt.Sprintf("%s%s", gameRoundsKeyPrefix, round.GameID)
	pipe.ZAdd(ctx, gameRoundsKey, redis.Z{
		Score:  float64(round.RoundNumber),
		Member: round.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// NextRoundNumber increments the game's round counter
func (r *redisRepository) NextRoundNumber(ctx context.Context, input *NextRoundNumberInput) (int, error) {
	if input == nil || input.GameID == "" {
		return 0, errors.New("input and game ID cannot be empty")
	}

	seqKey := fmt.Sprintf("%s%s", roundSeqKeyPrefix, input.GameID)
	number, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get next round number: %w", err)
	}

	return int(number), nil
}

// GetRound retrieves a single round, checking it belongs to the game
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.TarotRound, error) {
	if input == nil || input.GameID == "" || input.RoundID == "" {
		return nil, errors.New("input, game ID and round ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID)
	roundJSON, err := r.client.Get(ctx, roundKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.TarotRound
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	if round.GameID != input.GameID {
		return nil, ErrRoundNotFound
	}

	return &round, nil
}

// GetRounds retrieves all rounds of a game from Redis
func (r *redisRepository) GetRounds(ctx context.Context, input *GetRoundsInput) (*GetRoundsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameRoundsKey := fmt.Sprintf("%s%s", gameRoundsKeyPrefix, input.GameID)
	roundIDs, err := r.client.ZRange(ctx, gameRoundsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round IDs for game: %w", err)
	}

	if len(roundIDs) == 0 {
		return &GetRoundsOutput{
			Rounds: []*models.TarotRound{},
		}, nil
	}

	// Get all round records using a pipeline
	pipe := r.client.Pipeline()
	roundCommands := make([]*redis.StringCmd, len(roundIDs))
	for i, roundID := range roundIDs {
		roundCommands[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", roundKeyPrefix, roundID))
	}

	// redis.Nil on a single command is handled per round below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}

	rounds := make([]*models.TarotRound, 0, len(roundIDs))
	for i, cmd := range roundCommands {
		roundJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Round was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get round %s: %w", roundIDs[i], err)
		}

		var round models.TarotRound
		if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round %s: %w", roundIDs[i], err)
		}

		rounds = append(rounds, &round)
	}

	return &GetRoundsOutput{
		Rounds: rounds,
	}, nil
}

// DeleteRound removes a round from Redis
func (r *redisRepository) DeleteRound(ctx context.Context, input *DeleteRoundInput) error {
	if input == nil || input.GameID == "" || input.RoundID == "" {
		return errors.New("input, game ID and round ID cannot be empty")
	}

	// Make sure the round belongs to the game
	if _, err := r.GetRound(ctx, &GetRoundInput{
		GameID:  input.GameID,
		RoundID: input.RoundID,
	}); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID))
	pipe.ZRem(ctx, fmt.Sprintf("%s%s", gameRoundsKeyPrefix, input.GameID), input.RoundID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}

	// Later rounds move up one number
	seqKey := fmt.Sprintf("%s%s", roundSeqKeyPrefix, input.GameID)
	if err := releaseRoundNumber.Run(ctx, r.client, []string{seqKey}).Err(); err != nil {
		return fmt.Errorf("failed to release round number: %w", err)
	}

	return nil
}
