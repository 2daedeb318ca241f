package tarot

import (
	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/models"
	playerRepo "github.com/KirkDiggler/scorepad/internal/repositories/player"
	tarotRepo "github.com/KirkDiggler/scorepad/internal/repositories/tarot"
	tarotScoring "github.com/KirkDiggler/scorepad/internal/scoring/tarot"
)

// Config holds configuration for the Tarot service
type Config struct {
	// Repository dependencies
	TarotRepo  tarotRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for starting a game
type CreateGameInput struct {
	// ChannelID is the Discord channel where the game is tracked
	ChannelID string

	// PlayerNames are the players in seating order
	PlayerNames []string
}

// CreateGameOutput contains the result of starting a game
type CreateGameOutput struct {
	Game    *models.TarotGame
	Players []*models.Player
}

// GetGameByChannelInput contains parameters for finding a channel's game
type GetGameByChannelInput struct {
	ChannelID string
}

// GetGameByChannelOutput contains the running game of a channel
type GetGameByChannelOutput struct {
	Game    *models.TarotGame
	Players []*models.Player
}

// RoundDetails describes what happened in a round, as announced at the table
type RoundDetails struct {
	// TakerIndex is the taker's seat, starting at 0
	TakerIndex int

	// CalledIndex is the called partner's seat. 5-player games only.
	CalledIndex *int

	Bid            models.Bid
	Bouts          int
	PointsScored   int
	HasPetitAuBout bool
	HasPoignee     bool
	PoigneeLevel   *models.PoigneeLevel
	Chelem         models.Chelem
}

// AddRoundInput contains parameters for adding a round
type AddRoundInput struct {
	GameID string
	Round  RoundDetails
}

// AddRoundOutput contains the stored round and how it was scored
type AddRoundOutput struct {
	Round  *models.TarotRound
	Result *tarotScoring.RoundResult

	// Deltas is what each player gained or lost in this round
	Deltas map[string]int
}

// UpdateRoundInput contains parameters for editing a round
type UpdateRoundInput struct {
	GameID  string
	RoundID string
	Round   RoundDetails
}

// UpdateRoundOutput contains the rescored round
type UpdateRoundOutput struct {
	Round  *models.TarotRound
	Result *tarotScoring.RoundResult
	Deltas map[string]int
}

// DeleteRoundInput contains parameters for deleting a round
type DeleteRoundInput struct {
	GameID  string
	RoundID string
}

// DeleteRoundOutput contains the result of deleting a round
type DeleteRoundOutput struct {
	Success bool

	// Renumbered is the number of later rounds that moved up
	Renumbered int
}

// GetScoreboardInput contains parameters for reading the scoreboard
type GetScoreboardInput struct {
	GameID string
}

// ScoreboardEntry is one line of the scoreboard
type ScoreboardEntry struct {
	PlayerID    string
	PlayerName  string
	AvatarColor string
	Seat        int
	Total       int
}

// GetScoreboardOutput contains the standings of a game
type GetScoreboardOutput struct {
	Game *models.TarotGame

	// Entries are sorted by total, highest first
	Entries []ScoreboardEntry

	Rounds []*models.TarotRound
}

// GetTakerPerformanceInput contains parameters for reading taker statistics
type GetTakerPerformanceInput struct {
	GameID string
}

// GetTakerPerformanceOutput contains the taker statistics of a game
type GetTakerPerformanceOutput struct {
	Players []*models.Player

	// Performance is keyed by player ID. Empty until enough rounds were played.
	Performance map[string]*models.TakerPerformance

	RoundCount int
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the final standings
type EndGameOutput struct {
	Game    *models.TarotGame
	Entries []ScoreboardEntry
}
