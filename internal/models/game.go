package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a game has been completed
	GameStatusCompleted GameStatus = "completed"
)

// IsActive returns true if the game is still accepting rounds or scores
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted returns true if the game has been completed
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// TarotGame represents a Tarot scoring sheet
type TarotGame struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// ChannelID is the Discord channel where the game is being tracked
	ChannelID string `json:"channel_id"`

	// PlayerCount is the number of players at the table (3, 4 or 5)
	PlayerCount int `json:"player_count"`

	// PlayerIDs contains the IDs of the players in seating order.
	// Rounds reference players by their position in this list.
	PlayerIDs []string `json:"player_ids"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// YahtzeeGame represents a Yahtzee score card shared by several players
type YahtzeeGame struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// ChannelID is the Discord channel where the game is being tracked
	ChannelID string `json:"channel_id"`

	// PlayerCount is the number of players in the game
	PlayerCount int `json:"player_count"`

	// PlayerIDs contains the IDs of the players in seating order
	PlayerIDs []string `json:"player_ids"`

	// IsFinished indicates the game is over and a winner was recorded
	IsFinished bool `json:"is_finished"`

	// WinnerName is the display name of the winner of a finished game
	WinnerName string `json:"winner_name"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
