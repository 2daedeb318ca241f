package models

import (
	"time"
)

// Bid represents the contract level declared by the taker
type Bid string

const (
	// BidPrise is the lowest contract
	BidPrise Bid = "prise"

	// BidGarde doubles the contract value
	BidGarde Bid = "garde"

	// BidGardeSans is played without the dog
	BidGardeSans Bid = "garde_sans"

	// BidGardeContre is played with the dog going to the defenders
	BidGardeContre Bid = "garde_contre"
)

// Bids lists every contract from lowest to highest
var Bids = []Bid{BidPrise, BidGarde, BidGardeSans, BidGardeContre}

// Multiplier returns the score multiplier of the contract
func (b Bid) Multiplier() int {
	switch b {
	case BidPrise:
		return 1
	case BidGarde:
		return 2
	case BidGardeSans:
		return 4
	case BidGardeContre:
		return 6
	default:
		return 0
	}
}

// IsValid returns true if the bid is a known contract
func (b Bid) IsValid() bool {
	return b.Multiplier() > 0
}

// PoigneeLevel represents the size of a declared handful of trumps
type PoigneeLevel string

const (
	PoigneeSimple PoigneeLevel = "simple"
	PoigneeDouble PoigneeLevel = "double"
	PoigneeTriple PoigneeLevel = "triple"
)

// Bonus returns the flat bonus for the poignée level
func (p PoigneeLevel) Bonus() int {
	switch p {
	case PoigneeSimple:
		return 20
	case PoigneeDouble:
		return 30
	case PoigneeTriple:
		return 40
	default:
		return 0
	}
}

// IsValid returns true if the level is known
func (p PoigneeLevel) IsValid() bool {
	return p.Bonus() > 0
}

// Chelem represents the outcome of a grand slam
type Chelem string

const (
	ChelemNone                Chelem = "none"
	ChelemAnnouncedSuccess    Chelem = "announced_success"
	ChelemAnnouncedFail       Chelem = "announced_fail"
	ChelemNonAnnouncedSuccess Chelem = "non_announced_success"
)

// Bonus returns the fixed bonus or penalty of the chelem outcome.
// An empty value is treated as no chelem.
func (c Chelem) Bonus() int {
	switch c {
	case ChelemAnnouncedSuccess:
		return 400
	case ChelemAnnouncedFail:
		return -200
	case ChelemNonAnnouncedSuccess:
		return 200
	default:
		return 0
	}
}

// IsValid returns true if the chelem outcome is known
func (c Chelem) IsValid() bool {
	switch c {
	case "", ChelemNone, ChelemAnnouncedSuccess, ChelemAnnouncedFail, ChelemNonAnnouncedSuccess:
		return true
	default:
		return false
	}
}

// TarotRound represents one completed round of a Tarot game
type TarotRound struct {
	// ID is the unique identifier for the round
	ID string `json:"id"`

	// GameID is the ID of the game the round belongs to
	GameID string `json:"game_id"`

	// RoundNumber is the 1-based position of the round in the game
	RoundNumber int `json:"round_number"`

	// TakerPlayerID is the taker's position in the game's player list, as a string
	TakerPlayerID string `json:"taker_player_id"`

	// CalledPlayerID is the called partner's position, as a string.
	// Only set in 5-player games.
	CalledPlayerID *string `json:"called_player_id,omitempty"`

	// Bid is the contract played
	Bid Bid `json:"bid"`

	// Bouts is the number of oudlers held by the taker's side
	Bouts int `json:"bouts"`

	// PointsScored is the card points won by the taker's side
	PointsScored int `json:"points_scored"`

	HasPetitAuBout bool `json:"has_petit_au_bout"`

	HasPoignee bool `json:"has_poignee"`

	PoigneeLevel *PoigneeLevel `json:"poignee_level,omitempty"`

	Chelem Chelem `json:"chelem"`

	// Score is the taker-relative result of the round, before distribution
	Score int `json:"score"`

	// CreatedAt is when the round was recorded
	CreatedAt time.Time `json:"created_at"`
}
