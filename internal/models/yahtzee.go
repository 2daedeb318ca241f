package models

// YahtzeeCategory represents a box on the Yahtzee score card
type YahtzeeCategory string

const (
	CategoryAces          YahtzeeCategory = "aces"
	CategoryTwos          YahtzeeCategory = "twos"
	CategoryThrees        YahtzeeCategory = "threes"
	CategoryFours         YahtzeeCategory = "fours"
	CategoryFives         YahtzeeCategory = "fives"
	CategorySixes         YahtzeeCategory = "sixes"
	CategoryThreeOfKind   YahtzeeCategory = "three_of_kind"
	CategoryFourOfKind    YahtzeeCategory = "four_of_kind"
	CategoryFullHouse     YahtzeeCategory = "full_house"
	CategorySmallStraight YahtzeeCategory = "small_straight"
	CategoryLargeStraight YahtzeeCategory = "large_straight"
	CategoryChance        YahtzeeCategory = "chance"
	CategoryYahtzee       YahtzeeCategory = "yahtzee"
)

// YahtzeeCategories lists every category in score card order
var YahtzeeCategories = []YahtzeeCategory{
	CategoryAces,
	CategoryTwos,
	CategoryThrees,
	CategoryFours,
	CategoryFives,
	CategorySixes,
	CategoryThreeOfKind,
	CategoryFourOfKind,
	CategoryFullHouse,
	CategorySmallStraight,
	CategoryLargeStraight,
	CategoryChance,
	CategoryYahtzee,
}

// IsUpper returns true for the number categories (aces through sixes)
func (c YahtzeeCategory) IsUpper() bool {
	switch c {
	case CategoryAces, CategoryTwos, CategoryThrees, CategoryFours, CategoryFives, CategorySixes:
		return true
	default:
		return false
	}
}

// IsValid returns true if the category is on the score card
func (c YahtzeeCategory) IsValid() bool {
	for _, known := range YahtzeeCategories {
		if c == known {
			return true
		}
	}
	return false
}

// YahtzeeScore records the score of one player in one category of a game
type YahtzeeScore struct {
	// GameID is the ID of the game the score belongs to
	GameID string `json:"game_id"`

	// PlayerID is the ID of the player who scored
	PlayerID string `json:"player_id"`

	// Category is the score card box
	Category YahtzeeCategory `json:"category"`

	// Score is the points written in the box. Zero also means the box was scratched.
	Score int `json:"score"`
}
