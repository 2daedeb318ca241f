package models

// PartnerStats summarises the rounds a taker played with one called partner
type PartnerStats struct {
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
}

// TakerPerformance summarises the rounds a player took in a Tarot game
type TakerPerformance struct {
	// TakerRounds is the number of rounds the player took
	TakerRounds int `json:"taker_rounds"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	// WinRate is the percentage of taker rounds won
	WinRate float64 `json:"win_rate"`

	AvgWinPoints  float64 `json:"avg_win_points"`
	AvgLossPoints float64 `json:"avg_loss_points"`

	TotalPointsGained int `json:"total_points_gained"`

	// TotalPointsLost is the signed sum of losing round scores
	TotalPointsLost int `json:"total_points_lost"`

	// PreferredBid is the most used bid, first encountered wins a tie
	PreferredBid Bid `json:"preferred_bid"`

	// BidDistribution counts the bids the player used
	BidDistribution map[Bid]int `json:"bid_distribution"`

	// BidOrder lists the used bids in the order they first appeared
	BidOrder []Bid `json:"bid_order"`

	// PartnerStats is keyed by partner player ID. Nil unless the player
	// called a partner other than themself in a 5-player game.
	PartnerStats map[string]*PartnerStats `json:"partner_stats,omitempty"`
}

// CategoryStat summarises a player's results in one Yahtzee category
type CategoryStat struct {
	Average     float64 `json:"average"`
	TimesScored int     `json:"times_scored"`
	TimesZeroed int     `json:"times_zeroed"`
	ZeroRate    float64 `json:"zero_rate"`
	Best        int     `json:"best"`
}

// PlayerStatistics summarises a player's Yahtzee history
type PlayerStatistics struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TotalGames    int     `json:"total_games"`
	FinishedGames int     `json:"finished_games"`
	Wins          int     `json:"wins"`
	WinRate       float64 `json:"win_rate"`
	AverageScore  float64 `json:"average_score"`
	HighScore     int     `json:"high_score"`
}
