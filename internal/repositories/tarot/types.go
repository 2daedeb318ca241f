package tarot

import "github.com/KirkDiggler/scorepad/internal/models"

type SaveGameInput struct {
	Game *models.TarotGame
}

type GetGameInput struct {
	GameID string
}

type GetGameByChannelInput struct {
	ChannelID string
}

type SaveRoundInput struct {
	Round *models.TarotRound
}

type GetRoundInput struct {
	GameID  string
	RoundID string
}

type NextRoundNumberInput struct {
	GameID string
}

type GetRoundsInput struct {
	GameID string
}

type GetRoundsOutput struct {
	Rounds []*models.TarotRound
}

type DeleteRoundInput struct {
	GameID  string
	RoundID string
}
