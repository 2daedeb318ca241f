package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/tarot"
)

// TarotCommand handles the /tarot command
type TarotCommand struct {
	BaseCommand
	tarotService     tarot.Service
	messagingService messaging.Service
}

func floatPtr(f float64) *float64 {
	return &f
}

func bidChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Bids))
	for _, bid := range models.Bids {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: bidLabels[bid], Value: string(bid)})
	}
	return choices
}

// roundOptions describes a round as it is announced at the table
func roundOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "taker",
			Description: "Seat of the taker",
			Required:    true,
			MinValue:    floatPtr(1),
			MaxValue:    5,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "bid",
			Description: "Contract",
			Required:    true,
			Choices:     bidChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "bouts",
			Description: "Oudlers won by the taker",
			Required:    true,
			MinValue:    floatPtr(0),
			MaxValue:    3,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "points",
			Description: "Card points won by the taker",
			Required:    true,
			MinValue:    floatPtr(0),
			MaxValue:    91,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "called",
			Description: "Seat of the called partner (5 players)",
			MinValue:    floatPtr(1),
			MaxValue:    5,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "petit",
			Description: "Petit au bout",
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "poignee",
			Description: "Poignée shown",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Simple", Value: string(models.PoigneeSimple)},
				{Name: "Double", Value: string(models.PoigneeDouble)},
				{Name: "Triple", Value: string(models.PoigneeTriple)},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "chelem",
			Description: "Chelem",
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: chelemLabels[models.ChelemAnnouncedSuccess], Value: string(models.ChelemAnnouncedSuccess)},
				{Name: chelemLabels[models.ChelemAnnouncedFail], Value: string(models.ChelemAnnouncedFail)},
				{Name: chelemLabels[models.ChelemNonAnnouncedSuccess], Value: string(models.ChelemNonAnnouncedSuccess)},
			},
		},
	}
}

func roundNumberOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "number",
		Description: description,
		Required:    true,
		MinValue:    floatPtr(1),
	}
}

// NewTarotCommand creates a new tarot command handler
func NewTarotCommand(tarotService tarot.Service, messagingService messaging.Service) *TarotCommand {
	newOptions := make([]*discordgo.ApplicationCommandOption, 0, 5)
	for seat := 1; seat <= 5; seat++ {
		newOptions = append(newOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("player%d", seat),
			Description: fmt.Sprintf("Player in seat %d", seat),
			Required:    seat <= 3,
		})
	}

	return &TarotCommand{
		BaseCommand: BaseCommand{
			Name:        "tarot",
			Description: "French Tarot score sheet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Start a score sheet for 3 to 5 players",
					Options:     newOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "round",
					Description: "Record a round",
					Options:     roundOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Correct a recorded round",
					Options:     append([]*discordgo.ApplicationCommandOption{roundNumberOption("Round to correct")}, roundOptions()...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Remove a recorded round",
					Options:     []*discordgo.ApplicationCommandOption{roundNumberOption("Round to remove")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scores",
					Description: "Show the running totals",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show taker statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Close the score sheet",
				},
			},
		},
		tarotService:     tarotService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the tarot command
func (c *TarotCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "new":
		return c.handleNew(ctx, s, i, opts)
	case "round":
		return c.handleRound(ctx, s, i, opts)
	case "edit":
		return c.handleEdit(ctx, s, i, opts)
	case "delete":
		return c.handleDelete(ctx, s, i, opts)
	case "scores":
		return c.handleScores(ctx, s, i)
	case "stats":
		return c.handleStats(ctx, s, i)
	case "end":
		return c.handleEnd(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *TarotCommand) handleNew(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	var names []string
	for seat := 1; seat <= 5; seat++ {
		if opt, ok := opts[fmt.Sprintf("player%d", seat)]; ok {
			names = append(names, opt.StringValue())
		}
	}

	output, err := c.tarotService.CreateGame(ctx, &tarot.CreateGameInput{
		ChannelID:   i.ChannelID,
		PlayerNames: names,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderTarotGameCreated(output))
}

func (c *TarotCommand) handleRound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	details := roundDetails(opts)
	output, err := c.tarotService.AddRound(ctx, &tarot.AddRoundInput{
		GameID: current.Game.ID,
		Round:  details,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	flavour, err := c.messagingService.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		TakerName: current.Players[details.TakerIndex].Name,
		Bid:       output.Round.Bid,
		IsWon:     output.Result.IsWon,
		Chelem:    output.Round.Chelem,
		Score:     output.Result.TotalScore,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderRoundResult(output.Round, output.Result, output.Deltas, current.Players, flavour))
}

func (c *TarotCommand) handleEdit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	number := int(opts["number"].IntValue())
	round, err := c.findRound(ctx, current.Game.ID, number)
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}
	if round == nil {
		return RespondWithError(s, i, fmt.Sprintf("There is no round %d.", number))
	}

	output, err := c.tarotService.UpdateRound(ctx, &tarot.UpdateRoundInput{
		GameID:  current.Game.ID,
		RoundID: round.ID,
		Round:   roundDetails(opts),
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderRoundResult(output.Round, output.Result, output.Deltas, current.Players, &messaging.GetRoundResultMessageOutput{
		Title:   "corrected",
		Message: fmt.Sprintf("Round %d was rescored.", output.Round.RoundNumber),
	}))
}

func (c *TarotCommand) handleDelete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	number := int(opts["number"].IntValue())
	round, err := c.findRound(ctx, current.Game.ID, number)
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}
	if round == nil {
		return RespondWithError(s, i, fmt.Sprintf("There is no round %d.", number))
	}

	if _, err := c.tarotService.DeleteRound(ctx, &tarot.DeleteRoundInput{
		GameID:  current.Game.ID,
		RoundID: round.ID,
	}); err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return c.handleScores(ctx, s, i)
}

func (c *TarotCommand) handleScores(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	board, err := c.scoreboard(ctx, i.ChannelID)
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderScoreboard(board))
}

func (c *TarotCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	output, err := c.tarotService.GetTakerPerformance(ctx, &tarot.GetTakerPerformanceInput{
		GameID: current.Game.ID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderTakerPerformance(output))
}

func (c *TarotCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	output, err := c.tarotService.EndGame(ctx, &tarot.EndGameInput{
		GameID: current.Game.ID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	input := &messaging.GetGameOverMessageInput{GameType: messaging.GameTypeTarot}
	if len(output.Entries) > 0 && output.Entries[0].Total > 0 {
		input.WinnerName = output.Entries[0].PlayerName
		input.Score = output.Entries[0].Total
	}

	flavour, err := c.messagingService.GetGameOverMessage(ctx, input)
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderTarotGameOver(output, flavour))
}

func (c *TarotCommand) scoreboard(ctx context.Context, channelID string) (*tarot.GetScoreboardOutput, error) {
	current, err := c.tarotService.GetGameByChannel(ctx, &tarot.GetGameByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, err
	}

	return c.tarotService.GetScoreboard(ctx, &tarot.GetScoreboardInput{
		GameID: current.Game.ID,
	})
}

// findRound looks a round up by the number shown on the score sheet
func (c *TarotCommand) findRound(ctx context.Context, gameID string, number int) (*models.TarotRound, error) {
	board, err := c.tarotService.GetScoreboard(ctx, &tarot.GetScoreboardInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, err
	}

	for _, round := range board.Rounds {
		if round.RoundNumber == number {
			return round, nil
		}
	}

	return nil, nil
}

// roundDetails reads the round options. Seats are shown from 1.
func roundDetails(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) tarot.RoundDetails {
	details := tarot.RoundDetails{
		TakerIndex:   int(opts["taker"].IntValue()) - 1,
		Bid:          models.Bid(opts["bid"].StringValue()),
		Bouts:        int(opts["bouts"].IntValue()),
		PointsScored: int(opts["points"].IntValue()),
		Chelem:       models.ChelemNone,
	}

	if opt, ok := opts["called"]; ok {
		called := int(opt.IntValue()) - 1
		details.CalledIndex = &called
	}

	if opt, ok := opts["petit"]; ok {
		details.HasPetitAuBout = opt.BoolValue()
	}

	if opt, ok := opts["poignee"]; ok {
		level := models.PoigneeLevel(opt.StringValue())
		details.HasPoignee = true
		details.PoigneeLevel = &level
	}

	if opt, ok := opts["chelem"]; ok {
		details.Chelem = models.Chelem(opt.StringValue())
	}

	return details
}
