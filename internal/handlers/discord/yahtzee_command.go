package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/yahtzee"
)

const maxYahtzeePlayers = 8

// YahtzeeCommand handles the /yahtzee command
type YahtzeeCommand struct {
	BaseCommand
	yahtzeeService   yahtzee.Service
	messagingService messaging.Service
}

// NewYahtzeeCommand creates a new yahtzee command handler
func NewYahtzeeCommand(yahtzeeService yahtzee.Service, messagingService messaging.Service) *YahtzeeCommand {
	newOptions := make([]*discordgo.ApplicationCommandOption, 0, maxYahtzeePlayers)
	for seat := 1; seat <= maxYahtzeePlayers; seat++ {
		newOptions = append(newOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        fmt.Sprintf("player%d", seat),
			Description: fmt.Sprintf("Player %d", seat),
			Required:    seat == 1,
		})
	}

	categories := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.YahtzeeCategories))
	for _, category := range models.YahtzeeCategories {
		categories = append(categories, &discordgo.ApplicationCommandOptionChoice{
			Name:  categoryLabels[category],
			Value: string(category),
		})
	}

	playerOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "player",
		Description: "Player, yourself if empty",
	}

	return &YahtzeeCommand{
		BaseCommand: BaseCommand{
			Name:        "yahtzee",
			Description: "Yahtzee score card",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Start a score card for up to 8 players",
					Options:     newOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Write a score in a category, 0 to scratch it",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Score card box",
							Required:    true,
							Choices:     categories,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "score",
							Description: "Points",
							Required:    true,
							MinValue:    floatPtr(0),
						},
						playerOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "totals",
					Description: "Show the running totals",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finish",
					Description: "Close the score card and crown the winner",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's Yahtzee statistics",
					Options:     []*discordgo.ApplicationCommandOption{playerOption},
				},
			},
		},
		yahtzeeService:   yahtzeeService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the yahtzee command
func (c *YahtzeeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	case "score":
		return c.handleScore(ctx, s, i, opts)
	case "totals":
		return c.handleTotals(ctx, s, i)
	case "finish":
		return c.handleFinish(ctx, s, i)
	case "stats":
		return c.handleStats(ctx, s, i, opts)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *YahtzeeCommand) handleNew(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	data := i.ApplicationCommandData()

	var players []yahtzee.PlayerInput
	for seat := 1; seat <= maxYahtzeePlayers; seat++ {
		opt, ok := opts[fmt.Sprintf("player%d", seat)]
		if !ok {
			continue
		}
		member, user := resolvedUser(data, opt.UserValue(nil).ID)
		name := displayName(member, user)
		if name == "" {
			name = user.ID
		}
		players = append(players, yahtzee.PlayerInput{
			ID:   user.ID,
			Name: name,
		})
	}

	output, err := c.yahtzeeService.CreateGame(ctx, &yahtzee.CreateGameInput{
		ChannelID: i.ChannelID,
		Players:   players,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderYahtzeeGameCreated(output))
}

func (c *YahtzeeCommand) handleScore(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	current, err := c.yahtzeeService.GetGameByChannel(ctx, &yahtzee.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	playerID := targetUserID(i, opts)
	seat := -1
	for idx, player := range current.Players {
		if player.ID == playerID {
			seat = idx
			break
		}
	}
	if seat < 0 {
		return RespondWithServiceError(s, i, yahtzee.ErrInvalidPlayer)
	}

	output, err := c.yahtzeeService.RecordScore(ctx, &yahtzee.RecordScoreInput{
		GameID:      current.Game.ID,
		PlayerIndex: seat,
		Category:    models.YahtzeeCategory(opts["category"].StringValue()),
		Score:       int(opts["score"].IntValue()),
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	flavour, err := c.messagingService.GetYahtzeeScoreMessage(ctx, &messaging.GetYahtzeeScoreMessageInput{
		PlayerName: output.Player.Name,
		Category:   output.Score.Category,
		Score:      output.Score.Score,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderYahtzeeScore(output, flavour))
}

func (c *YahtzeeCommand) handleTotals(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.yahtzeeService.GetGameByChannel(ctx, &yahtzee.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	output, err := c.yahtzeeService.GetGameTotals(ctx, &yahtzee.GetGameTotalsInput{
		GameID: current.Game.ID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderYahtzeeTotals(output))
}

func (c *YahtzeeCommand) handleFinish(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	current, err := c.yahtzeeService.GetGameByChannel(ctx, &yahtzee.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	output, err := c.yahtzeeService.FinishGame(ctx, &yahtzee.FinishGameInput{
		GameID: current.Game.ID,
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	input := &messaging.GetGameOverMessageInput{
		GameType:   messaging.GameTypeYahtzee,
		WinnerName: output.Game.WinnerName,
	}
	if len(output.Entries) > 0 {
		input.Score = output.Entries[0].Total
	}

	flavour, err := c.messagingService.GetGameOverMessage(ctx, input)
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderYahtzeeGameOver(output, flavour))
}

func (c *YahtzeeCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	output, err := c.yahtzeeService.GetPlayerStatistics(ctx, &yahtzee.GetPlayerStatisticsInput{
		PlayerID: targetUserID(i, opts),
	})
	if err != nil {
		return RespondWithServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderPlayerStatistics(output))
}

// targetUserID is the user named in the player option, or the invoker
func targetUserID(i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) string {
	if opt, ok := opts["player"]; ok {
		return opt.UserValue(nil).ID
	}
	_, user := invoker(i)
	if user == nil {
		return ""
	}
	return user.ID
}

// resolvedUser returns the member and user Discord resolved for a user option
func resolvedUser(data discordgo.ApplicationCommandInteractionData, userID string) (*discordgo.Member, *discordgo.User) {
	if data.Resolved == nil {
		return nil, &discordgo.User{ID: userID}
	}

	user, ok := data.Resolved.Users[userID]
	if !ok {
		user = &discordgo.User{ID: userID}
	}

	return data.Resolved.Members[userID], user
}
