package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/KirkDiggler/scorepad/internal/scoring/progression"
	tarotScoring "github.com/KirkDiggler/scorepad/internal/scoring/tarot"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/tarot"
	"github.com/KirkDiggler/scorepad/internal/services/yahtzee"
)

// Embed colors
const (
	colorGreen = 0x2ecc71
	colorRed   = 0xe74c3c
	colorBlue  = 0x3498db
	colorGold  = 0xf1c40f
)

var bidLabels = map[models.Bid]string{
	models.BidPrise:       "Prise",
	models.BidGarde:       "Garde",
	models.BidGardeSans:   "Garde sans",
	models.BidGardeContre: "Garde contre",
}

var chelemLabels = map[models.Chelem]string{
	models.ChelemAnnouncedSuccess:    "Announced chelem",
	models.ChelemAnnouncedFail:       "Failed chelem",
	models.ChelemNonAnnouncedSuccess: "Unannounced chelem",
}

var categoryLabels = map[models.YahtzeeCategory]string{
	models.CategoryAces:          "Aces",
	models.CategoryTwos:          "Twos",
	models.CategoryThrees:        "Threes",
	models.CategoryFours:         "Fours",
	models.CategoryFives:         "Fives",
	models.CategorySixes:         "Sixes",
	models.CategoryThreeOfKind:   "Three of a kind",
	models.CategoryFourOfKind:    "Four of a kind",
	models.CategoryFullHouse:     "Full house",
	models.CategorySmallStraight: "Small straight",
	models.CategoryLargeStraight: "Large straight",
	models.CategoryChance:        "Chance",
	models.CategoryYahtzee:       "Yahtzee",
}

// hexColor converts a player's avatar color to an embed color
func hexColor(hex string) int {
	value, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return colorBlue
	}
	return int(value)
}

func seatList(players []*models.Player) string {
	var sb strings.Builder
	for seat, player := range players {
		fmt.Fprintf(&sb, "`%d` %s\n", seat+1, player.Name)
	}
	return sb.String()
}

// renderTarotGameCreated renders the table of a new Tarot game
func renderTarotGameCreated(output *tarot.CreateGameOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Tarot, %d players", output.Game.PlayerCount),
		Description: "Seats are used to record rounds with `/tarot round`.",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Seats",
				Value: seatList(output.Players),
			},
		},
	}
}

// renderRoundResult renders a scored round with what every player got out of it
func renderRoundResult(round *models.TarotRound, result *tarotScoring.RoundResult, deltas map[string]int, players []*models.Player, flavour *messaging.GetRoundResultMessageOutput) *discordgo.MessageEmbed {
	color := colorGreen
	outcome := "made"
	if !result.IsWon {
		color = colorRed
		outcome = "failed"
	}

	details := []string{
		fmt.Sprintf("%s %s with %d bout(s)", bidLabels[round.Bid], outcome, round.Bouts),
		fmt.Sprintf("%d points for %d needed", result.PointsScored, result.PointsNeeded),
		fmt.Sprintf("Contract %+d, bonuses %+d", result.BaseScore, result.Bonus),
	}
	if round.HasPetitAuBout {
		details = append(details, "Petit au bout")
	}
	if round.HasPoignee && round.PoigneeLevel != nil {
		details = append(details, fmt.Sprintf("Poignée %s", *round.PoigneeLevel))
	}
	if label, ok := chelemLabels[round.Chelem]; ok {
		details = append(details, label)
	}

	var sb strings.Builder
	for _, player := range players {
		fmt.Fprintf(&sb, "%s: **%+d**\n", player.Name, deltas[player.ID])
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round %d: %s", round.RoundNumber, flavour.Title),
		Description: flavour.Message,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("Score %+d", result.TotalScore),
				Value: strings.Join(details, "\n"),
			},
			{
				Name:  "Round",
				Value: sb.String(),
			},
		},
	}
}

func rankLines(names []string, totals []int) string {
	var sb strings.Builder
	for i := range names {
		medal := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		fmt.Fprintf(&sb, "%s %s: **%d**\n", medal, names[i], totals[i])
	}
	return sb.String()
}

func tarotRanking(entries []tarot.ScoreboardEntry) string {
	names := make([]string, len(entries))
	totals := make([]int, len(entries))
	for i, entry := range entries {
		names[i] = entry.PlayerName
		totals[i] = entry.Total
	}
	return rankLines(names, totals)
}

// renderScoreboard renders the running totals of a Tarot game
func renderScoreboard(output *tarot.GetScoreboardOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Tarot scores",
		Description: tarotRanking(output.Entries),
		Color:       colorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d round(s) played", len(output.Rounds)),
		},
	}

	if len(output.Entries) > 0 {
		embed.Color = hexColor(output.Entries[0].AvatarColor)
	}

	return embed
}

// renderTakerPerformance renders how each player did when taking
func renderTakerPerformance(output *tarot.GetTakerPerformanceOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Taker statistics",
		Color: colorBlue,
	}

	if len(output.Performance) == 0 {
		embed.Description = fmt.Sprintf("Statistics show up after %d rounds, %d played so far.", progression.MinRoundsForStats, output.RoundCount)
		return embed
	}

	names := make(map[string]string, len(output.Players))
	for _, player := range output.Players {
		names[player.ID] = player.Name
	}

	for _, player := range output.Players {
		perf, ok := output.Performance[player.ID]
		if !ok {
			continue
		}

		lines := []string{
			fmt.Sprintf("Took %d, won %d (%.0f%%)", perf.TakerRounds, perf.Wins, perf.WinRate),
			fmt.Sprintf("Average win %+.1f, average loss %+.1f", perf.AvgWinPoints, perf.AvgLossPoints),
			fmt.Sprintf("Gained %+d, lost %+d", perf.TotalPointsGained, perf.TotalPointsLost),
		}

		bids := make([]string, 0, len(perf.BidOrder))
		for _, bid := range perf.BidOrder {
			bids = append(bids, fmt.Sprintf("%s ×%d", bidLabels[bid], perf.BidDistribution[bid]))
		}
		lines = append(lines, fmt.Sprintf("Prefers %s (%s)", bidLabels[perf.PreferredBid], strings.Join(bids, ", ")))

		for _, partner := range output.Players {
			stats, ok := perf.PartnerStats[partner.ID]
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("With %s: %d/%d (%.0f%%)", names[partner.ID], stats.Wins, stats.GamesPlayed, stats.WinRate))
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  player.Name,
			Value: strings.Join(lines, "\n"),
		})
	}

	return embed
}

// renderTarotGameOver renders the final standings of a Tarot game
func renderTarotGameOver(output *tarot.EndGameOutput, flavour *messaging.GetGameOverMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       flavour.Title,
		Description: flavour.Message,
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Final scores",
				Value: tarotRanking(output.Entries),
			},
		},
	}
}

// renderYahtzeeGameCreated renders the turn order of a new Yahtzee game
func renderYahtzeeGameCreated(output *yahtzee.CreateGameOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Yahtzee",
		Description: "Write scores with `/yahtzee score`.",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Players",
				Value: seatList(output.Players),
			},
		},
	}
}

// renderYahtzeeScore renders a written box and the player's new total
func renderYahtzeeScore(output *yahtzee.RecordScoreOutput, flavour *messaging.GetYahtzeeScoreMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s", output.Player.Name, categoryLabels[output.Score.Category]),
		Description: flavour.Message,
		Color:       hexColor(output.Player.AvatarColor),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Total %d", output.Total),
		},
	}
}

func yahtzeeRanking(entries []yahtzee.TotalEntry) string {
	names := make([]string, len(entries))
	totals := make([]int, len(entries))
	for i, entry := range entries {
		names[i] = fmt.Sprintf("%s (%d/%d)", entry.PlayerName, entry.Filled, len(models.YahtzeeCategories))
		totals[i] = entry.Total
	}
	return rankLines(names, totals)
}

// renderYahtzeeTotals renders the standings of a Yahtzee game in progress
func renderYahtzeeTotals(output *yahtzee.GetGameTotalsOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Yahtzee totals",
		Description: yahtzeeRanking(output.Entries),
		Color:       colorBlue,
	}
}

// renderYahtzeeGameOver renders the final standings of a Yahtzee game
func renderYahtzeeGameOver(output *yahtzee.FinishGameOutput, flavour *messaging.GetGameOverMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       flavour.Title,
		Description: flavour.Message,
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Final scores",
				Value: yahtzeeRanking(output.Entries),
			},
		},
	}
}

// renderPlayerStatistics renders a player's Yahtzee history
func renderPlayerStatistics(output *yahtzee.GetPlayerStatisticsOutput) *discordgo.MessageEmbed {
	stats := output.Statistics

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Yahtzee statistics for %s", stats.PlayerName),
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Games",
				Value:  fmt.Sprintf("%d played, %d finished", stats.TotalGames, stats.FinishedGames),
				Inline: true,
			},
			{
				Name:   "Wins",
				Value:  fmt.Sprintf("%d (%.0f%%)", stats.Wins, stats.WinRate),
				Inline: true,
			},
			{
				Name:   "Scores",
				Value:  fmt.Sprintf("Average %.1f, best %d", stats.AverageScore, stats.HighScore),
				Inline: true,
			},
			{
				Name:   "Yahtzees",
				Value:  strconv.Itoa(output.YahtzeeCount),
				Inline: true,
			},
			{
				Name:   "Upper bonus",
				Value:  fmt.Sprintf("%.0f%% of finished games", output.UpperBonusRate),
				Inline: true,
			},
			{
				Name:   "Section averages",
				Value:  fmt.Sprintf("Upper %.1f, lower %.1f", output.UpperSectionAverage, output.LowerSectionAverage),
				Inline: true,
			},
		},
	}

	var sb strings.Builder
	for _, category := range models.YahtzeeCategories {
		stat, ok := output.CategoryStats[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: avg %.1f, best %d, zeroed %.0f%%\n", categoryLabels[category], stat.Average, stat.Best, stat.ZeroRate)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Categories",
		Value: sb.String(),
	})

	return embed
}
