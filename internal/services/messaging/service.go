package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/scorepad/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages.
	// Guarded by mu, handlers run on their own goroutines.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRoundResultMessage returns a message for a scored Tarot round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var titles, messages []string

	switch {
	case input.Chelem == models.ChelemAnnouncedSuccess:
		titles = []string{
			"CHELEM!",
			"Grand Slam!",
			"Every single trick!",
		}
		messages = []string{
			fmt.Sprintf("%s announced the chelem and took every trick. Legendary.", input.TakerName),
			fmt.Sprintf("Nobody else even touched a card. %s called it and did it!", input.TakerName),
			fmt.Sprintf("%s said it out loud and then actually pulled it off. Frame this one.", input.TakerName),
		}

	case input.Chelem == models.ChelemNonAnnouncedSuccess:
		titles = []string{
			"Surprise chelem!",
			"Oops, all tricks",
		}
		messages = []string{
			fmt.Sprintf("%s took every trick without even announcing it. Show-off.", input.TakerName),
			fmt.Sprintf("Didn't call it, didn't need to. %s swept the table.", input.TakerName),
		}

	case input.Chelem == models.ChelemAnnouncedFail:
		titles = []string{
			"Chelem... almost",
			"Too ambitious",
		}
		messages = []string{
			fmt.Sprintf("%s announced a chelem and the table had other plans.", input.TakerName),
			fmt.Sprintf("Bold call from %s. It did not age well.", input.TakerName),
		}

	case input.IsWon:
		titles = []string{
			"Contract made!",
			"Well played!",
			fmt.Sprintf("%s delivers", input.TakerName),
		}
		messages = []string{
			fmt.Sprintf("%s made the %s for %d.", input.TakerName, bidName(input.Bid), input.Score),
			fmt.Sprintf("The %s holds! %s scores %d.", bidName(input.Bid), input.TakerName, input.Score),
			fmt.Sprintf("%s read the cards right. %d on the round.", input.TakerName, input.Score),
			fmt.Sprintf("Defenders, take notes. %s takes the %s for %d.", input.TakerName, bidName(input.Bid), input.Score),
		}

	default:
		titles = []string{
			"Chuté!",
			"Contract down",
			"Ouch.",
		}
		messages = []string{
			fmt.Sprintf("%s went down on the %s. %d on the round.", input.TakerName, bidName(input.Bid), input.Score),
			fmt.Sprintf("The defence holds! %s falls short for %d.", input.TakerName, input.Score),
			fmt.Sprintf("%s should maybe have passed. %d.", input.TakerName, input.Score),
			fmt.Sprintf("That %s was a little optimistic, %s.", bidName(input.Bid), input.TakerName),
		}
	}

	return &GetRoundResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetGameOverMessage returns a message announcing the winner of a game
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.WinnerName == "" {
		return &GetGameOverMessageOutput{
			Title:   "Game over",
			Message: "The sheet is closed. Nobody scored, so nobody wins.",
		}, nil
	}

	var titles, messages []string

	switch input.GameType {
	case GameTypeYahtzee:
		titles = []string{
			"Yahtzee champion!",
			"Dice master",
			"Game over!",
		}
		messages = []string{
			fmt.Sprintf("%s wins with %d points!", input.WinnerName, input.Score),
			fmt.Sprintf("The dice loved %s tonight. %d points.", input.WinnerName, input.Score),
			fmt.Sprintf("%d points and bragging rights for %s.", input.Score, input.WinnerName),
		}
	default:
		titles = []string{
			"Game over!",
			"The sheet is closed",
			"And the winner is...",
		}
		messages = []string{
			fmt.Sprintf("%s finishes on top with %d.", input.WinnerName, input.Score),
			fmt.Sprintf("%s takes the night with %d points.", input.WinnerName, input.Score),
			fmt.Sprintf("Bow down to %s. %d points and the best seat at the next game.", input.WinnerName, input.Score),
		}
	}

	return &GetGameOverMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetYahtzeeScoreMessage returns a comment for a written Yahtzee box
func (s *service) GetYahtzeeScoreMessage(ctx context.Context, input *GetYahtzeeScoreMessageInput) (*GetYahtzeeScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	switch {
	case input.Category == models.CategoryYahtzee && input.Score >= 50:
		messages = []string{
			fmt.Sprintf("Yahtzee! %s rolled five of a kind!", input.PlayerName),
			fmt.Sprintf("Five dice, one face. %s gets the Yahtzee!", input.PlayerName),
		}
	case input.Score == 0:
		messages = []string{
			fmt.Sprintf("%s scratches %s. It happens.", input.PlayerName, input.Category),
			fmt.Sprintf("A zero in %s for %s. We'll pretend we didn't see that.", input.Category, input.PlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s writes %d in %s.", input.PlayerName, input.Score, input.Category),
			fmt.Sprintf("%d in %s for %s.", input.Score, input.Category, input.PlayerName),
		}
	}

	return &GetYahtzeeScoreMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

func bidName(bid models.Bid) string {
	switch bid {
	case models.BidPrise:
		return "prise"
	case models.BidGarde:
		return "garde"
	case models.BidGardeSans:
		return "garde sans"
	case models.BidGardeContre:
		return "garde contre"
	default:
		return string(bid)
	}
}
