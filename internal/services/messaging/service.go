package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/xxreen/MAID-BOT-24H/internal/random"
)

// FallbackReply is the fixed reply used whenever the generation service
// fails. It must stay stable so the front end can rely on it.
const FallbackReply = "Forgive me, my head is spinning. Ask me again in a moment."

// cooldownReply is the fixed "please wait" message for rate-limited users
const cooldownReply = "One question at a time, if you please. Give me a few seconds."

// fortuneItems are the lucky items the fortune draw picks from
var fortuneItems = []string{
	"a four-leaf clover",
	"a fountain pen",
	"a stuffed cat",
	"a cup of coffee",
	"a star-shaped accessory",
	"a silver teaspoon",
	"a pressed flower bookmark",
}

// service implements the Service interface
type service struct {
	picker random.Picker
}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}

	return &service{
		picker: cfg.Picker,
	}, nil
}

// GetQuizStartMessage returns the broadcast for a freshly started round
func (s *service) GetQuizStartMessage(ctx context.Context, input *GetQuizStartMessageInput) (*GetQuizStartMessageOutput, error) {
	openers := []string{
		"Quiz time! %s has requested a question.",
		"Gather round, %s wants a quiz.",
		"A challenge from %s! Listen carefully.",
	}

	opener := fmt.Sprintf(openers[s.picker.Intn(len(openers))], input.AskerName)

	return &GetQuizStartMessageOutput{
		Message: fmt.Sprintf("%s\nQuestion: %s\n(One answer per person. Ask for a hint if you are stuck.)", opener, input.Question),
	}, nil
}

// GetQuizResultMessage returns the channel announcement for an answer
func (s *service) GetQuizResultMessage(ctx context.Context, input *GetQuizResultMessageInput) (*GetQuizResultMessageOutput, error) {
	if input.Correct {
		announcements := []string{
			"%s got it right! Well done.",
			"A correct answer from %s. I'm almost impressed.",
			"%s knows their stuff. Correct!",
		}
		acks := []string{
			"Correct! Your title collection grows.",
			"Right answer. Don't let it go to your head.",
		}

		return &GetQuizResultMessageOutput{
			Announcement:   fmt.Sprintf(announcements[s.picker.Intn(len(announcements))], input.UserName),
			Acknowledgment: acks[s.picker.Intn(len(acks))],
		}, nil
	}

	announcements := []string{
		"%s answered... incorrectly. The answer was \"%s\".",
		"Not quite, %s. It was \"%s\".",
	}

	return &GetQuizResultMessageOutput{
		Announcement:   fmt.Sprintf(announcements[s.picker.Intn(len(announcements))], input.UserName, input.CanonicalAnswer),
		Acknowledgment: "Wrong, I'm afraid. You only get one try per round.",
	}, nil
}

// GetRoundClosedMessage returns the round-closing announcement
func (s *service) GetRoundClosedMessage(ctx context.Context, input *GetRoundClosedMessageInput) (*GetRoundClosedMessageOutput, error) {
	if input.Forced {
		return &GetRoundClosedMessageOutput{
			Message: fmt.Sprintf("The quiz has been called off. The answer was \"%s\".", input.CanonicalAnswer),
		}, nil
	}

	return &GetRoundClosedMessageOutput{
		Message: fmt.Sprintf("That's the round! %d answers received. The answer was \"%s\".", input.AnswerCount, input.CanonicalAnswer),
	}, nil
}

// GetCooldownMessage returns the "please wait" message for rate-limited users
func (s *service) GetCooldownMessage(ctx context.Context, input *GetCooldownMessageInput) (*GetCooldownMessageOutput, error) {
	return &GetCooldownMessageOutput{
		Message: cooldownReply,
	}, nil
}

// GetFallbackMessage returns the fixed reply used when generation fails
func (s *service) GetFallbackMessage(ctx context.Context, input *GetFallbackMessageInput) (*GetFallbackMessageOutput, error) {
	return &GetFallbackMessageOutput{
		Message: FallbackReply,
	}, nil
}

// GetFortuneMessage draws a lucky item for the day
func (s *service) GetFortuneMessage(ctx context.Context, input *GetFortuneMessageInput) (*GetFortuneMessageOutput, error) {
	item := fortuneItems[s.picker.Intn(len(fortuneItems))]

	return &GetFortuneMessageOutput{
		Item:    item,
		Message: fmt.Sprintf("Today's lucky item for %s is %s.", input.UserName, item),
	}, nil
}
