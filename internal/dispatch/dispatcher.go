// Package dispatch routes inbound free-text messages to whichever
// game or service claims them, and turns every service error into
// user-facing text. Nothing past this package sees an error tag.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xxreen/MAID-BOT-24H/internal/notify"
	"github.com/xxreen/MAID-BOT-24H/internal/personas"
	"github.com/xxreen/MAID-BOT-24H/internal/services/chat"
	"github.com/xxreen/MAID-BOT-24H/internal/services/messaging"
	"github.com/xxreen/MAID-BOT-24H/internal/services/profile"
	"github.com/xxreen/MAID-BOT-24H/internal/services/quiz"
	"github.com/xxreen/MAID-BOT-24H/internal/services/shiritori"
)

// genericErrorReply covers errors outside the named taxonomies
const genericErrorReply = "Something went wrong. Please try again."

// Shiritori presentation, owned here because the game service only
// reports outcomes
const (
	shiritoriStartReply      = "Shiritori it is. You go first; any word not ending in ん."
	shiritoriStopReply       = "The shiritori game is over. No winner today."
	shiritoriContinueReply   = "%s! Your turn."
	shiritoriPlayerLostReply = "Your word ends in ん. You lose!"
	shiritoriBotStuckReply   = "I have nothing... you win this one."
	shiritoriBotLostReply    = "%s... it ends in ん. You win this one."
)

// Dispatcher owns message routing between the quiz, the shiritori
// game and the conversational engine
type Dispatcher struct {
	allowedChannelID string

	chat      chat.Service
	quiz      quiz.Service
	shiritori shiritori.Service
	profile   profile.Service
	messaging messaging.Service
	notifier  notify.Notifier
	logger    zerolog.Logger
}

// New creates a new dispatcher
func New(cfg *Config) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Chat == nil {
		return nil, errors.New("chat service cannot be nil")
	}

	if cfg.Quiz == nil {
		return nil, errors.New("quiz service cannot be nil")
	}

	if cfg.Shiritori == nil {
		return nil, errors.New("shiritori service cannot be nil")
	}

	if cfg.Profile == nil {
		return nil, errors.New("profile service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	return &Dispatcher{
		allowedChannelID: cfg.AllowedChannelID,
		chat:             cfg.Chat,
		quiz:             cfg.Quiz,
		shiritori:        cfg.Shiritori,
		profile:          cfg.Profile,
		messaging:        cfg.Messaging,
		notifier:         cfg.Notifier,
		logger:           log.With().Str("component", "dispatch").Logger(),
	}, nil
}

// OnMessage routes one inbound free-text message. An active quiz
// round claims messages in its channel from users who have not
// answered yet; an active shiritori game claims messages from the
// turn user in its channel; everything else goes to the
// conversational engine. Direct messages always converse.
func (d *Dispatcher) OnMessage(ctx context.Context, event *Event) {
	if event == nil {
		return
	}

	text := strings.TrimSpace(event.Text)
	if text == "" {
		return
	}

	if d.allowedChannelID != "" && !event.IsDirectMessage && event.ChannelID != d.allowedChannelID {
		return
	}

	if !event.IsDirectMessage {
		if d.claimForQuiz(ctx, event, text) {
			return
		}

		if d.claimForShiritori(ctx, event, text) {
			return
		}
	}

	d.converse(ctx, event, text)
}

// claimForQuiz submits the message as a quiz answer when the active
// round wants it. Returns false when the round has no claim and the
// message should keep flowing.
func (d *Dispatcher) claimForQuiz(ctx context.Context, event *Event, text string) bool {
	status, err := d.quiz.Status(ctx, &quiz.StatusInput{UserID: event.SenderID})
	if err != nil {
		d.logger.Error().Err(err).Msg("quiz status check failed")
		return false
	}

	if !status.Active || status.ChannelID != event.ChannelID || status.UserAnswered {
		return false
	}

	d.logger.Debug().Str("user_id", event.SenderID).Msg("quiz claimed message")

	_, err = d.quiz.SubmitAnswer(ctx, &quiz.SubmitAnswerInput{
		UserID:   event.SenderID,
		UserName: event.SenderName,
		Text:     text,
	})
	if err != nil {
		// The round may have closed between the claim check and the
		// submission; there is nothing useful to tell the sender
		d.logger.Debug().Err(err).Str("user_id", event.SenderID).Msg("answer not recorded")
	}

	return true
}

// claimForShiritori plays the message as the next word when the
// active game is waiting on this sender.
func (d *Dispatcher) claimForShiritori(ctx context.Context, event *Event, text string) bool {
	status, err := d.shiritori.Status(ctx, &shiritori.StatusInput{})
	if err != nil {
		d.logger.Error().Err(err).Msg("shiritori status check failed")
		return false
	}

	if !status.Active || status.ChannelID != event.ChannelID || status.TurnUserID != event.SenderID {
		return false
	}

	d.logger.Debug().Str("user_id", event.SenderID).Msg("shiritori claimed message")

	out, err := d.shiritori.Play(ctx, &shiritori.PlayInput{
		UserID: event.SenderID,
		Word:   text,
	})
	if err != nil {
		d.deliver(ctx, event.ChannelID, d.renderError(err))
		return true
	}

	switch out.Outcome {
	case shiritori.OutcomePlayerLost:
		d.deliver(ctx, event.ChannelID, shiritoriPlayerLostReply)
	case shiritori.OutcomePlayerWon:
		if out.BotWord == "" {
			d.deliver(ctx, event.ChannelID, shiritoriBotStuckReply)
		} else {
			d.deliver(ctx, event.ChannelID, fmt.Sprintf(shiritoriBotLostReply, out.BotWord))
		}
	default:
		d.deliver(ctx, event.ChannelID, fmt.Sprintf(shiritoriContinueReply, out.BotWord))
	}

	return true
}

// converse hands the message to the conversational engine and
// delivers whatever comes back
func (d *Dispatcher) converse(ctx context.Context, event *Event, text string) {
	out, err := d.chat.Respond(ctx, &chat.RespondInput{
		UserID:      event.SenderID,
		DisplayName: event.SenderName,
		Message:     text,
	})
	if err != nil {
		if errors.Is(err, chat.ErrRateLimited) {
			msg, mErr := d.messaging.GetCooldownMessage(ctx, &messaging.GetCooldownMessageInput{
				UserName: event.SenderName,
			})
			if mErr != nil {
				d.logger.Error().Err(mErr).Msg("failed to build cooldown message")
				return
			}
			d.deliver(ctx, event.ChannelID, msg.Message)
			return
		}

		d.logger.Error().Err(err).Str("user_id", event.SenderID).Msg("conversation failed")
		return
	}

	d.deliver(ctx, event.ChannelID, out.Reply)
}

// OnAskRequest runs one conversational turn and returns the reply
// text, including the cooldown message for rate-limited users
func (d *Dispatcher) OnAskRequest(ctx context.Context, req *AskRequest) string {
	if req == nil {
		return genericErrorReply
	}

	out, err := d.chat.Respond(ctx, &chat.RespondInput{
		UserID:      req.UserID,
		DisplayName: req.UserName,
		Message:     req.Text,
	})
	if err != nil {
		if errors.Is(err, chat.ErrRateLimited) {
			msg, mErr := d.messaging.GetCooldownMessage(ctx, &messaging.GetCooldownMessageInput{
				UserName: req.UserName,
			})
			if mErr != nil {
				d.logger.Error().Err(mErr).Msg("failed to build cooldown message")
				return genericErrorReply
			}
			return msg.Message
		}

		return d.renderError(err)
	}

	return out.Reply
}

// OnAnswerRequest submits a quiz answer and returns the text to show
// the answering user. The channel announcement comes from the quiz
// service itself.
func (d *Dispatcher) OnAnswerRequest(ctx context.Context, req *AnswerRequest) string {
	if req == nil {
		return genericErrorReply
	}

	out, err := d.quiz.SubmitAnswer(ctx, &quiz.SubmitAnswerInput{
		UserID:   req.UserID,
		UserName: req.UserName,
		Text:     req.Text,
	})
	if err != nil {
		return d.renderError(err)
	}

	if out.Correct {
		return "Correct. I suppose that deserves a point."
	}
	return "Recorded, but no. Better luck next round."
}

// OnQuizStartRequest starts a quiz round and returns the text to show
// the requesting user
func (d *Dispatcher) OnQuizStartRequest(ctx context.Context, req *QuizStartRequest) string {
	if req == nil {
		return genericErrorReply
	}

	_, err := d.quiz.Start(ctx, &quiz.StartInput{
		Genre:      req.Genre,
		Difficulty: req.Difficulty,
		ChannelID:  req.ChannelID,
		AskerID:    req.UserID,
		AskerName:  req.UserName,
	})
	if err != nil {
		return d.renderError(err)
	}

	return "The round is on. Answers go right here in the channel."
}

// OnModeChangeRequest switches the user's persona mode and returns
// the text to show them
func (d *Dispatcher) OnModeChangeRequest(ctx context.Context, req *ModeChangeRequest) string {
	if req == nil {
		return genericErrorReply
	}

	out, err := d.chat.SetMode(ctx, &chat.SetModeInput{
		UserID: req.UserID,
		Mode:   personas.Mode(req.Mode),
	})
	if err != nil {
		return d.renderError(err)
	}

	return fmt.Sprintf("As you wish. I'll be %s from now on.", out.Mode)
}

// OnHintRequest returns the active round's hint as user-facing text
func (d *Dispatcher) OnHintRequest(ctx context.Context) string {
	out, err := d.quiz.Hint(ctx, &quiz.HintInput{})
	if err != nil {
		return d.renderError(err)
	}

	return fmt.Sprintf("A hint, since you asked so nicely: %s", out.Hint)
}

// OnQuizStopRequest abandons the active round and returns the text to
// show the requesting user
func (d *Dispatcher) OnQuizStopRequest(ctx context.Context, requestedBy string) string {
	out, err := d.quiz.ForceStop(ctx, &quiz.ForceStopInput{RequestedBy: requestedBy})
	if err != nil {
		return d.renderError(err)
	}

	return fmt.Sprintf("Fine, the round is over. The answer was %s.", out.CanonicalAnswer)
}

// OnTitleRequest returns the user's earned titles as user-facing text
func (d *Dispatcher) OnTitleRequest(ctx context.Context, userID string) string {
	out, err := d.profile.GetTitles(ctx, &profile.GetTitlesInput{UserID: userID})
	if err != nil {
		d.logger.Error().Err(err).Str("user_id", userID).Msg("title lookup failed")
		return genericErrorReply
	}

	return fmt.Sprintf("Your titles: %s", strings.Join(out.Titles, ", "))
}

// OnFortuneRequest draws a lucky item and returns the fortune text
func (d *Dispatcher) OnFortuneRequest(ctx context.Context, userName string) string {
	out, err := d.messaging.GetFortuneMessage(ctx, &messaging.GetFortuneMessageInput{
		UserName: userName,
	})
	if err != nil {
		d.logger.Error().Err(err).Msg("fortune draw failed")
		return genericErrorReply
	}

	return out.Message
}

// OnShiritoriStartRequest starts a word-chain game and returns the
// text to show the requesting user
func (d *Dispatcher) OnShiritoriStartRequest(ctx context.Context, channelID, userID string) string {
	_, err := d.shiritori.Start(ctx, &shiritori.StartInput{
		ChannelID: channelID,
		UserID:    userID,
	})
	if err != nil {
		return d.renderError(err)
	}

	return shiritoriStartReply
}

// OnShiritoriStopRequest ends the word-chain game and returns the
// text to show the requesting user
func (d *Dispatcher) OnShiritoriStopRequest(ctx context.Context) string {
	_, err := d.shiritori.Stop(ctx, &shiritori.StopInput{})
	if err != nil {
		return d.renderError(err)
	}

	return shiritoriStopReply
}

// renderError maps the named service errors, whose messages are
// written for users, onto reply text
func (d *Dispatcher) renderError(err error) string {
	var chatErr chat.ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Error()
	}

	var quizErr quiz.QuizError
	if errors.As(err, &quizErr) {
		return quizErr.Error()
	}

	var shiritoriErr shiritori.ShiritoriError
	if errors.As(err, &shiritoriErr) {
		return shiritoriErr.Error()
	}

	d.logger.Error().Err(err).Msg("unrenderable error")
	return genericErrorReply
}

// deliver sends text to a channel, logging delivery failures
func (d *Dispatcher) deliver(ctx context.Context, channelID, text string) {
	if text == "" {
		return
	}

	if err := d.notifier.Send(ctx, channelID, text); err != nil {
		d.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to deliver reply")
	}
}
