package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/xxreen/MAID-BOT-24H/internal/catalog"
	"github.com/xxreen/MAID-BOT-24H/internal/dispatch"
	"github.com/xxreen/MAID-BOT-24H/internal/personas"
)

// MaidCommand handles the /maid command
type MaidCommand struct {
	BaseCommand
	dispatcher *dispatch.Dispatcher
}

// NewMaidCommand creates a new maid command handler
func NewMaidCommand(dispatcher *dispatch.Dispatcher) *MaidCommand {
	genreChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Anime", Value: catalog.GenreAnime},
		{Name: "Games", Value: catalog.GenreGames},
	}

	difficultyChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Easy", Value: catalog.DifficultyEasy},
		{Name: "Medium", Value: catalog.DifficultyMedium},
		{Name: "Hard", Value: catalog.DifficultyHard},
	}

	modeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(personas.Modes()))
	for _, mode := range personas.Modes() {
		modeChoices = append(modeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(mode),
			Value: string(mode),
		})
	}

	return &MaidCommand{
		BaseCommand: BaseCommand{
			Name:        "maid",
			Description: "Talk to the maid and play her games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ask",
					Description: "Ask the maid a question",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "question",
							Description: "What you want to ask",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "quiz",
					Description: "Start a quiz round in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "genre",
							Description: "Question genre",
							Required:    true,
							Choices:     genreChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "difficulty",
							Description: "Question difficulty",
							Required:    true,
							Choices:     difficultyChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "answer",
					Description: "Answer the active quiz question",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "guess",
							Description: "Your answer",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hint",
					Description: "Get a hint for the active quiz question",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stopquiz",
					Description: "Abandon the active quiz round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mode",
					Description: "Choose how the maid talks to you",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "persona",
							Description: "Persona mode",
							Required:    true,
							Choices:     modeChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "title",
					Description: "Show the titles you have earned",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "fortune",
					Description: "Draw today's lucky item",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shiritori",
					Description: "Start a shiritori game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stopshiritori",
					Description: "End the shiritori game",
				},
			},
		},
		dispatcher: dispatcher,
	}
}

// Handle processes a Discord interaction for the maid command
func (c *MaidCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID
	userID, username := interactionUser(i)
	if userID == "" {
		return errors.New("interaction carries no user")
	}

	ctx := context.Background()
	sub := data.Options[0]

	var err error
	switch sub.Name {
	case "ask":
		reply := c.dispatcher.OnAskRequest(ctx, &dispatch.AskRequest{
			UserID:   userID,
			UserName: username,
			Text:     optionString(sub, "question"),
		})
		err = RespondWithMessage(s, i, reply)
	case "quiz":
		reply := c.dispatcher.OnQuizStartRequest(ctx, &dispatch.QuizStartRequest{
			Genre:      optionString(sub, "genre"),
			Difficulty: optionString(sub, "difficulty"),
			ChannelID:  channelID,
			UserID:     userID,
			UserName:   username,
		})
		err = RespondWithEphemeralMessage(s, i, reply)
	case "answer":
		reply := c.dispatcher.OnAnswerRequest(ctx, &dispatch.AnswerRequest{
			UserID:   userID,
			UserName: username,
			Text:     optionString(sub, "guess"),
		})
		err = RespondWithEphemeralMessage(s, i, reply)
	case "hint":
		err = RespondWithMessage(s, i, c.dispatcher.OnHintRequest(ctx))
	case "stopquiz":
		err = RespondWithMessage(s, i, c.dispatcher.OnQuizStopRequest(ctx, userID))
	case "mode":
		reply := c.dispatcher.OnModeChangeRequest(ctx, &dispatch.ModeChangeRequest{
			UserID: userID,
			Mode:   optionString(sub, "persona"),
		})
		err = RespondWithEphemeralMessage(s, i, reply)
	case "title":
		err = RespondWithEmbed(s, i, "Titles", c.dispatcher.OnTitleRequest(ctx, userID), nil)
	case "fortune":
		err = RespondWithMessage(s, i, c.dispatcher.OnFortuneRequest(ctx, username))
	case "shiritori":
		err = RespondWithMessage(s, i, c.dispatcher.OnShiritoriStartRequest(ctx, channelID, userID))
	case "stopshiritori":
		err = RespondWithMessage(s, i, c.dispatcher.OnShiritoriStopRequest(ctx))
	default:
		err = RespondWithError(s, i, "Unknown subcommand: "+sub.Name)
	}

	return err
}

// interactionUser extracts the acting user from a guild or DM
// interaction, preferring the guild nickname as the display name
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		username := i.Member.User.Username
		if i.Member.Nick != "" {
			username = i.Member.Nick
		}
		return i.Member.User.ID, username
	}

	if i.User != nil {
		return i.User.ID, i.User.Username
	}

	return "", ""
}

// optionString returns the named string option of a subcommand, empty
// when absent
func optionString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}
