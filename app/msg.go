package app

import (
	"log"
	"reflect"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands"
	handler "github.com/camcaswell/sir-robin/util"
)

func processCommand(
	reg *registration,
	m *discordgo.MessageCreate,
	responseChannel chan commands.MessageResponse,
	dbPool *pgxpool.Pool,
) {
	responseChannel <- commands.MessageResponse{
		ChannelID: m.ChannelID,
		Reaction: commands.ReactionResponse{
			MessageID: m.ID,
			Add:       "✅",
		},
	}

	defer func() {
		responseChannel <- commands.MessageResponse{
			ChannelID: m.ChannelID,
			Reaction: commands.ReactionResponse{
				MessageID: m.ID,
				Remove:    "✅",
			},
		}
	}()

	if err := runCommand(reg.command, responseChannel, m, dbPool); err != nil {
		log.Printf("An error occurred processing \"%s\"", m.Content)
		responseChannel <- commands.MessageResponse{
			ChannelID: m.ChannelID,
			Reaction: commands.ReactionResponse{
				MessageID: m.ID,
				Add:       "❗",
			},
		}
		responseChannel <- commands.MessageResponse{
			ChannelID: m.ChannelID,
			Message:   err.Error(),
		}
	}
}

func runCommand(
	command Command,
	responseChannel chan commands.MessageResponse,
	m *discordgo.MessageCreate,
	dbPool *pgxpool.Pool,
) *commands.CommandError {
	switch cmd := command.(type) {
	case SimpleCommand:
		return cmd.ProcessMessage(responseChannel, m)
	case NoArgsCommand:
		responses, err := cmd.ProcessMessage()
		if err != nil {
			return err
		}

		for _, response := range responses {
			responseChannel <- commands.MessageResponse{
				ChannelID: m.ChannelID,
				Message:   response,
			}
		}

		return nil
	case PersistentCommand:
		return cmd.ProcessMessage(responseChannel, m, dbPool)
	default:
		log.Printf("Got %s, an invalid command!"+
			" This is most likely from introducing a new command variant but failing to handle the interface above",
			reflect.TypeOf(command).Name(),
		)

		return commands.NewError("A critical error occurred processing this message!!!")
	}
}

func sendResponses(session *discordgo.Session, responseChannel <-chan commands.MessageResponse) {
	for response := range responseChannel {
		if response.Reaction.Add != "" {
			handler.LogError(session.MessageReactionAdd(
				response.ChannelID, response.Reaction.MessageID, response.Reaction.Add,
			))
		}
		if response.Reaction.Remove != "" {
			handler.LogError(session.MessageReactionRemove(
				response.ChannelID, response.Reaction.MessageID, response.Reaction.Remove, "@me",
			))
		}
		if response.Embed != nil {
			_, err := session.ChannelMessageSendEmbed(response.ChannelID, response.Embed)
			handler.LogError(err)
		}
		if response.Message != "" {
			_, err := session.ChannelMessageSend(response.ChannelID, response.Message)
			handler.LogError(err)
		}
	}
}
