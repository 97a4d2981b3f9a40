package simple

import (
	"math/rand"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/camcaswell/sir-robin/app/commands"
)

// Choose is a command to randomly select a choice from a set of (space delimited) options
type Choose struct{}

// Check returns nil since this requires nothing
func (c Choose) Check() error {
	return nil
}

// ProcessMessage picks one of the provided options at random, or returns an error if none are provided
func (c Choose) ProcessMessage(
	msgResponse chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
) *commands.CommandError {
	options := splitArgs(m.Content)
	if len(options) == 0 {
		return commands.NewError("Choices, choices." +
			" Do I choose the nothing you provided, or the nothing I'm going to provide in return?" +
			" _Hint_: Give me something to pick smarty pants")
	}
	msgResponse <- commands.MessageResponse{
		ChannelID: m.ChannelID,
		Message:   options[rand.Intn(len(options))],
	}
	return nil
}

// CommandList returns the aliases for the Choose Command
func (c Choose) CommandList() []string {
	return []string{"choose"}
}

// Help returns the help message for the Choose Command
func (c Choose) Help() string {
	return "Provides a random choice from one or more options"
}

// splitArgs drops the invoking alias and returns the remaining fields
func splitArgs(content string) []string {
	fields := strings.Fields(content)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
