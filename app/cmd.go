package app

import (
	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands"
	"github.com/camcaswell/sir-robin/app/commands/recurring"
)

// Command is an interface that must be implemented for commands
type Command interface {
	// CommandList returns all aliases for the given command (must return at least one)
	CommandList() []string
	// Help returns the help message for the command (the first line is its short description)
	Help() string
}

// SimpleCommand is a command that responds to a message with no other context
type SimpleCommand interface {
	// Check asserts all preconditions are met, and returns an error if they are not
	Check() error
	// ProcessMessage processes the triggering message, sending responses on the channel
	ProcessMessage(chan<- commands.MessageResponse, *discordgo.MessageCreate) *commands.CommandError
}

// NoArgsCommand will always go through the same flow to respond, irrespective of arguments
type NoArgsCommand interface {
	// Check asserts all preconditions are met, and returns an error if they are not
	Check() error
	// ProcessMessage produces the responses for the command
	ProcessMessage() ([]string, *commands.CommandError)
}

// PersistentCommand is a command that will persist some data into a database
type PersistentCommand interface {
	// Check asserts all preconditions are met, and returns an error if they are not
	Check(*pgxpool.Pool) error
	// ProcessMessage processes the triggering message with access to the database
	ProcessMessage(chan<- commands.MessageResponse, *discordgo.MessageCreate, *pgxpool.Pool) *commands.CommandError
}

// RecurringCommand runs on a timer instead of a triggering message
type RecurringCommand interface {
	// Check returns pending messages mapped by the channel ID to deliver them to
	Check(*pgxpool.Pool) map[string][]string
	// Frequency reports how often Check should run
	Frequency() recurring.Frequency
}

// WrappedCommand is a command layered over another command.
// Source resolution follows Unwrap to the innermost command
type WrappedCommand interface {
	Command
	// Unwrap returns the wrapped command
	Unwrap() Command
}

// Cog is a named grouping of related commands
type Cog interface {
	// Name identifies the cog (case-insensitive for lookup)
	Name() string
	// Description describes the cog (may span multiple lines; summaries use the first)
	Description() string
	// Commands returns the commands the cog registers
	Commands() []Command
}
