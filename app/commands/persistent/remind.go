package persistent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands"
)

const remindTableDefinition string = "CREATE TABLE IF NOT EXISTS " +
	"Reminders (ID SERIAL PRIMARY KEY, Channel TEXT NOT NULL, Due TIMESTAMPTZ NOT NULL, Content TEXT NOT NULL)"
const remindInsert string = "INSERT INTO Reminders(Channel, Due, Content) VALUES ($1, $2, $3) RETURNING ID"
const remindList string = "SELECT ID, Due, Content FROM Reminders WHERE Channel = $1 ORDER BY Due"

// RemindDue selects every reminder that has come due
const RemindDue string = "SELECT ID, Channel, Content FROM Reminders WHERE Due <= now() ORDER BY Due"

// RemindDelete removes delivered reminders by ID
const RemindDelete string = "DELETE FROM Reminders WHERE ID = ANY($1)"

// Remind is a Command to store a reminder and have it delivered back to
// the channel once it comes due
type Remind struct{}

// Check will assert that the Reminders table exists
func (r Remind) Check(dbPool *pgxpool.Pool) error {
	tag, err := dbPool.Exec(context.Background(), remindTableDefinition)
	if err != nil {
		return err
	}

	log.Printf("Reminders: %s", tag)

	return nil
}

// ProcessMessage stores a new reminder, or lists the pending ones for the channel
func (r Remind) ProcessMessage(
	response chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
	dbPool *pgxpool.Pool,
) *commands.CommandError {
	var commandError *commands.CommandError

	splitContent := strings.Fields(m.Content)
	if len(splitContent) < 2 {
		return commands.NewError("`remind` requires arguments")
	}

	if splitContent[1] == "list" {
		return listReminders(dbPool, response, m.ChannelID)
	}

	delay, content, commandError := parseReminder(splitContent[1:])
	if commandError != nil {
		return commandError
	}

	due := time.Now().Add(delay)

	var id int64
	err := dbPool.QueryRow(context.Background(), remindInsert, m.ChannelID, due, content).Scan(&id)
	if commandError = commands.CreateCommandError(
		"Failed to store the reminder",
		err,
	); commandError != nil {
		return commandError
	}

	log.Printf("Remind: stored %d for %s", id, m.ChannelID)
	response <- commands.MessageResponse{
		ChannelID: m.ChannelID,
		Message:   fmt.Sprintf("Got it! I'll remind you at %s (#%d)", due.UTC().Format(time.RFC1123), id),
	}

	return nil
}

// Help returns the help message for the Remind Command
func (r Remind) Help() string {
	return "Stores a reminder to be delivered back to this channel\n" +
		"`remind <duration> <text>` schedules a reminder, e.g. `remind 45m check the oven`\n" +
		"`remind list` lists this channel's pending reminders\n" +
		"\n_Delivery runs once a minute, so reminders can be up to a minute late_"
}

// CommandList returns a list of aliases for the Remind Command
func (r Remind) CommandList() []string {
	return []string{"remind"}
}

// parseReminder splits the arguments into a delay and the reminder text
func parseReminder(args []string) (time.Duration, string, *commands.CommandError) {
	delay, err := time.ParseDuration(args[0])
	if err != nil {
		return 0, "", commands.NewError(
			fmt.Sprintf("`%s` is not a duration I understand (try something like `90s`, `45m` or `12h`)", args[0]),
		)
	}
	if delay <= 0 {
		return 0, "", commands.NewError("I can't remind you about the past, that's what regrets are for")
	}
	content := strings.Join(args[1:], " ")
	if content == "" {
		return 0, "", commands.NewError("You need to tell me what to remind you about")
	}
	return delay, content, nil
}

func listReminders(
	dbPool *pgxpool.Pool,
	response chan<- commands.MessageResponse,
	channelID string,
) *commands.CommandError {
	var commandError *commands.CommandError

	rows, err := dbPool.Query(context.Background(), remindList, channelID)
	if commandError = commands.CreateCommandError(
		"Couldn't read the reminders from the database!",
		err,
	); commandError != nil {
		return commandError
	}

	havePending := false

	for rows.Next() {
		var id int64

		var due time.Time

		var content string
		if commandError = commands.CreateCommandError(
			"An error occurred reading a certain reminder. Aborting",
			rows.Scan(&id, &due, &content),
		); commandError != nil {
			return commandError
		}

		havePending = true
		response <- commands.MessageResponse{
			ChannelID: channelID,
			Message:   fmt.Sprintf("#%d at %s: %s", id, due.UTC().Format(time.RFC1123), content),
		}
	}

	if commandError = commands.CreateCommandError(
		"An error occurred fetching the reminders",
		rows.Err(),
	); commandError != nil {
		return commandError
	}

	if !havePending {
		response <- commands.MessageResponse{
			ChannelID: channelID,
			Message:   "No reminders are currently pending for this channel",
		}
	}

	return nil
}
