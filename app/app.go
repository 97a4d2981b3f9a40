package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands"
	"github.com/camcaswell/sir-robin/app/commands/recurring"
	"github.com/camcaswell/sir-robin/app/srcindex"
)

const responseBufferSize = 10

// Start a Discord session for a given token
func Start(secret string, config Config) (*discordgo.Session, error) {
	if len(secret) == 0 {
		return nil, errors.New("Not attempting connection, secret seems incorrect")
	}

	dbPool := connectDatabase(config)

	index, err := srcindex.Scan(".")
	if err != nil {
		log.Printf("Failed to index source files, source links will be degraded: %s", err)
		index = &srcindex.Index{}
	}

	bot := makeBot(config, dbPool, index)

	session, err := discordgo.New("Bot " + secret)
	if err != nil {
		log.Println("Unable to create Discord session")
		return nil, err
	}
	log.Println("Successfully created Discord session")

	responseChannel := make(chan commands.MessageResponse, responseBufferSize)
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore own messages and anything without the command prefix
		if m.Author.ID == s.State.User.ID || !strings.HasPrefix(m.Content, config.Prefix) {
			return
		}
		fields := strings.Fields(m.Content)
		name := strings.ToLower(strings.TrimPrefix(fields[0], config.Prefix))
		if reg, ok := bot.commands[name]; ok {
			log.Printf("Preparing to respond to %s", m.Content)
			go processCommand(reg, m, responseChannel, dbPool)
			return
		}
		switch name {
		case "help":
			responseChannel <- commands.MessageResponse{
				ChannelID: m.ChannelID,
				Message:   bot.helpMessage(fields[1:]),
			}
		default:
			log.Printf("Unrecognized command: %s", m.Content)
			responseChannel <- commands.MessageResponse{
				ChannelID: m.ChannelID,
				Message:   fmt.Sprintf("Unrecognized command: `%s`", fields[0]),
			}
		}
	})

	if err := session.Open(); err != nil {
		log.Println("Failed to open WebSocket connection to Discord servers")
		return nil, err
	}
	log.Println("Opened WebSocket connection to Discord")

	go sendResponses(session, responseChannel)

	if dbPool != nil {
		timers := Timers{}
		timers.Start(recurringCommands(), dbPool, session)
	}

	return session, nil
}

func connectDatabase(config Config) *pgxpool.Pool {
	if config.DatabaseURL == "" {
		log.Println("No database configured, persistent commands will not register")
		return nil
	}
	dbPool, err := pgxpool.Connect(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Printf("Failed to connect to the database, persistent commands will not register: %s", err)
		return nil
	}
	return dbPool
}

func recurringCommands() map[recurring.Frequency][]RecurringCommand {
	return map[recurring.Frequency][]RecurringCommand{
		recurring.Minutely: {recurring.RemindCheck{}},
	}
}

// helpMessage lists the cogs and their commands, or one command's full
// help text
func (b *Bot) helpMessage(args []string) string {
	if len(args) != 0 {
		name := strings.ToLower(strings.TrimPrefix(args[0], b.prefix))
		if reg, ok := b.commands[name]; ok {
			return reg.command.Help()
		}
		return fmt.Sprintf("No command called `%s`", name)
	}

	var builder strings.Builder
	builder.WriteString("Available commands:\n")
	for _, cogName := range b.cogNames {
		record := b.cogs[strings.ToLower(cogName)]
		aliases := b.cogAliases(cogName)
		if len(aliases) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("**%s**: %s\n`%s%s`\n",
			cogName,
			strings.SplitN(record.cog.Description(), "\n", 2)[0],
			b.prefix,
			strings.Join(aliases, fmt.Sprintf("`, `%s", b.prefix)),
		))
	}
	builder.WriteString(fmt.Sprintf("\n(For more information ask for `%shelp <command name>`)", b.prefix))
	return builder.String()
}

func (b *Bot) cogAliases(cogName string) []string {
	seen := make(map[string]struct{})
	aliases := make([]string, 0)
	for alias, reg := range b.commands {
		if reg.cogName != cogName {
			continue
		}
		if _, dup := seen[reg.name]; dup {
			continue
		}
		if alias != reg.name {
			continue
		}
		seen[reg.name] = struct{}{}
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
