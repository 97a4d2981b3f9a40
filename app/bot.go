package app

import (
	"errors"
	"fmt"
	"log"
	"path"
	"reflect"
	"sort"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/srcindex"
)

// Bot contains the command registry, the cogs that populated it, and the
// source index used to link commands and cogs back to the repository
type Bot struct {
	commands map[string]*registration
	cogs     map[string]*cogRecord
	cogNames []string
	index    *srcindex.Index
	repoURL  string
	prefix   string
}

// registration is one registered command, shared by all of its aliases.
// pkg/typ name the innermost implementing type for source resolution
type registration struct {
	command Command
	cogName string
	name    string
	pkg     string
	typ     string
}

type cogRecord struct {
	cog Cog
	pkg string
	typ string
}

func makeBot(config Config, dbPool *pgxpool.Pool, index *srcindex.Index) *Bot {
	bot := &Bot{
		commands: make(map[string]*registration),
		cogs:     make(map[string]*cogRecord),
		index:    index,
		repoURL:  config.RepoURL,
		prefix:   config.Prefix,
	}
	for _, cog := range cogList(bot, config) {
		bot.addCog(cog, dbPool)
	}
	log.Printf("Registered commands: %s", strings.Join(bot.aliases(), ", "))
	return bot
}

func (b *Bot) addCog(cog Cog, dbPool *pgxpool.Pool) {
	key := strings.ToLower(cog.Name())
	if _, exists := b.cogs[key]; exists {
		log.Printf("Not registering duplicate cog %s", cog.Name())
		return
	}
	record := &cogRecord{cog: cog}
	record.pkg, record.typ = typeName(cog)
	b.cogs[key] = record
	b.cogNames = append(b.cogNames, cog.Name())
	for _, command := range cog.Commands() {
		b.addCommand(cog.Name(), command, dbPool)
	}
}

func (b *Bot) addCommand(cogName string, command Command, dbPool *pgxpool.Pool) {
	if err := checkCommand(command, dbPool); err != nil {
		log.Printf("Not registering %s: %s", strings.Join(command.CommandList(), ","), err)
		return
	}
	reg := &registration{
		command: command,
		cogName: cogName,
		name:    strings.ToLower(command.CommandList()[0]),
	}
	reg.pkg, reg.typ = typeName(unwrap(command))
	for _, alias := range command.CommandList() {
		alias = strings.ToLower(alias)
		if _, exists := b.commands[alias]; exists {
			log.Printf("Not registering duplicate alias %s", alias)
			continue
		}
		b.commands[alias] = reg
	}
}

// checkCommand runs the Check for whichever command kind the command
// implements. Persistent commands without a database are rejected so they
// never register
func checkCommand(command Command, dbPool *pgxpool.Pool) error {
	switch cmd := command.(type) {
	case SimpleCommand:
		return cmd.Check()
	case NoArgsCommand:
		return cmd.Check()
	case PersistentCommand:
		if dbPool == nil {
			return errors.New("no database configured")
		}
		return cmd.Check(dbPool)
	default:
		return fmt.Errorf("%T implements no known command kind", command)
	}
}

// unwrap peels wrapping layers off a command until it reaches the
// innermost one
func unwrap(command Command) Command {
	for {
		wrapped, ok := command.(WrappedCommand)
		if !ok {
			return command
		}
		command = wrapped.Unwrap()
	}
}

// typeName reports the package and type name declaring v, or empty
// strings when v's type is unnamed (and so has no linkable declaration)
func typeName(v interface{}) (string, string) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return "", ""
	}
	return path.Base(t.PkgPath()), t.Name()
}

func (b *Bot) aliases() []string {
	keys := make([]string, 0, len(b.commands))
	for key := range b.commands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
