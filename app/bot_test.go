package app

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/camcaswell/sir-robin/app/commands"
	"github.com/camcaswell/sir-robin/app/commands/persistent"
	"github.com/camcaswell/sir-robin/app/commands/simple"
	"github.com/camcaswell/sir-robin/app/srcindex"
)

// fakeSimple is declared only in the test binary, so the source index
// can never locate it
type fakeSimple struct{}

func (f fakeSimple) Check() error { return nil }

func (f fakeSimple) ProcessMessage(
	response chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
) *commands.CommandError {
	response <- commands.MessageResponse{ChannelID: m.ChannelID, Message: "ok"}
	return nil
}

func (f fakeSimple) CommandList() []string { return []string{"fake"} }

func (f fakeSimple) Help() string { return "A command that exists only in tests" }

func testBot(t *testing.T) *Bot {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "")
	index, err := srcindex.Scan("..")
	if err != nil {
		t.Fatal(err)
	}
	config := Config{
		RepoURL:     "https://github.com/camcaswell/sir-robin",
		Prefix:      "!",
		NewsFeedURL: "https://example.com/feed.xml",
	}
	return makeBot(config, nil, index)
}

func TestUnwrapReachesInnermostCommand(t *testing.T) {
	inner := simple.Choose{}
	wrapped := &Cooldown{Wait: time.Second, Inner: &Cooldown{Wait: time.Second, Inner: inner}}
	if got := unwrap(wrapped); got != Command(inner) {
		t.Errorf("unwrap = %T, want %T", got, inner)
	}
}

func TestTypeName(t *testing.T) {
	pkg, name := typeName(simple.Choose{})
	if pkg != "simple" || name != "Choose" {
		t.Errorf("typeName = %s.%s, want simple.Choose", pkg, name)
	}
	pkg, name = typeName(&Cooldown{})
	if pkg != "app" || name != "Cooldown" {
		t.Errorf("typeName = %s.%s, want app.Cooldown", pkg, name)
	}
	if pkg, name = typeName(struct{ X int }{}); pkg != "" || name != "" {
		t.Errorf("typeName on an unnamed type = %s.%s, want empty", pkg, name)
	}
}

func TestRegistrationRecordsInnermostType(t *testing.T) {
	bot := testBot(t)
	bot.addCommand("Tests", &Cooldown{Wait: time.Second, Inner: fakeSimple{}}, nil)

	reg, ok := bot.commands["fake"]
	if !ok {
		t.Fatal("wrapped command was not registered")
	}
	if reg.pkg != "app" || reg.typ != "fakeSimple" {
		t.Errorf("recorded type = %s.%s, want app.fakeSimple", reg.pkg, reg.typ)
	}
}

func TestPersistentCommandNeedsDatabase(t *testing.T) {
	if err := checkCommand(persistent.Remind{}, nil); err == nil {
		t.Error("expected persistent command with no pool to fail its check")
	}
}

func TestDuplicateAliasKeepsFirstRegistration(t *testing.T) {
	bot := testBot(t)
	first := bot.commands["choose"]
	if first == nil {
		t.Fatal("choose was not registered")
	}
	bot.addCommand("Tests", duplicateChoose{}, nil)
	if bot.commands["choose"] != first {
		t.Error("a later registration displaced an existing alias")
	}
}

type duplicateChoose struct{ fakeSimple }

func (d duplicateChoose) CommandList() []string { return []string{"choose"} }
