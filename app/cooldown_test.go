package app

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/camcaswell/sir-robin/app/commands"
)

func testMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{ID: "1", ChannelID: "chan", Content: content},
	}
}

func TestCooldownDelegatesAndGates(t *testing.T) {
	cooldown := &Cooldown{Wait: time.Hour, Inner: fakeSimple{}}
	if err := cooldown.Check(); err != nil {
		t.Fatal(err)
	}

	response := make(chan commands.MessageResponse, 2)
	if err := cooldown.ProcessMessage(response, testMessage("!fake")); err != nil {
		t.Fatalf("first invocation failed: %s", err)
	}
	if len(response) != 1 {
		t.Fatalf("expected one response, got %d", len(response))
	}

	if err := cooldown.ProcessMessage(response, testMessage("!fake")); err == nil {
		t.Fatal("second invocation inside the window should be rejected")
	}
}

func TestCooldownExposesInnerMetadata(t *testing.T) {
	cooldown := &Cooldown{Wait: time.Second, Inner: fakeSimple{}}
	if got := cooldown.CommandList()[0]; got != "fake" {
		t.Errorf("CommandList = %q, want the inner command's aliases", got)
	}
	if cooldown.Help() != (fakeSimple{}).Help() {
		t.Error("Help should delegate to the inner command")
	}
	if cooldown.Unwrap() != Command(fakeSimple{}) {
		t.Error("Unwrap should return the inner command")
	}
}

func TestCooldownRejectsNonSimpleCommands(t *testing.T) {
	cooldown := &Cooldown{Wait: time.Second, Inner: noArgsOnly{}}
	if err := cooldown.Check(); err == nil {
		t.Error("expected Check to reject a command that is not a SimpleCommand")
	}
}

type noArgsOnly struct{}

func (n noArgsOnly) Check() error                                       { return nil }
func (n noArgsOnly) ProcessMessage() ([]string, *commands.CommandError) { return nil, nil }
func (n noArgsOnly) CommandList() []string                              { return []string{"noargs"} }
func (n noArgsOnly) Help() string                                       { return "test" }
