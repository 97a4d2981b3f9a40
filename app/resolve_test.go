package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/camcaswell/sir-robin/app/srcindex"
)

func TestResolveSourceNone(t *testing.T) {
	bot := testBot(t)

	item, cmdErr := bot.ResolveSource("")
	if cmdErr != nil {
		t.Fatal(cmdErr)
	}
	if item.Kind != srcindex.ItemNone {
		t.Fatalf("kind = %d, want ItemNone", item.Kind)
	}
	summary, err := srcindex.BuildSummary(bot.repoURL, item)
	if err != nil {
		t.Fatal(err)
	}
	if summary.URL != bot.repoURL {
		t.Errorf("URL = %q, want exactly the repository URL", summary.URL)
	}
	if summary.Footer != "" {
		t.Errorf("footer = %q, want empty", summary.Footer)
	}
}

func TestResolveSourceHelpSentinel(t *testing.T) {
	bot := testBot(t)

	for _, arg := range []string{"help", "!help", "Help"} {
		item, cmdErr := bot.ResolveSource(arg)
		if cmdErr != nil {
			t.Fatal(cmdErr)
		}
		if item.Kind != srcindex.ItemHelp {
			t.Errorf("ResolveSource(%q) kind = %d, want ItemHelp", arg, item.Kind)
		}
		summary, err := srcindex.BuildSummary(bot.repoURL, item)
		if err != nil {
			t.Fatal(err)
		}
		if summary.URL != bot.repoURL {
			t.Errorf("help URL = %q, want the repository root", summary.URL)
		}
		if summary.Title != "Help Command" {
			t.Errorf("help title = %q", summary.Title)
		}
	}
}

func TestResolveSourceCommand(t *testing.T) {
	bot := testBot(t)

	item, cmdErr := bot.ResolveSource("choose")
	if cmdErr != nil {
		t.Fatal(cmdErr)
	}
	if item.Kind != srcindex.ItemCommand || item.Name != "choose" {
		t.Fatalf("item = %+v, want the choose command", item)
	}
	if item.Location == nil {
		t.Fatal("no location resolved for a statically defined command")
	}
	if item.Location.File != "app/commands/simple/choose.go" {
		t.Errorf("file = %q, want app/commands/simple/choose.go", item.Location.File)
	}
	if item.Location.FirstLine <= 0 || item.Location.LastLine < item.Location.FirstLine {
		t.Errorf("bad line range L%d-L%d", item.Location.FirstLine, item.Location.LastLine)
	}

	summary, err := srcindex.BuildSummary(bot.repoURL, item)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(summary.URL, "#L") {
		t.Errorf("URL %q has no line-range suffix", summary.URL)
	}
	if summary.Title != "Command: choose" {
		t.Errorf("title = %q", summary.Title)
	}
}

func TestResolveSourceAlias(t *testing.T) {
	bot := testBot(t)

	item, cmdErr := bot.ResolveSource("src")
	if cmdErr != nil {
		t.Fatal(cmdErr)
	}
	if item.Name != "source" {
		t.Errorf("name = %q, want the primary alias", item.Name)
	}
	if item.Location == nil || item.Location.File != "app/commands/meta/source.go" {
		t.Errorf("location = %+v, want app/commands/meta/source.go", item.Location)
	}
}

func TestResolveSourceCog(t *testing.T) {
	bot := testBot(t)

	item, cmdErr := bot.ResolveSource("fun")
	if cmdErr != nil {
		t.Fatal(cmdErr)
	}
	if item.Kind != srcindex.ItemCog || item.Name != "Fun" {
		t.Fatalf("item = %+v, want the Fun cog", item)
	}
	if item.Location == nil || item.Location.File != "app/cogs.go" {
		t.Fatalf("location = %+v, want app/cogs.go", item.Location)
	}

	summary, err := srcindex.BuildSummary(bot.repoURL, item)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Title != "Cog: Fun" {
		t.Errorf("title = %q, want \"Cog: Fun\"", summary.Title)
	}
	if summary.Description != "Toy commands that talk to nobody but you." {
		t.Errorf("description = %q, want only the first line", summary.Description)
	}
}

func TestResolveSourceUnknown(t *testing.T) {
	bot := testBot(t)

	if _, cmdErr := bot.ResolveSource("nope"); cmdErr == nil {
		t.Error("expected an error for an unknown name")
	}
}

func TestResolveSourceDynamicCommandRejected(t *testing.T) {
	bot := testBot(t)
	// fakeSimple only exists in the test binary, so it has no source on
	// disk for the index to find
	bot.addCommand("Tests", fakeSimple{}, nil)

	item, cmdErr := bot.ResolveSource("fake")
	if cmdErr != nil {
		t.Fatal(cmdErr)
	}
	if item.Location != nil {
		t.Fatal("a test-only type should have no resolvable location")
	}

	_, err := srcindex.ResolveLink(bot.repoURL, item)
	var unresolvable *srcindex.UnresolvableSourceError
	if !errors.As(err, &unresolvable) {
		t.Fatalf("err = %v, want UnresolvableSourceError", err)
	}
}
