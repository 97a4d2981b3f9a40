package srcindex

import (
	"errors"
	"testing"
)

const repo = "https://github.com/camcaswell/sir-robin"

func TestResolveLinkRoot(t *testing.T) {
	for _, kind := range []ItemKind{ItemNone, ItemHelp} {
		link, err := ResolveLink(repo, Item{Kind: kind})
		if err != nil {
			t.Fatal(err)
		}
		if link.URL != repo {
			t.Errorf("kind %d: URL = %q, want the bare repository URL", kind, link.URL)
		}
		if link.Location != nil {
			t.Errorf("kind %d: expected no location", kind)
		}
	}
}

func TestResolveLinkCommand(t *testing.T) {
	item := Item{
		Kind: ItemCommand,
		Name: "choose",
		Location: &Location{
			File:      "app/commands/simple/choose.go",
			FirstLine: 18,
			LastLine:  27,
		},
	}
	link, err := ResolveLink(repo, item)
	if err != nil {
		t.Fatal(err)
	}
	want := repo + "/blob/main/app/commands/simple/choose.go#L18-L27"
	if link.URL != want {
		t.Errorf("URL = %q, want %q", link.URL, want)
	}
}

func TestResolveLinkWithoutLocationFails(t *testing.T) {
	_, err := ResolveLink(repo, Item{Kind: ItemCommand, Name: "improvised"})
	var unresolvable *UnresolvableSourceError
	if !errors.As(err, &unresolvable) {
		t.Fatalf("err = %v, want UnresolvableSourceError", err)
	}
}

func TestBuildSummary(t *testing.T) {
	tests := []struct {
		name   string
		item   Item
		title  string
		desc   string
		url    string
		footer string
	}{
		{
			name:  "repository root",
			item:  Item{Kind: ItemNone},
			title: "Sir Robin's GitHub Repository",
			url:   repo,
		},
		{
			name:  "help sentinel",
			item:  Item{Kind: ItemHelp},
			title: "Help Command",
			desc:  "Sir Robin's help command is built into its dispatcher.",
			url:   repo,
		},
		{
			name: "command",
			item: Item{
				Kind:        ItemCommand,
				Name:        "8ball",
				Description: "Provides an answer to a yes/no question",
				Location:    &Location{File: "app/commands/simple/eightball.go", FirstLine: 25, LastLine: 31},
			},
			title:  "Command: 8ball",
			desc:   "Provides an answer to a yes/no question",
			url:    repo + "/blob/main/app/commands/simple/eightball.go#L25-L31",
			footer: "app/commands/simple/eightball.go:25",
		},
		{
			name: "cog keeps only the first description line",
			item: Item{
				Kind:        ItemCog,
				Name:        "Fun",
				Description: "Toy commands that talk to nobody.\nA second line that must not appear.",
				Location:    &Location{File: "app/cogs.go", FirstLine: 12, LastLine: 20},
			},
			title:  "Cog: Fun",
			desc:   "Toy commands that talk to nobody.",
			url:    repo + "/blob/main/app/cogs.go#L12-L20",
			footer: "app/cogs.go:12",
		},
		{
			name: "location without a line range",
			item: Item{
				Kind:     ItemCog,
				Name:     "Odd",
				Location: &Location{File: "app/cogs.go"},
			},
			title:  "Cog: Odd",
			url:    repo + "/blob/main/app/cogs.go",
			footer: "app/cogs.go",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := BuildSummary(repo, tt.item)
			if err != nil {
				t.Fatal(err)
			}
			if summary.Title != tt.title {
				t.Errorf("title = %q, want %q", summary.Title, tt.title)
			}
			if summary.Description != tt.desc {
				t.Errorf("description = %q, want %q", summary.Description, tt.desc)
			}
			if summary.URL != tt.url {
				t.Errorf("url = %q, want %q", summary.URL, tt.url)
			}
			if summary.Footer != tt.footer {
				t.Errorf("footer = %q, want %q", summary.Footer, tt.footer)
			}
		})
	}
}
