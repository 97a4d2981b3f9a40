package app

import (
	"time"

	"github.com/camcaswell/sir-robin/app/commands/meta"
	"github.com/camcaswell/sir-robin/app/commands/persistent"
	"github.com/camcaswell/sir-robin/app/commands/simple"
)

// cogList builds every cog the bot registers.
// Source resolution links each cog to its type declaration below, so a
// newly added cog only needs a declared type and an entry here
func cogList(bot *Bot, config Config) []Cog {
	return []Cog{
		Fun{},
		Feeds{FeedURL: config.NewsFeedURL},
		GitHub{Repo: config.RepoURL},
		Reminders{},
		Meta{bot: bot, repo: config.RepoURL},
	}
}

// Fun groups the toy commands
type Fun struct{}

// Name identifies the Fun cog
func (f Fun) Name() string { return "Fun" }

// Description describes the Fun cog
func (f Fun) Description() string {
	return "Toy commands that talk to nobody but you.\n" +
		"Ask the 8 ball a question or let the bot make your choices for you."
}

// Commands returns the Fun cog's commands
func (f Fun) Commands() []Command {
	return []Command{simple.EightBall{}, simple.Choose{}}
}

// Feeds groups the commands that read syndicated feeds
type Feeds struct {
	FeedURL string
}

// Name identifies the Feeds cog
func (f Feeds) Name() string { return "Feeds" }

// Description describes the Feeds cog
func (f Feeds) Description() string {
	return "Commands that read the configured news feed."
}

// Commands returns the Feeds cog's commands
func (f Feeds) Commands() []Command {
	return []Command{simple.News{FeedURL: f.FeedURL}}
}

// GitHub groups the commands that talk to the GitHub API
type GitHub struct {
	Repo string
}

// Name identifies the GitHub cog
func (g GitHub) Name() string { return "GitHub" }

// Description describes the GitHub cog
func (g GitHub) Description() string {
	return "Commands that file issues against the bot's own repository.\n" +
		"Requires a GITHUB_TOKEN in the environment."
}

// Commands returns the GitHub cog's commands
func (g GitHub) Commands() []Command {
	return []Command{&Cooldown{Wait: 30 * time.Second, Inner: simple.Issue{Repo: g.Repo}}}
}

// Reminders groups the commands that persist reminders
type Reminders struct{}

// Name identifies the Reminders cog
func (r Reminders) Name() string { return "Reminders" }

// Description describes the Reminders cog
func (r Reminders) Description() string {
	return "Set reminders that come back to the channel when they are due.\n" +
		"Reminders survive restarts; delivery runs once a minute."
}

// Commands returns the Reminders cog's commands
func (r Reminders) Commands() []Command {
	return []Command{persistent.Remind{}}
}

// Meta groups the commands about the bot itself
type Meta struct {
	bot  *Bot
	repo string
}

// Name identifies the Meta cog
func (m Meta) Name() string { return "Meta" }

// Description describes the Meta cog
func (m Meta) Description() string {
	return "Commands about Sir Robin itself."
}

// Commands returns the Meta cog's commands
func (m Meta) Commands() []Command {
	return []Command{meta.Source{Repo: m.repo, Resolver: m.bot}, meta.License{}}
}
