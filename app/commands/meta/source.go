// Package meta holds the commands about the bot itself: linking its
// source code and its license.
package meta

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/camcaswell/sir-robin/app/commands"
	"github.com/camcaswell/sir-robin/app/srcindex"
)

const thumbnailURL = "https://avatars1.githubusercontent.com/u/9919"

// Resolver maps a free-text argument to a source item. The bot's command
// registry implements it
type Resolver interface {
	ResolveSource(arg string) (srcindex.Item, *commands.CommandError)
}

// Source is a command to link the region of the bot's repository that
// defines a command or cog. With no argument it links the repository
// itself
type Source struct {
	Repo     string
	Resolver Resolver
}

// Check asserts a repository URL and a resolver are configured
func (s Source) Check() error {
	if s.Repo == "" {
		return errors.New("no repository URL configured")
	}
	if s.Resolver == nil {
		return errors.New("no source resolver configured")
	}
	return nil
}

// ProcessMessage resolves the argument to a command or cog and responds
// with an embed linking its source, or rejects arguments that name
// nothing or name something with no discoverable source
func (s Source) ProcessMessage(
	response chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
) *commands.CommandError {
	arg := strings.Join(strings.Fields(m.Content)[1:], " ")

	item, cmdErr := s.Resolver.ResolveSource(arg)
	if cmdErr != nil {
		return cmdErr
	}

	summary, err := srcindex.BuildSummary(s.Repo, item)
	if err != nil {
		return commands.CreateCommandError("Cannot get source for a dynamically-created object", err)
	}

	response <- commands.MessageResponse{
		ChannelID: m.ChannelID,
		Embed:     summaryEmbed(summary, item),
	}
	return nil
}

// CommandList returns the invocable aliases for the Source Command
func (s Source) CommandList() []string {
	return []string{"source", "src"}
}

// Help gives help information for the Source Command
func (s Source) Help() string {
	return "Get a GitHub link to the source code of a command or cog\n" +
		"`source` links the repository itself\n" +
		"`source <name>` links the region defining that command or cog"
}

func summaryEmbed(summary srcindex.Summary, item srcindex.Item) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       summary.Title,
		Description: summary.Description,
	}
	fieldName := "Source Code"
	if item.Kind == srcindex.ItemNone || item.Kind == srcindex.ItemHelp {
		fieldName = "Repository"
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumbnailURL}
	}
	embed.Fields = []*discordgo.MessageEmbedField{{
		Name:  fieldName,
		Value: "[Go to GitHub](" + summary.URL + ")",
	}}
	if summary.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: summary.Footer}
	}
	return embed
}
