package simple

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/k3a/html2text"
	"github.com/mmcdole/gofeed"

	"github.com/camcaswell/sir-robin/app/commands"
)

const (
	defaultNewsCount = 3
	maxNewsCount     = 10
)

// News is a command to fetch the latest items from the configured feed
type News struct {
	FeedURL string
}

// Check asserts the configured feed URL is valid
func (n News) Check() error {
	if n.FeedURL == "" {
		return fmt.Errorf("no news feed configured")
	}
	_, err := url.Parse(n.FeedURL)
	return err
}

// ProcessMessage fetches the feed and responds with its latest items.
// An optional numeric argument caps how many items come back
func (n News) ProcessMessage(
	msgResponse chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
) *commands.CommandError {
	count, cmdErr := newsCount(splitArgs(m.Content))
	if cmdErr != nil {
		return cmdErr
	}

	log.Printf("Fetching feed %s", n.FeedURL)
	feed, err := gofeed.NewParser().ParseURL(n.FeedURL)
	if cmdErr = commands.CreateCommandError("Failed to fetch the news feed", err); cmdErr != nil {
		return cmdErr
	}
	if len(feed.Items) == 0 {
		return commands.NewError("The feed came back empty, no news is good news I suppose")
	}
	if count > len(feed.Items) {
		count = len(feed.Items)
	}

	msgResponse <- commands.MessageResponse{
		ChannelID: m.ChannelID,
		Message:   fmt.Sprintf("Latest from **%s**", html2text.HTML2Text(feed.Title)),
	}
	for _, item := range feed.Items[:count] {
		msgResponse <- commands.MessageResponse{
			ChannelID: m.ChannelID,
			Message:   fmt.Sprintf("**%s**\n%s", html2text.HTML2Text(item.Title), item.Link),
		}
	}
	return nil
}

// CommandList returns the aliases for the News Command
func (n News) CommandList() []string {
	return []string{"news"}
}

// Help returns the help message for the News Command
func (n News) Help() string {
	return "Fetches the latest items from the configured news feed\n" +
		"`news <count>` caps how many items come back (1-10)"
}

// newsCount parses the optional count argument, clamping it to the
// allowed range
func newsCount(args []string) (int, *commands.CommandError) {
	if len(args) == 0 {
		return defaultNewsCount, nil
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, commands.NewError(fmt.Sprintf("`%s` is not a number of news items I can count to", args[0]))
	}
	if count < 1 {
		count = 1
	}
	if count > maxNewsCount {
		count = maxNewsCount
	}
	return count, nil
}
