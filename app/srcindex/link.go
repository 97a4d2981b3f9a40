package srcindex

import (
	"fmt"
	"strings"
)

// ItemKind tags the outcome of resolving a source argument.
type ItemKind int

const (
	// ItemNone means no argument was given; the repository itself is the
	// target.
	ItemNone ItemKind = iota
	// ItemHelp is the built-in help command, whose implementation lives
	// in the dispatcher rather than a registered command type.
	ItemHelp
	// ItemCommand is a registered command.
	ItemCommand
	// ItemCog is a registered cog.
	ItemCog
)

// Item is a resolved source argument: what kind of thing it named, its
// display name and description, and where it is declared. Location is
// nil for the repository root, the help built-in, and anything whose
// declaring source could not be found.
type Item struct {
	Kind        ItemKind
	Name        string
	Description string
	Location    *Location
}

// LinkResult pairs the hosted URL for an item with the location it
// points at (nil for the repository root).
type LinkResult struct {
	URL      string
	Location *Location
}

// Summary is the displayable form of a resolved item.
type Summary struct {
	Title       string
	Description string
	URL         string
	Footer      string
}

// ResolveLink builds the hosted-repository URL for an item. Commands and
// cogs without a known location yield an UnresolvableSourceError; the
// repository root and the help built-in always link to repoURL itself.
func ResolveLink(repoURL string, item Item) (LinkResult, error) {
	if item.Kind == ItemNone || item.Kind == ItemHelp {
		return LinkResult{URL: repoURL}, nil
	}
	if item.Location == nil {
		return LinkResult{}, &UnresolvableSourceError{Name: item.Name}
	}
	location := *item.Location
	url := fmt.Sprintf("%s/blob/main/%s", repoURL, location.File)
	if location.FirstLine > 0 {
		url += fmt.Sprintf("#L%d-L%d", location.FirstLine, location.LastLine)
	}
	return LinkResult{URL: url, Location: &location}, nil
}

// BuildSummary resolves an item's link and renders its title,
// description and footer. Multi-line descriptions are cut down to their
// first line.
func BuildSummary(repoURL string, item Item) (Summary, error) {
	link, err := ResolveLink(repoURL, item)
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{URL: link.URL}
	switch item.Kind {
	case ItemNone:
		summary.Title = "Sir Robin's GitHub Repository"
	case ItemHelp:
		summary.Title = "Help Command"
		summary.Description = "Sir Robin's help command is built into its dispatcher."
	case ItemCommand:
		summary.Title = "Command: " + item.Name
		summary.Description = firstLine(item.Description)
	case ItemCog:
		summary.Title = "Cog: " + item.Name
		summary.Description = firstLine(item.Description)
	}
	if link.Location != nil {
		summary.Footer = link.Location.File
		if link.Location.FirstLine > 0 {
			summary.Footer = fmt.Sprintf("%s:%d", link.Location.File, link.Location.FirstLine)
		}
	}
	return summary, nil
}

func firstLine(text string) string {
	return strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
}
