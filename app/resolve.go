package app

import (
	"fmt"
	"strings"

	"github.com/camcaswell/sir-robin/app/commands"
	"github.com/camcaswell/sir-robin/app/srcindex"
	handler "github.com/camcaswell/sir-robin/util"
)

// ResolveSource maps a free-text argument to a tagged source item: the
// repository root for an empty argument, the help sentinel for the
// dispatcher's built-in help, or a registered command or cog. Commands
// resolve to the declaration of their innermost ProcessMessage method,
// cogs to the span of their declaring type. Items whose declaring type
// cannot be found in the index carry no location; building a link for
// them fails instead of producing an empty link
func (b *Bot) ResolveSource(arg string) (srcindex.Item, *commands.CommandError) {
	name := strings.ToLower(strings.TrimSpace(arg))
	name = strings.TrimPrefix(name, b.prefix)

	if name == "" {
		return srcindex.Item{Kind: srcindex.ItemNone}, nil
	}
	if name == "help" {
		return srcindex.Item{Kind: srcindex.ItemHelp, Name: "help"}, nil
	}
	if reg, ok := b.commands[name]; ok {
		item := srcindex.Item{
			Kind:        srcindex.ItemCommand,
			Name:        reg.name,
			Description: reg.command.Help(),
		}
		if reg.typ != "" {
			location, err := b.index.MethodSpan(reg.pkg, reg.typ, "ProcessMessage")
			if err == nil {
				item.Location = &location
			} else {
				handler.LogErrorMsg(fmt.Sprintf("Locating command %s", reg.name), err)
			}
		}
		return item, nil
	}
	if record, ok := b.cogs[name]; ok {
		item := srcindex.Item{
			Kind:        srcindex.ItemCog,
			Name:        record.cog.Name(),
			Description: record.cog.Description(),
		}
		if record.typ != "" {
			location, err := b.index.TypeSpan(record.pkg, record.typ)
			if err == nil {
				item.Location = &location
			} else {
				handler.LogErrorMsg(fmt.Sprintf("Locating cog %s", record.cog.Name()), err)
			}
		}
		return item, nil
	}
	return srcindex.Item{}, commands.NewError(
		fmt.Sprintf("Couldn't find a command or cog called `%s`", name),
	)
}
