package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/camcaswell/sir-robin/app/commands"
)

// Cooldown wraps a simple command and rejects invocations arriving before
// Wait has elapsed since the last accepted one. It is transparent to
// source resolution, which unwraps it to the inner command
type Cooldown struct {
	Wait  time.Duration
	Inner Command

	mutex sync.Mutex
	last  time.Time
}

// Check asserts the wrapped command is a simple command and runs its Check
func (c *Cooldown) Check() error {
	simple, ok := c.Inner.(SimpleCommand)
	if !ok {
		return fmt.Errorf("%T cannot be wrapped in a cooldown", c.Inner)
	}
	return simple.Check()
}

// ProcessMessage delegates to the wrapped command unless it ran too recently
func (c *Cooldown) ProcessMessage(
	response chan<- commands.MessageResponse,
	m *discordgo.MessageCreate,
) *commands.CommandError {
	c.mutex.Lock()
	remaining := c.Wait - time.Since(c.last)
	if remaining > 0 {
		c.mutex.Unlock()
		return commands.NewError(fmt.Sprintf("Hold your horses, try again in %s", remaining.Round(time.Second)))
	}
	c.last = time.Now()
	c.mutex.Unlock()
	return c.Inner.(SimpleCommand).ProcessMessage(response, m)
}

// CommandList returns the wrapped command's aliases
func (c *Cooldown) CommandList() []string {
	return c.Inner.CommandList()
}

// Help returns the wrapped command's help message
func (c *Cooldown) Help() string {
	return c.Inner.Help()
}

// Unwrap returns the wrapped command
func (c *Cooldown) Unwrap() Command {
	return c.Inner
}
