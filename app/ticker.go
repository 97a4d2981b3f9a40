package app

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands/recurring"
)

// Timers at which RecurringCommand intervals are supported
type Timers struct {
	Daily      *time.Ticker
	Hourly     *time.Ticker
	HalfHourly *time.Ticker
	Minutely   *time.Ticker
}

// Start looking for new messages to post at all the supported intervals
func (t *Timers) Start(
	recurringCommandMap map[recurring.Frequency][]RecurringCommand,
	dbPool *pgxpool.Pool,
	session *discordgo.Session,
) {
	t.Daily = time.NewTicker(time.Hour * 24)
	t.Hourly = time.NewTicker(time.Hour)
	t.HalfHourly = time.NewTicker(time.Minute * 30)
	t.Minutely = time.NewTicker(time.Minute)
	for freq, cmds := range recurringCommandMap {
		switch freq {
		case recurring.Daily:
			go watchTicker(t.Daily, "Daily", cmds, dbPool, session)
		case recurring.Hourly:
			go watchTicker(t.Hourly, "Hourly", cmds, dbPool, session)
		case recurring.HalfHourly:
			go watchTicker(t.HalfHourly, "Half-hourly", cmds, dbPool, session)
		case recurring.Minutely:
			go watchTicker(t.Minutely, "Minutely", cmds, dbPool, session)
		}
	}
}

// StopAll timers so no more events are sent on their channels
func (t *Timers) StopAll() {
	t.Daily.Stop()
	t.Hourly.Stop()
	t.HalfHourly.Stop()
	t.Minutely.Stop()
}

func watchTicker(
	ticker *time.Ticker,
	label string,
	cmds []RecurringCommand,
	dbPool *pgxpool.Pool,
	session *discordgo.Session,
) {
	for range ticker.C {
		log.Printf("%s check ran", label)
		processRecurringMsg(cmds, dbPool, session)
	}
}

func processRecurringMsg(cmds []RecurringCommand, dbPool *pgxpool.Pool, session *discordgo.Session) {
	for _, cmd := range cmds {
		pendingMsgs := cmd.Check(dbPool)
		for channel, msgs := range pendingMsgs {
			for _, msg := range msgs {
				_, err := session.ChannelMessageSend(channel, msg)
				if err != nil {
					log.Println(err)
				}
			}
		}
	}
}
