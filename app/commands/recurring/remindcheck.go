package recurring

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/camcaswell/sir-robin/app/commands/persistent"
)

// RemindCheck routinely delivers reminders that have come due
type RemindCheck struct{}

// Check collects due reminders grouped by channel and deletes the
// delivered ones
func (r RemindCheck) Check(dbPool *pgxpool.Pool) map[string][]string {
	rows, err := dbPool.Query(context.Background(), persistent.RemindDue)
	if err != nil {
		log.Println(err)
		return nil
	}
	pendingMessages := map[string][]string{}
	delivered := make([]int64, 0)
	for rows.Next() {
		var id int64
		var channel string
		var content string
		if err := rows.Scan(&id, &channel, &content); err != nil {
			log.Println(err)
			continue
		}
		pendingMessages[channel] = append(pendingMessages[channel], fmt.Sprintf("⏰ Reminder: %s", content))
		delivered = append(delivered, id)
	}
	if err := rows.Err(); err != nil {
		log.Println(err)
		return nil
	}
	if len(delivered) == 0 {
		return nil
	}
	tag, err := dbPool.Exec(context.Background(), persistent.RemindDelete, delivered)
	if err != nil {
		log.Println(err)
	}
	log.Printf("RemindCheck: %s (delivered %d reminders)", tag, len(delivered))
	return pendingMessages
}

// Frequency reports that reminders should be delivered minutely
func (r RemindCheck) Frequency() Frequency {
	return Minutely
}
