// Package recurring holds the commands that run on a timer rather than
// in response to a message, like reminder delivery.
package recurring

// Frequency at which a recurring command's Check should run
type Frequency int

const (
	// Daily runs once a day (24 hours)
	Daily Frequency = iota
	// Hourly runs once an hour (60 minutes)
	Hourly
	// HalfHourly runs twice an hour (30 minutes)
	HalfHourly
	// Minutely runs once a minute (60 seconds)
	Minutely
)
