package notification

import "time"

// Reminder timing
const (
	// DefaultReminderLead is how long before the start an alert fires
	DefaultReminderLead = 2 * time.Minute

	// MinimumReminderDelay keeps alerts for imminent events from firing immediately
	MinimumReminderDelay = time.Second

	// ReminderIDPrefix namespaces reminder identifiers per event
	ReminderIDPrefix = "event_"
)

// Reminder text
const (
	ReminderTitle      = "Starting soon"
	ReminderBodyFormat = "%s vs %s starts soon. Make your prediction!"
)

// Sink names, used as metric labels
const (
	SinkLog     = "log"
	SinkDiscord = "discord"
)

// Log messages
const (
	LogMsgReminderScheduled     = "Reminder scheduled"
	LogMsgReminderSkipped       = "Reminder skipped, event already started"
	LogMsgReminderDuplicate     = "Reminder already pending"
	LogMsgReminderFired         = "Reminder fired"
	LogMsgReminderDeliverFailed = "Reminder delivery failed"
	LogMsgReminderCancelled     = "Cancelled pending reminder"
	LogMsgShuttingDown          = "Shutting down reminder scheduler"
	LogMsgShutdownComplete      = "Reminder scheduler shutdown complete"
	LogMsgShutdownTimeout       = "Reminder scheduler shutdown timeout"
)

// Error contexts
const (
	ErrContextDiscordSession = "failed to create discord session"
	ErrContextDiscordExecute = "failed to execute discord webhook"
)
