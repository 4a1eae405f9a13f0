package schedule

import "time"

// Pool defaults
const (
	DefaultPoolSize = 12
	DefaultSpacing  = 5 * time.Minute
)

// Log messages
const (
	LogMsgPoolRegenerated = "Generated new daily event pool"
	LogMsgPoolStale       = "Cached event pool is stale, regenerating"
	LogMsgRollingAppended = "Appended events to rolling schedule"
	LogMsgRollingPruned   = "Pruned resolved events from schedule"
	LogMsgPersistFailed   = "Failed to persist event pool, keeping in-memory pool"
	LogMsgReminderFailed  = "Failed to schedule reminder"
	LogMsgEventsResolved  = "Attached outcomes to started events"
)
