package engine

// Log messages
const (
	LogMsgBootstrapped      = "Engine bootstrapped"
	LogMsgTickSkipped       = "Engine tick already running, skipping"
	LogMsgTickComplete      = "Engine tick complete"
	LogMsgResolutionFailed  = "Resolution pass failed"
	LogMsgDailyResetApplied = "Daily reset applied"
)

// Error contexts
const (
	ErrContextResolve = "tick resolution failed"
)
