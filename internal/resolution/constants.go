package resolution

// DefaultPointsPerCorrect is the credit for each correct prediction
const DefaultPointsPerCorrect = 10

// Log messages
const (
	LogMsgResolutionComplete = "Resolution pass complete"
	LogMsgCreditFailed       = "Failed to credit resolution points"
)

// Error contexts
const (
	ErrContextCredit = "failed to credit correct predictions"
)
