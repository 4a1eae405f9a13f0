package prediction

// Log messages
const (
	LogMsgPredictionSubmitted = "Prediction submitted"
	LogMsgPredictionRejected  = "Prediction rejected"
	LogMsgPredictionResolved  = "Prediction resolved"
	LogMsgPredictionsSettled  = "Settled predictions for resolved events"
	LogMsgPersistFailed       = "Failed to persist predictions, keeping in-memory set"
)

// Error contexts
const (
	ErrContextSubmit       = "failed to submit prediction"
	ErrContextMarkResolved = "failed to mark prediction resolved"
)
