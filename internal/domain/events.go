package domain

// Event type constants used for change signals on the engine's bus.
// They carry no payload beyond "something changed".
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypePredictionsChanged is published after any prediction or ledger mutation
	EventTypePredictionsChanged = "predictions.changed"

	// EventTypeEventsResolved is published after a resolution pass resolved at least one event
	EventTypeEventsResolved = "events.resolved"

	// EventTypeTournamentsUpdated is published after a join, settlement or pool reset
	EventTypeTournamentsUpdated = "tournaments.updated"
)

// ChangeSignal is the (empty) payload of a change notification
type ChangeSignal struct {
	Timestamp int64 `json:"timestamp"`
}
