package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Event errors
	ErrMsgEventNotFound = "event not found"
	ErrMsgLockedEvent   = "event is locked"

	// Prediction errors
	ErrMsgInvalidOutcome     = "invalid outcome"
	ErrMsgPredictionNotFound = "prediction not found"

	// Ledger errors
	ErrMsgInsufficientPoints = "insufficient points"
	ErrMsgInvalidAmount      = "amount must not be negative"

	// Tournament errors
	ErrMsgTournamentNotFound = "tournament not found"
	ErrMsgAlreadyJoined      = "tournament already joined"

	// User errors
	ErrMsgInvalidDisplayName = "display name is required"

	// Storage errors
	ErrMsgPersistenceUnavailable = "persistence unavailable"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrEventNotFound = errors.New(ErrMsgEventNotFound)
	ErrLockedEvent   = errors.New(ErrMsgLockedEvent)

	ErrInvalidOutcome     = errors.New(ErrMsgInvalidOutcome)
	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)

	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)
	ErrInvalidAmount      = errors.New(ErrMsgInvalidAmount)

	ErrTournamentNotFound = errors.New(ErrMsgTournamentNotFound)
	ErrAlreadyJoined      = errors.New(ErrMsgAlreadyJoined)

	ErrInvalidDisplayName = errors.New(ErrMsgInvalidDisplayName)

	ErrPersistenceUnavailable = errors.New(ErrMsgPersistenceUnavailable)
)
