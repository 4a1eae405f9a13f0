package handler

// Generic HTTP error messages for client responses.
// Handlers and tests both reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingTournamentID   = "Missing tournament ID"
	ErrMsgNotSignedIn           = "Not signed in"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgEventNotFoundError    = "Event not found"
	ErrMsgEventLockedError      = "Event has started, predictions are closed"
	ErrMsgInvalidOutcomeError   = "Outcome must be homeWin, draw or awayWin"
	ErrMsgPredictionNotFoundErr = "Prediction not found"
	ErrMsgTournamentNotFoundErr = "Tournament not found"
	ErrMsgAlreadyJoinedError    = "You have already joined this tournament"
	ErrMsgNotEnoughPointsError  = "Not enough points"
	ErrMsgDisplayNameError      = "Display name is required"
	ErrMsgUnavailableError      = "Storage is temporarily unavailable. Please try again later."
)

// Success messages for API responses
const (
	MsgSignedOut              = "Signed out"
	MsgTournamentsResetDone   = "Tournament pool reset"
	MsgTournamentJoinedOK     = "Joined tournament"
	MsgTournamentJoinDeclined = "Not enough points to join"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Service call failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgPredictionCreated = "Prediction submitted"
)
