package user

// Log messages
const (
	LogMsgSignedIn      = "User signed in"
	LogMsgSignedOut     = "User signed out"
	LogMsgPersistFailed = "Failed to persist profile"
	LogMsgProfileLoaded = "Loaded stored profile"
)

// Error contexts
const (
	ErrContextSignIn = "failed to sign in"
)

// MaxDisplayNameLength bounds stored display names, in runes
const MaxDisplayNameLength = 40
