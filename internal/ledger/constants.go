package ledger

// Log messages
const (
	LogMsgBalanceLoaded        = "Loaded points balance"
	LogMsgPointsCredited       = "Points credited"
	LogMsgPointsDebited        = "Points debited"
	LogMsgDebitRejected        = "Debit rejected"
	LogMsgPersistBalanceFailed = "Failed to persist balance, keeping in-memory value"
)

// Error contexts
const (
	ErrContextCredit = "failed to credit points"
)
