package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobDropped = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting      = "Daily reset starting"
	LogMsgDailyResetCompleted     = "Daily reset completed"
	LogMsgDailyResetFailed        = "Daily reset failed"
	LogMsgDailyResetStandby       = "Daily reset standby"
	LogMsgDailyResetScheduled     = "Daily reset scheduled"
	LogMsgDailyResetManualTrigger = "Daily reset manually triggered"
	LogMsgDailyResetShutdown      = "Daily reset worker shutdown complete"
	LogMsgDailyResetShutdownSlow  = "Daily reset worker shutdown timeout, a reset may still be running"
)

// ============================================================================
// Daily Reset Timing
// ============================================================================

// Two-stage scheduling: far from midnight the worker sleeps until StandbyLead before it,
// then arms the real timer. A timer firing more than JitterTolerance early is re-armed.
const (
	StandbyThreshold = time.Hour
	StandbyLead      = 45 * time.Minute
	JitterTolerance  = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
