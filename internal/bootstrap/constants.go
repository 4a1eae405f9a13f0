package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingBetEngine   = "Starting BetEngine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Record Store
// =============================================================================

const (
	LogMsgStoreOpened        = "Record store opened"
	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgFailedCreateDBDir  = "failed to create sqlite directory"
	ErrMsgFailedConnectDB    = "failed to connect to postgres"
	ErrMsgFailedMigrate      = "failed to migrate record store"
	ErrMsgFailedOpenSQLite   = "failed to open sqlite store"
)

// =============================================================================
// Tournament Lineup
// =============================================================================

const (
	LogMsgTournamentsLoaded  = "Tournament lineup loaded from config"
	LogMsgTournamentsDefault = "Tournament config not found, using default lineup"
	ErrMsgFailedLoadLineup   = "failed to load tournament config"
	ErrMsgInvalidLineup      = "invalid tournament config"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgDiscordNotifierEnabled     = "Discord reminder delivery enabled"
	ErrMsgFailedCreateDiscord        = "failed to create discord notifier"
)

// =============================================================================
// Engine Lifecycle
// =============================================================================

const (
	LogMsgEngineBootstrapped = "Engine bootstrapped"
	LogMsgJobsScheduled      = "Background jobs scheduled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Record store close failed"

	// Component names for shutdown logging
	ComponentDailyReset = "daily reset worker"
	ComponentReminders  = "reminder scheduler"
)

// Shutdown log message format (component name will be prepended)
const (
	LogMsgComponentShutdownFailed = " shutdown failed"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second
