package postgres

// Table names
const (
	TableKVRecords = "kv_records"
)

// Error contexts
const (
	ErrContextGetRecord    = "failed to get record"
	ErrContextPutRecord    = "failed to put record"
	ErrContextDeleteRecord = "failed to delete record"
	ErrContextMigrate      = "failed to apply migrations"
	ErrContextSetDialect   = "failed to set goose dialect"
)

// Log messages
const (
	LogMsgMigrationsApplied = "Applied postgres migrations"
)
