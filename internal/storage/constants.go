package storage

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the record envelope changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgRecordLoadFailed   = "Failed to load record, treating as absent"
	LogMsgRecordDecodeFailed = "Stored record is undecodable, treating as absent"
	LogMsgRecordSaveFailed   = "Failed to persist record"
	LogMsgRecordDeleteFailed = "Failed to delete record"
)

// Error contexts
const (
	ErrContextEncodeRecord = "failed to encode record"
	ErrContextSaveRecord   = "failed to save record"
	ErrContextDeleteRecord = "failed to delete record"
	ErrContextHealthCheck  = "store health check failed"
)
