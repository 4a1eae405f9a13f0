package sqlite

// Error contexts
const (
	ErrContextOpen         = "failed to open sqlite store"
	ErrContextMigrate      = "failed to migrate sqlite store"
	ErrContextGetRecord    = "failed to get record"
	ErrContextPutRecord    = "failed to put record"
	ErrContextDeleteRecord = "failed to delete record"
)

// InMemoryPath opens a private in-memory database
const InMemoryPath = ":memory:"
