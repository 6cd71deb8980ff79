package repository

import "context"

// LogStore persists request and audit log entries. LogsRepository writes to
// MongoDB; GuardedLogStore puts a circuit breaker in front of any LogStore.
type LogStore interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	// Query returns matching entries, newest first.
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ LogStore = (*LogsRepository)(nil)
	_ LogStore = (*GuardedLogStore)(nil)
)
