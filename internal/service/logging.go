package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity feed page sizes.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// ErrAuditUnavailable is returned when the audit store cannot be read.
var ErrAuditUnavailable = errors.New("audit log unavailable")

// LoggingService stores request and audit entries and reads them back for
// the admin activity feed.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
	// Activity returns one page of matching entries, newest first, with the
	// total number of matches.
	Activity(ctx context.Context, opts model.LogQueryOptions) (*model.ActivityPage, error)
}

// AuditLogService is the LoggingService backed by a repository.LogStore.
type AuditLogService struct {
	store repository.LogStore
}

// NewLoggingService creates an AuditLogService over store.
func NewLoggingService(store repository.LogStore) *AuditLogService {
	return &AuditLogService{store: store}
}

func (s *AuditLogService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.store.Create(ctx, toDocument(entry))
}

func (s *AuditLogService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = toDocument(entry)
	}
	return s.store.CreateMany(ctx, docs)
}

func (s *AuditLogService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.store.Query(ctx, toStoreQuery(opts))
	if err != nil {
		return nil, err
	}
	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromDocument(doc)
	}
	return entries, nil
}

func (s *AuditLogService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.store.Count(ctx, toStoreQuery(opts))
}

func (s *AuditLogService) Activity(ctx context.Context, opts model.LogQueryOptions) (*model.ActivityPage, error) {
	switch {
	case opts.Limit <= 0:
		opts.Limit = DefaultActivityLimit
	case opts.Limit > MaxActivityLimit:
		opts.Limit = MaxActivityLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	entries, err := s.QueryLogs(ctx, opts)
	if err != nil {
		return nil, auditReadError(err)
	}
	total, err := s.CountLogs(ctx, opts)
	if err != nil {
		return nil, auditReadError(err)
	}
	return &model.ActivityPage{Entries: entries, Total: total, Limit: opts.Limit, Skip: opts.Skip}, nil
}

func auditReadError(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrAuditUnavailable, err)
	}
	return err
}

func toStoreQuery(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID:  opts.RequestID,
		SessionID:  opts.SessionID,
		Actor:      opts.Actor,
		ActionType: opts.ActionType,
		Level:      opts.Level,
		StartTime:  opts.StartTime,
		EndTime:    opts.EndTime,
		Limit:      opts.Limit,
		Skip:       opts.Skip,
	}
}

// toDocument fills in the id and timestamp of entry before copying it, so
// callers see the values that were stored.
func toDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	doc := repository.LogEntryDocument(*entry)
	return &doc
}

func fromDocument(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry(*doc)
}
