package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"streetimport/internal/config"
	"streetimport/internal/domain"
)

// ErrAborted is returned when a fatal condition stops the batch.
var ErrAborted = errors.New("import aborted")

// ImportResult collects the log entries and per-record outcomes of one batch.
// Errors and fatal errors are also recorded as an activity assigned to the
// configured admin contact.
type ImportResult struct {
	batchID    string
	cfg        *config.Config
	activities ActivityStore
	logger     *zap.Logger
	now        func() time.Time

	entries  []domain.LogEntry
	success  map[string]struct{}
	fail     map[string]struct{}
	levels   map[string]domain.Severity
	maxLevel domain.Severity
}

// NewImportResult creates an empty result for a new batch.
func NewImportResult(cfg *config.Config, activities ActivityStore, logger *zap.Logger) *ImportResult {
	batchID := uuid.NewString()
	return &ImportResult{
		batchID:    batchID,
		cfg:        cfg,
		activities: activities,
		logger:     logger.With(zap.String("batch_id", batchID)),
		now:        time.Now,
		success:    make(map[string]struct{}),
		fail:       make(map[string]struct{}),
		levels:     make(map[string]domain.Severity),
		maxLevel:   domain.SeverityDebug,
	}
}

// BatchID identifies this batch in logs and error activities.
func (r *ImportResult) BatchID() string {
	return r.batchID
}

// LogImport records the outcome of one record. A record that failed once
// stays failed even if it is later logged as a success. The severity of a
// failed outcome is the worst one logged for the record, at least WARN.
func (r *ImportResult) LogImport(recordID string, success bool, entityType, message string) domain.ImportOutcome {
	outcome := domain.ImportOutcome{
		RecordID:   recordID,
		Success:    success,
		Message:    message,
		EntityType: entityType,
	}
	if success {
		outcome.Severity = domain.SeverityDebug
		if _, failed := r.fail[recordID]; !failed {
			r.success[recordID] = struct{}{}
		}
		r.log(domain.SeverityDebug, recordID, entityType, fmt.Sprintf("Successfully imported record %s: %s", recordID, message))
	} else {
		outcome.Severity = max(domain.SeverityWarn, r.levels[recordID])
		r.fail[recordID] = struct{}{}
		delete(r.success, recordID)
		r.log(domain.SeverityWarn, recordID, entityType, fmt.Sprintf("Failed to import record %s: %s", recordID, message))
	}
	return outcome
}

// Debug logs an informational message.
func (r *ImportResult) Debug(recordID, message string) {
	r.log(domain.SeverityDebug, recordID, "", message)
}

// Info logs a soft skip.
func (r *ImportResult) Info(recordID, message string) {
	r.log(domain.SeverityInfo, recordID, "", message)
}

// Warn logs a recoverable, auto-corrected data issue.
func (r *ImportResult) Warn(recordID, message string) {
	r.log(domain.SeverityWarn, recordID, "", message)
}

// Error logs a record level failure and records an error activity.
func (r *ImportResult) Error(ctx context.Context, recordID, title, message string) {
	if title == "" {
		title = "Import Error"
	}
	r.log(domain.SeverityError, recordID, title, message)
	r.createErrorActivity(ctx, recordID, title, message)
}

// Fatal logs a batch aborting failure and records an error activity.
func (r *ImportResult) Fatal(ctx context.Context, recordID, message string) {
	r.log(domain.SeverityFatal, recordID, "Import Failure", message)
	r.createErrorActivity(ctx, recordID, "Import Failure", message)
}

// Abort logs message as fatal and returns an error wrapping ErrAborted.
func (r *ImportResult) Abort(ctx context.Context, recordID, message string) error {
	r.Fatal(ctx, recordID, message)
	return fmt.Errorf("%w: %s", ErrAborted, message)
}

// LogValidation logs a mandate validation failure at its own severity.
func (r *ImportResult) LogValidation(ctx context.Context, recordID string, ve *domain.ValidationError) {
	if ve.Severity >= domain.SeverityError {
		r.Error(ctx, recordID, ve.Title, ve.Message)
		return
	}
	r.log(ve.Severity, recordID, ve.Title, ve.Message)
}

// MaxLevel is the worst severity logged so far.
func (r *ImportResult) MaxLevel() domain.Severity {
	return r.maxLevel
}

// EntriesWithLevel returns the retained entries of at least the given level.
func (r *ImportResult) EntriesWithLevel(level domain.Severity) []domain.LogEntry {
	var entries []domain.LogEntry
	for _, e := range r.entries {
		if e.Level >= level {
			entries = append(entries, e)
		}
	}
	return entries
}

// MessagesWithLevel is EntriesWithLevel reduced to the messages.
func (r *ImportResult) MessagesWithLevel(level domain.Severity) []string {
	var messages []string
	for _, e := range r.EntriesWithLevel(level) {
		messages = append(messages, e.Message)
	}
	return messages
}

// Result produces the batch summary.
func (r *ImportResult) Result() domain.BatchResult {
	result := domain.BatchResult{
		BatchID:       r.batchID,
		SuccessCount:  len(r.success),
		FailCount:     len(r.fail),
		WorstSeverity: r.maxLevel,
	}
	if r.maxLevel >= domain.SeverityFatal {
		result.FatalMessages = r.MessagesWithLevel(domain.SeverityFatal)
	}
	result.Message = domain.Summary(result.SuccessCount, result.FailCount, result.FatalMessages)
	return result
}

func (r *ImportResult) log(level domain.Severity, recordID, entryType, message string) {
	// debug entries go to the logger only
	if level > domain.SeverityDebug {
		r.entries = append(r.entries, domain.LogEntry{
			Timestamp: r.now(),
			Level:     level,
			Type:      entryType,
			RecordID:  recordID,
			Message:   message,
		})
	}
	if level > r.maxLevel {
		r.maxLevel = level
	}
	if recordID != "" && level > r.levels[recordID] {
		r.levels[recordID] = level
	}

	fields := []zap.Field{zap.String("record", recordID)}
	if entryType != "" {
		fields = append(fields, zap.String("type", entryType))
	}
	switch level {
	case domain.SeverityDebug:
		r.logger.Debug(message, fields...)
	case domain.SeverityInfo:
		r.logger.Info(message, fields...)
	case domain.SeverityWarn:
		r.logger.Warn(message, fields...)
	default:
		fields = append(fields, zap.Stringer("severity", level))
		r.logger.Error(message, fields...)
	}
}

func (r *ImportResult) createErrorActivity(ctx context.Context, recordID, title, message string) {
	if r.activities == nil {
		return
	}
	imp := r.cfg.Import
	activity := domain.Activity{
		TypeID:      imp.ActivityTypes.ImportError,
		StatusID:    imp.ActivityStatuses.ImportError,
		Subject:     title,
		Details:     fmt.Sprintf("%s\n\nBatch: %s\nRecord: %s", message, r.batchID, recordID),
		DateTime:    r.now(),
		SourceID:    imp.AdminContactID,
		AssigneeIDs: []int64{imp.AdminContactID},
	}
	if _, err := r.activities.CreateActivity(ctx, activity, nil); err != nil {
		r.logger.Error("Error while creating an activity to report another error",
			zap.String("record", recordID), zap.Error(err))
	}
}
