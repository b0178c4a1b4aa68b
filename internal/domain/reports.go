package domain

import (
	"fmt"
	"strings"
	"time"
)

// Severity is the level of an import log entry, in ascending order.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LogEntry is one retained import log message.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Severity  `json:"log_level"`
	Type      string    `json:"type,omitempty"`
	RecordID  string    `json:"record,omitempty"`
	Message   string    `json:"message"`
}

// ImportOutcome is the per-record result returned by processRecord.
type ImportOutcome struct {
	RecordID   string   `json:"record_identifier"`
	Success    bool     `json:"success"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	EntityType string   `json:"entity_type,omitempty"`
}

// BatchResult is the job level summary produced once per batch.
type BatchResult struct {
	BatchID       string   `json:"batch_id"`
	SuccessCount  int      `json:"success_count"`
	FailCount     int      `json:"fail_count"`
	WorstSeverity Severity `json:"worst_severity"`
	FatalMessages []string `json:"fatal_messages,omitempty"`
	Message       string   `json:"message"`
}

// Failed reports whether a fatal error occurred during the batch.
func (r BatchResult) Failed() bool {
	return r.WorstSeverity >= SeverityFatal
}

// Summary renders "X of Y records imported." prefixed by fatal messages if any.
func Summary(success, fail int, fatal []string) string {
	counts := fmt.Sprintf("%d of %d records imported.", success, success+fail)
	if len(fatal) == 0 {
		return counts
	}
	return fmt.Sprintf("FATAL ERROR(S): %s. %s", strings.Join(fatal, ", "), counts)
}
