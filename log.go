package termgate

import (
	"context"
	"time"
)

// LogRecord is one audit log line: the verdict for a single candidate, or
// the skip record of a document. Records are append-only.
type LogRecord struct {
	ID           string     `json:"id"`
	DocumentID   string     `json:"documentId"`
	OriginalText string     `json:"originalText"`
	Term         string     `json:"term"`
	Accepted     bool       `json:"accepted"`
	Reason       ReasonCode `json:"reason"`
	Rule         string     `json:"rule,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
}

// Verdict returns the verdict the record was written for.
func (r *LogRecord) Verdict() Verdict {
	return Verdict{Accepted: r.Accepted, Reason: r.Reason, Rule: r.Rule}
}

// LogService represents the append-only verdict log.
type LogService interface {
	// AppendRecords appends records to the log.
	AppendRecords(ctx context.Context, records []*LogRecord) error

	// FindRecords retrieves records matching the filter in append order.
	FindRecords(ctx context.Context, filter LogFilter) ([]*LogRecord, error)
}

// LogFilter represents a filter for FindRecords.
type LogFilter struct {
	DocumentID *string     `json:"documentId"`
	Accepted   *bool       `json:"accepted"`
	Reason     *ReasonCode `json:"reason"`
	Rule       *string     `json:"rule"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
