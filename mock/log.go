package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

var _ termgate.LogService = (*LogService)(nil)

// LogService is a mock implementation of termgate.LogService.
type LogService struct {
	AppendRecordsFn func(ctx context.Context, records []*termgate.LogRecord) error
	FindRecordsFn   func(ctx context.Context, filter termgate.LogFilter) ([]*termgate.LogRecord, error)
}

func (s *LogService) AppendRecords(ctx context.Context, records []*termgate.LogRecord) error {
	return s.AppendRecordsFn(ctx, records)
}

func (s *LogService) FindRecords(ctx context.Context, filter termgate.LogFilter) ([]*termgate.LogRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}
