package report

import (
	"go.uber.org/zap"
)

// LogSink writes outcomes to a zap logger. Passed and skipped cases log at
// info level, failed and errored ones at warn level.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogSink{logger: logger}
}

func (s *LogSink) Report(o Outcome) {
	fields := []zap.Field{
		zap.String("run_id", o.RunID.String()),
		zap.String("test", o.Test()),
		zap.String("case", o.Name()),
		zap.Stringer("status", o.Status),
		zap.Duration("duration", o.Duration),
	}

	switch o.Status {
	case StatusFailed, StatusErrored:
		s.logger.Warn("Test case did not pass", append(fields, zap.Error(o.Err))...)
	default:
		s.logger.Info("Test case finished", fields...)
	}
}
