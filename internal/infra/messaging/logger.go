package messaging

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

// SlogAdapter routes watermill's internal logging into slog. Watermill logs at
// trace level a lot; those lines go to debug.
type SlogAdapter struct {
	logger *slog.Logger
	fields watermill.LogFields
}

var _ watermill.LoggerAdapter = (*SlogAdapter)(nil)

func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger.With("component", "watermill")}
}

func (a *SlogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	args := a.args(fields)
	if err != nil {
		args = append(args, "error", err.Error())
	}
	a.logger.Log(context.Background(), slog.LevelError, msg, args...)
}

func (a *SlogAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Log(context.Background(), slog.LevelInfo, msg, a.args(fields)...)
}

func (a *SlogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Log(context.Background(), slog.LevelDebug, msg, a.args(fields)...)
}

func (a *SlogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Log(context.Background(), slog.LevelDebug-4, msg, a.args(fields)...)
}

func (a *SlogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &SlogAdapter{logger: a.logger, fields: a.fields.Add(fields)}
}

func (a *SlogAdapter) args(fields watermill.LogFields) []any {
	all := a.fields.Add(fields)
	args := make([]any, 0, len(all)*2)
	for k, v := range all {
		args = append(args, k, v)
	}
	return args
}
