package publish

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/TechArp/CafeApp/observability/logger"
)

var _ watermill.LoggerAdapter = (*loggerAdapter)(nil)

// loggerAdapter adapts Logger to the watermill logger.
type loggerAdapter struct {
	base logger.Logger
}

// NewLoggerAdapter returns a watermill.LoggerAdapter writing to log.
func NewLoggerAdapter(log logger.Logger) watermill.LoggerAdapter {
	return &loggerAdapter{base: log}
}

func (l *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.withFields(fields).With("error", err).Error(msg)
}

func (l *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.withFields(fields).Info(msg)
}

func (l *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{base: l.withFields(fields)}
}

func (l *loggerAdapter) withFields(fields watermill.LogFields) logger.Logger {
	log := l.base
	for k, v := range fields {
		log = log.With(k, v)
	}
	return log
}
