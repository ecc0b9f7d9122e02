package wrapper

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/TechArp/CafeApp/cqrs/command"
	"github.com/TechArp/CafeApp/observability/logger"
)

type LoggerCommandWrapper[I command.Input, R command.Result] struct {
	logger logger.Logger
	next   command.Command[I, R]
}

// NewLoggerCommandWrapper logs every execution with its duration.
// Validation and conflict errors are expected rejections and logged at warn level,
// everything else at error level.
func NewLoggerCommandWrapper[I command.Input, R command.Result](
	log logger.Logger,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &LoggerCommandWrapper[I, R]{
			logger: log.Named("cqrs.command.logger").With("command_name", cmdName),
			next:   next,
		}
	}
}

func (cmd *LoggerCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	start := time.Now()

	result, err := cmd.next.Execute(ctx, input)

	log := cmd.logger.
		WithContext(ctx).
		With("execution_time", time.Since(start).String())

	if err == nil {
		log.Info("command executed")
		return result, nil
	}

	e := errx.AsErrorX(err)
	log = log.With("error", map[string]any{
		"code":    e.Code(),
		"message": e.Error(),
		"type":    e.Type().String(),
		"trace":   e.Trace(),
		"fields":  e.Fields(),
		"details": e.Details(),
	})

	if isRejection(e) {
		log.Warn("command rejected")
	} else {
		log.Error("command failed")
	}

	return result, err
}

func isRejection(e errx.ErrorX) bool {
	switch e.Type() { //nolint:exhaustive // everything else is a failure
	case errx.T_Validation, errx.T_Conflict:
		return true
	default:
		return false
	}
}
