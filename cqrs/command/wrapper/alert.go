package wrapper

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/TechArp/CafeApp/cqrs/command"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/alert"
	"github.com/TechArp/CafeApp/observability/logger"
)

const alertTimeout = 3 * time.Second

type AlertCommandWrapper[I command.Input, R command.Result] struct {
	logger        logger.Logger
	alertProvider alert.Provider
	next          command.Command[I, R]
	operation     string
}

// NewAlertCommandWrapper reports internal failures of the wrapped chain to alertProvider.
// Rejections (validation and conflict errors) are not reported. The error is always
// returned unchanged.
func NewAlertCommandWrapper[I command.Input, R command.Result](
	log logger.Logger,
	alertProvider alert.Provider,
	cmdName string,
) command.WrapFunc[I, R] {
	return func(next command.Command[I, R]) command.Command[I, R] {
		return &AlertCommandWrapper[I, R]{
			logger:        log.Named("cqrs.command.alerting"),
			alertProvider: alertProvider,
			next:          next,
			operation:     "command: " + cmdName,
		}
	}
}

func (cmd *AlertCommandWrapper[I, R]) Execute(ctx context.Context, input I) (R, error) {
	result, err := cmd.next.Execute(ctx, input)
	if err == nil {
		return result, nil
	}

	e := errx.AsErrorX(err)
	if isRejection(e) {
		return result, err
	}

	details := make(map[string]string)
	for k, v := range meta.ExtractMetaFromContext(ctx) {
		details[string(k)] = v
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()

	if sendErr := cmd.alertProvider.SendError(sendCtx, e.Code(), err.Error(), cmd.operation, details); sendErr != nil {
		cmd.logger.With("alert_send_error", sendErr).Warn("failed to send error alert")
	}

	return result, err
}
