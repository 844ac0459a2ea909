package core

import (
	"context"
	"fmt"

	"github.com/eskrenkovic/mediator-go"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the process-wide logger used by the response writers.
// Called once from the composition root before any request is served.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func LogError(ctx context.Context, message string, fields ...zap.Field) {
	if correlationID := ctx.Value(CorrelationIDContextKey); correlationID != nil {
		fields = append(fields, zap.Any("correlation_id", correlationID))
	}

	logger.Error(message, fields...)
}

var _ mediator.PipelineBehavior = (*RequestLoggingBehavior)(nil)

type RequestLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *RequestLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	logFields := []zap.Field{
		zap.String("request_type", fmt.Sprintf("%T", request)),
	}

	correlationID := ctx.Value(CorrelationIDContextKey)
	if correlationID != nil && correlationID != "" {
		logFields = append(logFields, zap.Any("correlation_id", correlationID))
	}

	b.Logger.Info("processing request", logFields...)

	return next(ctx, request)
}

var _ mediator.PipelineBehavior = (*HandlerErrorLoggingBehavior)(nil)

// HandlerErrorLoggingBehavior logs handler failures with full detail.
// Response bodies stay generic for faults - the log line is the only
// place internal error text is allowed to appear.
type HandlerErrorLoggingBehavior struct {
	Logger *zap.Logger
}

func (b *HandlerErrorLoggingBehavior) Handle(
	ctx context.Context,
	request interface{},
	next mediator.RequestHandlerFunc,
) (interface{}, error) {
	response, err := next(ctx, request)
	if err != nil {
		b.Logger.Error(
			"handler returned error",
			zap.String("request_type", fmt.Sprintf("%T", request)),
			zap.Error(err),
		)
	}

	return response, err
}
