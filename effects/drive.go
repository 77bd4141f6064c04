package effects

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/on-the-ground/effect_drive_go/effects"

// DriveConfig holds the settings of a single drive.
type DriveConfig struct {
	DefaultHandler Handler
	Logger         *zap.Logger
	Tracer         trace.Tracer
	Interceptors   []Interceptor
}

// Option configures a drive.
type Option func(*DriveConfig)

// WithDefaultHandler sets the handler used for effects absent from the handler map.
func WithDefaultHandler(h Handler) Option {
	return func(c *DriveConfig) { c.DefaultHandler = h }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *DriveConfig) { c.Logger = logger }
}

// WithTracer sets the tracer used for the drive span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *DriveConfig) { c.Tracer = tracer }
}

// WithInterceptor adds an interceptor around every dispatched handler.
// The first interceptor added is the outermost.
func WithInterceptor(i Interceptor) Option {
	return func(c *DriveConfig) { c.Interceptors = append(c.Interceptors, i) }
}

// NewDriveConfig applies opts over the defaults: no default handler,
// a no-op logger and the global otel tracer.
func NewDriveConfig(opts ...Option) DriveConfig {
	cfg := DriveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	return cfg
}

func (c DriveConfig) intercept(h Handler) Handler {
	for i := len(c.Interceptors) - 1; i >= 0; i-- {
		h = c.Interceptors[i](h)
	}
	return h
}

// Drive runs c to completion, resolving every effect it yields.
//
// Each effect is dispatched to the handler registered for its runtime type in
// handlers, falling back to the default handler, and the handler's return value
// resumes the computation. Effects are handled strictly in emission order.
// The final value is returned unchanged.
//
// Drive fails with:
//   - *UnhandledEffectError when no handler matches and no default handler is set;
//   - the handler's error, wrapped with the effect type, when a handler fails;
//   - the computation's error, e.g. a failed Expect or Raise guard.
//
// A suspended computation is discarded before Drive returns early, including
// when a handler panics.
func Drive[R any](
	ctx context.Context,
	c Computation[R],
	handlers HandlerMap,
	opts ...Option,
) (ret R, err error) {
	cfg := NewDriveConfig(opts...)
	driveId := uuid.New().String()
	logger := cfg.Logger.With(zap.String("driveId", driveId))

	ctx, span := cfg.Tracer.Start(ctx, "effects.Drive",
		trace.WithAttributes(attribute.String("effects.drive_id", driveId)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var zero R
	ret, susp, err := Start(c)
	defer func() {
		if susp != nil {
			susp.Discard()
		}
	}()
	lastEffect := ""
	handled := 0
	for susp != nil {
		eff := susp.Effect()
		effType := typeName(eff)

		h, resolveErr := resolve(handlers, cfg.DefaultHandler, eff)
		if resolveErr != nil {
			logger.Debug("unhandled effect", zap.String("effectType", effType))
			return zero, resolveErr
		}

		span.AddEvent("effect", trace.WithAttributes(
			attribute.String("effects.type", effType),
			attribute.Int("effects.seq", handled),
		))
		logger.Debug("dispatching effect", zap.String("effectType", effType), zap.Int("seq", handled))

		v, handleErr := cfg.intercept(h)(ctx, eff)
		if handleErr != nil {
			logger.Debug("effect handler failed", zap.String("effectType", effType), zap.Error(handleErr))
			return zero, fmt.Errorf("effect %s: %w", effType, handleErr)
		}

		lastEffect = effType
		handled++
		ret, susp, err = susp.Resume(v)
	}

	if err != nil {
		if lastEffect != "" && errors.Is(err, ErrEffectContractViolation) {
			err = fmt.Errorf("effect %s: %w", lastEffect, err)
		}
		logger.Debug("computation failed", zap.Error(err))
		return zero, err
	}

	logger.Debug("drive completed", zap.Int("effects", handled))
	span.SetAttributes(attribute.Int("effects.handled", handled))
	return ret, nil
}
