package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"addressbook/config"
	logs "addressbook/internal/infra/log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowStatementThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to slog. Statements are logged at Info only in debug;
// slow ones warn and failing ones error. A missing row is not a failure for this service.
type gormSlogLogger struct {
	logger   *slog.Logger
	level    logger.LogLevel
	slowOver time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:   baseLogger,
		level:    level,
		slowOver: slowStatementThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, needs logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < needs {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg, extra = slog.LevelError, "address query failed", slog.String("error", err.Error())
	case l.slowOver > 0 && elapsed > l.slowOver && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "slow address query", slog.Duration("slow_over", l.slowOver)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "address query"
	default:
		return
	}

	statement, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", statement),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// loggerFor prefers the request-scoped logger so statements carry the request ID.
func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, l.logger)
}
