package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// Queries taking longer than this are logged as warnings.
const slowQueryThreshold = 200 * time.Millisecond

// logger writes gorm's log output to zerolog.
//
// Lookups that find nothing are expected in normal operation and are
// logged at debug level only.
type logger struct {
	zerolog.Logger
	level gorm_logger.LogLevel
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{Logger: l.With().Str("component", "gorm").Logger(), level: gorm_logger.Warn}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.Logger.Info().Msgf(msg, args...)
	}
}

func (l *logger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(msg, args...)
	}
}

func (l *logger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.Logger.Error().Msgf(msg, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	event := func(e *zerolog.Event) *zerolog.Event {
		return e.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed)
	}

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event(l.Logger.Error().Err(err)).Msg("query failed")
	case elapsed > slowQueryThreshold && l.level >= gorm_logger.Warn:
		event(l.Logger.Warn()).Dur("threshold", slowQueryThreshold).Msg("slow query")
	default:
		event(l.Logger.Debug()).Msg("query")
	}
}
