package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/lifecycle"
	"addressbook/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the address book database. The connection is verified, and the schema
// optionally migrated, when the fx app starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open address book database")
	}
	// Writes that span statements go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap database handle")
	}

	monitor := &poolMonitor{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}
	stopMonitor := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "address book database is unreachable")
			}

			if params.Config.Migration != nil && params.Config.Migration.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			var monitorCtx context.Context
			monitorCtx, stopMonitor = context.WithCancel(context.Background())
			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples connection pool stats and reports requests that had to wait for a connection.
type poolMonitor struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.db == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				m.logger.LogAttrs(ctx, level, "Address book database pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport compares two pool samples. waited is false when no request queued
// for a connection between them.
func poolWaitReport(prev, cur sql.DBStats) (level slog.Level, attrs []slog.Attr, waited bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}
	waitTime := cur.WaitDuration - prev.WaitDuration

	attrs = []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("wait_time", waitTime),
		slog.Duration("avg_wait", waitTime/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	}

	level = slog.LevelDebug
	if waitTime >= poolSlowWait {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
