package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sarefinport/sarefinport/internal/id"
	"github.com/sarefinport/sarefinport/pkg/logging"
	"github.com/sarefinport/sarefinport/pkg/store"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultQueryTimeout bounds each store call when no timeout is configured.
const DefaultQueryTimeout = 5 * time.Second

// Option configures a Store.
type Option func(*options)

type options struct {
	log          *slog.Logger
	queryTimeout time.Duration
	maxOpenConns int
	now          func() time.Time
	newID        func() string
}

// WithLogger sets the logger used for slow and failed queries.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithQueryTimeout bounds every store call. Zero disables the bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(o *options) { o.queryTimeout = d }
}

// WithMaxOpenConns caps the Postgres connection pool. SQLite always uses a
// single connection.
func WithMaxOpenConns(n int) Option {
	return func(o *options) { o.maxOpenConns = n }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// Store is a gorm-backed store.Store.
type Store struct {
	db   *gorm.DB
	opts options
}

var _ store.Store = (*Store)(nil)

// Open connects to the database named by driver and dsn.
func Open(driver, dsn string, opts ...Option) (*Store, error) {
	o := options{
		log:          logging.Nop(),
		queryTimeout: DefaultQueryTimeout,
		now:          time.Now,
		newID:        id.New,
	}
	for _, opt := range opts {
		opt(&o)
	}

	dialector, err := newDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger(o.log),
		NowFunc:        func() time.Time { return o.now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if driver == DriverSQLite {
		// One connection serializes writers and keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	} else if o.maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(o.maxOpenConns)
		sqlDB.SetMaxIdleConns(o.maxOpenConns)
	}

	return &Store{db: db, opts: o}, nil
}

func newDialector(driver, dsn string) (gorm.Dialector, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database url is required")
	}
	switch driver {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(dsn)), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteDSN turns on foreign keys, which SQLite leaves off by default, and
// waits on locks instead of failing.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "file:")
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&store.AboutMe{},
		&store.ContactInfo{},
		&store.ContactMessage{},
		&store.Education{},
		&store.Project{},
		&store.Skill{},
		&store.SkillItem{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) About() store.AboutStore         { return &aboutStore{s} }
func (s *Store) Contact() store.ContactStore     { return &contactStore{s} }
func (s *Store) Education() store.EducationStore { return &educationStore{s} }
func (s *Store) Projects() store.ProjectStore    { return &projectStore{s} }
func (s *Store) Skills() store.SkillStore        { return &skillStore{s} }

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.queryTimeout)
}

// conn returns a session bound to a timeout-scoped context. The caller must
// call the returned cancel func.
func (s *Store) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := s.withTimeout(ctx)
	return s.db.WithContext(ctx), cancel
}

// transaction runs fn in a transaction and classifies its error.
func (s *Store) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	return classify(db.Transaction(fn))
}
