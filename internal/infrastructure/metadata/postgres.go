package metadata

import (
	"context"
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"

	"github.com/shortsync/shortsync/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

type PostgresStore struct {
	cfg config.PostgreSQL
	db  *sql.DB
}

func NewPostgresStore(ctx context.Context, cfg config.PostgreSQL) (*PostgresStore, error) {
	db, err := sql.Open("pgx", cfg.ConnString)
	if err != nil {
		return nil, errors.Wrap(err, "[postgres] open")
	}

	s := &PostgresStore{
		cfg: cfg,
		db:  db,
	}

	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	if err := s.migrate(); err != nil {
		return nil, errors.Wrap(err, "[postgres] migrate")
	}

	return s, nil
}

func (s *PostgresStore) migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := migratepg.WithInstance(s.db, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	cancelCtx, cancel := context.WithTimeout(ctx, s.cfg.PingTimeout)
	defer cancel()

	err := s.db.PingContext(cancelCtx)
	if err != nil {
		return errors.Wrap(err, "[postgres] ping")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, postID int64, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT meta_value FROM post_meta WHERE post_id = $1 AND meta_key = $2`,
		postID, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "[postgres] get %s", key)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, postID int64, key, value string) error {
	_, err := s.db.ExecContext(ctx, upsertQuery, postID, key, value)
	if err != nil {
		return errors.Wrapf(err, "[postgres] set %s", key)
	}
	return nil
}

func (s *PostgresStore) SetMany(ctx context.Context, postID int64, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "[postgres] begin tx")
	}
	defer tx.Rollback()

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, upsertQuery, postID, key, value); err != nil {
			return errors.Wrapf(err, "[postgres] set %s", key)
		}
	}

	return errors.Wrap(tx.Commit(), "[postgres] commit")
}

const upsertQuery = `
	INSERT INTO post_meta (post_id, meta_key, meta_value)
	VALUES ($1, $2, $3)
	ON CONFLICT (post_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value`

// Backup and Restore are no-ops: postgres is durable on its own.
func (s *PostgresStore) Backup(ctx context.Context) error {
	return nil
}

func (s *PostgresStore) Restore(ctx context.Context) error {
	return nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	return s.db.Close()
}
