// Package repository is the data-access layer: one repository per aggregate,
// each method a single atomic operation over the schema. Multi-statement
// writes run in one READ COMMITTED transaction that is rolled back in full on
// any error. Every error returned is an *errs.HTTPError.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/GenghisKhal/assignment3/internal/database"
	loggerPkg "github.com/GenghisKhal/assignment3/internal/logger"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/sqlerr"
)

type Repositories struct {
	Users        *UserRepository
	Jobs         *JobRepository
	Appointments *AppointmentRepository
	Applications *ApplicationRepository
}

// NewRepositories wires every repository to the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool, s.Logger)
}

// New wires every repository to pool.
func New(pool database.Pool, logger *zerolog.Logger) *Repositories {
	b := base{pool: pool, logger: logger}
	return &Repositories{
		Users:        &UserRepository{base: b},
		Jobs:         &JobRepository{base: b},
		Appointments: &AppointmentRepository{base: b},
		Applications: &ApplicationRepository{base: b},
	}
}

type base struct {
	pool   database.Pool
	logger *zerolog.Logger
}

// log prefers the request-scoped logger carried by ctx.
func (b base) log(ctx context.Context) *zerolog.Logger {
	return loggerPkg.FromContext(ctx, b.logger)
}

// withTx runs fn in a transaction and maps the resulting error.
func (b base) withTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	err := database.WithTx(ctx, b.pool, fn)
	if err != nil {
		b.log(ctx).Warn().
			Err(err).
			Str("operation", op).
			Msg("transaction rolled back")
		return sqlerr.HandleError(err)
	}

	b.log(ctx).Debug().Str("operation", op).Msg("transaction committed")
	return nil
}

// insertSQL builds "INSERT INTO table (cols) VALUES ($1, ...) RETURNING returning".
func insertSQL(table string, cols []string, returning string) string {
	params := make([]string, len(cols))
	for i := range cols {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(cols, ", "), strings.Join(params, ", "), returning)
}

// withOptionalID prepends the key column when the caller supplied an id;
// otherwise the identity column generates one.
func withOptionalID(idCol string, id int64, cols []string, args []any) ([]string, []any) {
	if id == 0 {
		return cols, args
	}
	return append([]string{idCol}, cols...), append([]any{id}, args...)
}

// reserveID moves the identity sequence of table.col to at least id, so a
// key inserted explicitly is never handed out again by a generated insert.
// Sequence changes are not transactional; a failed insert only leaves a gap.
func reserveID(ctx context.Context, db database.DBTX, table, col string, id int64) error {
	if id == 0 {
		return nil
	}

	_, err := db.Exec(ctx, fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), GREATEST(MAX(%[2]s), $1::bigint)) FROM %[1]s`,
		table, col), id)
	return sqlerr.HandleError(err)
}

// notFound tags a pgx.ErrNoRows with the table it came from.
func notFound(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}

func queryOne[T any](ctx context.Context, db database.DBTX, table, sql string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, sqlerr.HandleError(notFound(table, err))
	}
	return &item, nil
}

func queryAll[T any](ctx context.Context, db database.DBTX, sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}
