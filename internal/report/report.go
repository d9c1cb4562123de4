// Package report holds the reporting queries: parameterized batch updates
// and deletes, join and aggregate reports, and the job applications view.
// It shares the pool with the repositories but none of their code paths.
package report

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/GenghisKhal/assignment3/internal/database"
	loggerPkg "github.com/GenghisKhal/assignment3/internal/logger"
	"github.com/GenghisKhal/assignment3/internal/schema"
	"github.com/GenghisKhal/assignment3/internal/sqlerr"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

type Reporter struct {
	pool   database.Pool
	logger *zerolog.Logger
}

func New(pool database.Pool, logger *zerolog.Logger) *Reporter {
	return &Reporter{pool: pool, logger: logger}
}

// UpdatePhoneByName sets the phone number of every user named exactly
// given surname and returns the rows changed.
func (r *Reporter) UpdatePhoneByName(ctx context.Context, given, surname, phone string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET phone_number = $3
		WHERE given_name = $1 AND surname = $2`,
		given, surname, phone,
	)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}

	r.log(ctx).Info().
		Str("given_name", given).
		Str("surname", surname).
		Int64("rows", tag.RowsAffected()).
		Msg("phone number updated")
	return tag.RowsAffected(), nil
}

// ApplyCommission adjusts every caregiver's hourly rate in one statement.
// Applying it twice compounds.
func (r *Reporter) ApplyCommission(ctx context.Context, c Commission) (int64, error) {
	if err := validation.Struct(&c); err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE caregivers
		SET hourly_rate = CASE
			WHEN hourly_rate < $1 THEN hourly_rate + $2
			ELSE hourly_rate * $3
		END`,
		c.Threshold, c.Flat, c.Multiplier,
	)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}

	r.log(ctx).Info().
		Float64("threshold", c.Threshold).
		Float64("flat", c.Flat).
		Float64("multiplier", c.Multiplier).
		Int64("rows", tag.RowsAffected()).
		Msg("commission applied")
	return tag.RowsAffected(), nil
}

// DeleteJobsByPoster removes the jobs posted by users named given surname,
// with the applications made to them.
func (r *Reporter) DeleteJobsByPoster(ctx context.Context, given, surname string) (database.Deleted, error) {
	return r.cascade(ctx, "delete_jobs_by_poster", schema.Jobs, `
		SELECT job_id
		FROM jobs
		WHERE member_user_id IN (
			SELECT user_id
			FROM users
			WHERE given_name = $1 AND surname = $2
		)
		FOR UPDATE`,
		given, surname,
	)
}

// DeleteMembersOnStreet removes every user whose member address is on
// street, with everything that depends on them.
func (r *Reporter) DeleteMembersOnStreet(ctx context.Context, street string) (database.Deleted, error) {
	return r.cascade(ctx, "delete_members_on_street", schema.Users, `
		SELECT m.member_user_id
		FROM members m
		JOIN addresses a ON m.member_user_id = a.member_user_id
		WHERE a.street = $1
		FOR UPDATE OF m`,
		street,
	)
}

// cascade resolves the ids of root selected by query and deletes them with
// their dependents in one transaction.
func (r *Reporter) cascade(ctx context.Context, op, root, query string, args ...any) (database.Deleted, error) {
	var deleted database.Deleted
	err := database.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return err
		}

		deleted, err = database.Cascade(ctx, tx, root, ids)
		return err
	})
	if err != nil {
		r.log(ctx).Warn().Err(err).Str("operation", op).Msg("transaction rolled back")
		return nil, sqlerr.HandleError(err)
	}

	r.log(ctx).Info().
		Str("operation", op).
		Int64(root, deleted[root]).
		Int64("rows", deleted.Total()).
		Msg("rows deleted")
	return deleted, nil
}

func (r *Reporter) log(ctx context.Context) *zerolog.Logger {
	return loggerPkg.FromContext(ctx, r.logger)
}

// EnsureApplicationsView creates or replaces job_applications_view.
func (r *Reporter) EnsureApplicationsView(ctx context.Context) error {
	sql, err := database.ApplicationsViewSQL()
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, sql); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}

func collect[T any](ctx context.Context, db database.DBTX, sql string, args ...any) ([]T, error) {
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
