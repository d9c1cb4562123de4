package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/GenghisKhal/assignment3/internal/database"
	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/schema"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

const jobColumns = "job_id, member_user_id, required_caregiving_type, other_requirements, date_posted"

type JobRepository struct {
	base
}

// CreateJob inserts a job. An unset DatePosted becomes today.
func (r *JobRepository) CreateJob(ctx context.Context, job model.Job) (*model.Job, error) {
	if err := validation.Struct(&job); err != nil {
		return nil, err
	}
	if !job.DatePosted.Valid {
		job.DatePosted = model.Today()
	}

	if err := reserveID(ctx, r.pool, schema.Jobs, "job_id", job.JobID); err != nil {
		return nil, err
	}

	cols, args := withOptionalID("job_id",
		job.JobID,
		[]string{"member_user_id", "required_caregiving_type", "other_requirements", "date_posted"},
		[]any{job.MemberUserID, job.RequiredCaregivingType, job.OtherRequirements, job.DatePosted},
	)
	return queryOne[model.Job](ctx, r.pool, schema.Jobs, insertSQL(schema.Jobs, cols, jobColumns), args...)
}

// DeleteJob removes the job and the applications made to it. It returns the
// number of job rows removed; a missing job is not an error.
func (r *JobRepository) DeleteJob(ctx context.Context, jobID int64) (int64, error) {
	var deleted database.Deleted
	err := r.withTx(ctx, "delete_job", func(tx pgx.Tx) error {
		var err error
		deleted, err = database.Cascade(ctx, tx, schema.Jobs, []int64{jobID})
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted[schema.Jobs], nil
}

func (r *JobRepository) GetJob(ctx context.Context, jobID int64) (*model.Job, error) {
	return queryOne[model.Job](ctx, r.pool, schema.Jobs,
		`SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, jobID)
}

func (r *JobRepository) ListJobs(ctx context.Context) ([]model.Job, error) {
	return queryAll[model.Job](ctx, r.pool, `SELECT `+jobColumns+` FROM jobs ORDER BY job_id`)
}
