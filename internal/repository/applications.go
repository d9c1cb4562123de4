package repository

import (
	"context"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/schema"
	"github.com/GenghisKhal/assignment3/internal/sqlerr"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

const applicationColumns = "caregiver_user_id, job_id, date_applied"

type ApplicationRepository struct {
	base
}

// CreateApplication records a caregiver applying to a job. An unset
// DateApplied becomes today; applying twice is a Conflict error.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app model.JobApplication) (*model.JobApplication, error) {
	if err := validation.Struct(&app); err != nil {
		return nil, err
	}
	if !app.DateApplied.Valid {
		app.DateApplied = model.Today()
	}

	return queryOne[model.JobApplication](ctx, r.pool, schema.JobApplications,
		insertSQL(schema.JobApplications, []string{"caregiver_user_id", "job_id", "date_applied"}, applicationColumns),
		app.CaregiverUserID, app.JobID, app.DateApplied,
	)
}

// DeleteApplication removes the application identified by its composite key
// and returns the rows removed; a missing application is not an error.
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, caregiverID, jobID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM job_applications WHERE caregiver_user_id = $1 AND job_id = $2`, caregiverID, jobID)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *ApplicationRepository) GetApplication(ctx context.Context, caregiverID, jobID int64) (*model.JobApplication, error) {
	return queryOne[model.JobApplication](ctx, r.pool, schema.JobApplications, `
		SELECT `+applicationColumns+`
		FROM job_applications
		WHERE caregiver_user_id = $1 AND job_id = $2`,
		caregiverID, jobID,
	)
}

func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]model.JobApplication, error) {
	return queryAll[model.JobApplication](ctx, r.pool,
		`SELECT `+applicationColumns+` FROM job_applications ORDER BY job_id, date_applied, caregiver_user_id`)
}
