package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/model"
)

func TestCreateApplicationTwiceConflicts(t *testing.T) {
	repos, mock := newRepos(t)

	mock.ExpectQuery("INSERT INTO job_applications").
		WithArgs(int64(2), int64(7), model.Today()).
		WillReturnRows(pgxmock.NewRows(columns(applicationColumns)).AddRow(int64(2), int64(7), model.Today()))
	mock.ExpectQuery("INSERT INTO job_applications").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "job_applications", ConstraintName: "job_applications_pkey"})

	app := model.JobApplication{CaregiverUserID: 2, JobID: 7}
	got, err := repos.Applications.CreateApplication(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, model.Today(), got.DateApplied)

	_, err = repos.Applications.CreateApplication(context.Background(), app)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteApplicationByCompositeKey(t *testing.T) {
	repos, mock := newRepos(t)
	mock.ExpectExec(`DELETE FROM job_applications WHERE caregiver_user_id = \$1 AND job_id = \$2`).
		WithArgs(int64(2), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	n, err := repos.Applications.DeleteApplication(context.Background(), 2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
