package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/config"
	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/handler"
	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/report"
	"github.com/GenghisKhal/assignment3/internal/repository"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	s := &server.Server{Config: config.Default(), Logger: &logger}

	repos := repository.New(mock, &logger)
	services := &service.Services{Reports: service.NewReportService(report.New(mock, &logger))}

	return NewRouter(s, handler.NewHandlers(s, repos, services)), mock
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateJobReturnsCreated(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectExec("setval").WithArgs(int64(7)).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery("INSERT INTO jobs").
		WithArgs(int64(7), int64(4), "Babysitter", "", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"job_id", "member_user_id", "required_caregiving_type", "other_requirements", "date_posted"}).
			AddRow(int64(7), int64(4), "Babysitter", "", model.NewDate(2025, 1, 10)))

	rec := do(t, h, http.MethodPost, "/api/v1/jobs", url.Values{
		"job_id":                   {"7"},
		"member_user_id":           {" 4 "},
		"required_caregiving_type": {"Babysitter"},
		"date_posted":              {"2025-01-10"},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var job map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.EqualValues(t, 7, job["job_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJobRejectsMissingFieldsBeforeQuerying(t *testing.T) {
	h, mock := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/jobs", url.Values{"other_requirements": {"none"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	fields := map[string]string{}
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", fields["member_user_id"])
	assert.Equal(t, "is required", fields["required_caregiving_type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMalformedPathParameter(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/users/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorBody(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "id", body.Errors[0].Field)
	assert.Equal(t, "must be a whole number", body.Errors[0].Error)
}

func TestDeleteApplicationByCompositeKey(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectExec("DELETE FROM job_applications").
		WithArgs(int64(3), int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rec := do(t, h, http.MethodDelete, "/api/v1/applications/3/9", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":0}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportsListed(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/reports", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var reports []service.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.NotEmpty(t, reports)
	assert.Equal(t, "update-phone", reports[0].Name)
	assert.True(t, reports[0].Write)
}

func TestRunReadReport(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery("LEFT JOIN job_applications").
		WillReturnRows(pgxmock.NewRows([]string{"job_id", "required_caregiving_type", "posted_by", "applicant_count"}).
			AddRow(int64(2), "Elderly Care", "Amina Aminova", int64(0)))

	rec := do(t, h, http.MethodGet, "/api/v1/reports/applicant-counts", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t,
		`[{"job_id":2,"required_caregiving_type":"Elderly Care","posted_by":"Amina Aminova","applicant_count":0}]`,
		rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunWriteReportWithParameters(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("Arman", "Armanov", "+77770000000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	rec := do(t, h, http.MethodPost, "/api/v1/reports/update-phone", url.Values{"phone": {"+77770000000"}})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"rows":1}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteReportRefusedOverGet(t *testing.T) {
	h, mock := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/reports/commission", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", errorBody(t, rec).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnknownReport(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/reports/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `Report "nope" not found`, errorBody(t, rec).Message)
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v2/jobs", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", errorBody(t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
