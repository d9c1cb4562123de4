package repository

import (
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/model"
)

func newRepos(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	return New(mock, &logger), mock
}

func columns(list string) []string {
	cols := strings.Split(list, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func userRows(users ...model.User) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns(userColumns))
	for _, u := range users {
		rows.AddRow(u.UserID, u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password)
	}
	return rows
}

func caregiverRows(cs ...model.Caregiver) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns(caregiverColumns))
	for _, c := range cs {
		rows.AddRow(c.CaregiverUserID, c.Photo, c.Gender, c.CaregivingType, c.HourlyRate)
	}
	return rows
}

func memberRows(ms ...model.Member) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns(memberColumns))
	for _, m := range ms {
		rows.AddRow(m.MemberUserID, m.HouseRules, m.DependentDescription)
	}
	return rows
}

func jobRows(jobs ...model.Job) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns(jobColumns))
	for _, j := range jobs {
		rows.AddRow(j.JobID, j.MemberUserID, j.RequiredCaregivingType, j.OtherRequirements, j.DatePosted)
	}
	return rows
}

func appointmentRows(as ...model.Appointment) *pgxmock.Rows {
	rows := pgxmock.NewRows(columns(appointmentColumns))
	for _, a := range as {
		rows.AddRow(a.AppointmentID, a.CaregiverUserID, a.MemberUserID, a.AppointmentDate, a.AppointmentTime, a.WorkHours, a.Status)
	}
	return rows
}

var arman = model.User{
	UserID:    1,
	Email:     "arman@example.kz",
	GivenName: "Arman",
	Surname:   "Armanov",
	City:      "Astana",
}
