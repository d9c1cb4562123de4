package repository

import (
	"context"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/schema"
	"github.com/GenghisKhal/assignment3/internal/sqlerr"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

const appointmentColumns = "appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status"

type AppointmentRepository struct {
	base
}

// CreateAppointment inserts an appointment. The status is always Pending,
// whatever the caller put in appt.Status.
func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appt model.Appointment) (*model.Appointment, error) {
	appt.Status = model.StatusPending
	if err := validation.Struct(&appt); err != nil {
		return nil, err
	}

	if err := reserveID(ctx, r.pool, schema.Appointments, "appointment_id", appt.AppointmentID); err != nil {
		return nil, err
	}

	cols, args := withOptionalID("appointment_id",
		appt.AppointmentID,
		[]string{"caregiver_user_id", "member_user_id", "appointment_date", "appointment_time", "work_hours", "status"},
		[]any{appt.CaregiverUserID, appt.MemberUserID, appt.AppointmentDate, appt.AppointmentTime, appt.WorkHours, appt.Status},
	)
	return queryOne[model.Appointment](ctx, r.pool, schema.Appointments,
		insertSQL(schema.Appointments, cols, appointmentColumns), args...)
}

// UpdateAppointmentStatus changes the status and nothing else. Any string is
// accepted. A missing appointment is a NotFound error.
func (r *AppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*model.Appointment, error) {
	return queryOne[model.Appointment](ctx, r.pool, schema.Appointments, `
		UPDATE appointments
		SET status = $2
		WHERE appointment_id = $1
		RETURNING `+appointmentColumns,
		appointmentID, status,
	)
}

// DeleteAppointment removes an appointment and returns the rows removed;
// a missing appointment is not an error.
func (r *AppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, appointmentID)
	if err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *AppointmentRepository) GetAppointment(ctx context.Context, appointmentID int64) (*model.Appointment, error) {
	return queryOne[model.Appointment](ctx, r.pool, schema.Appointments,
		`SELECT `+appointmentColumns+` FROM appointments WHERE appointment_id = $1`, appointmentID)
}

func (r *AppointmentRepository) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return queryAll[model.Appointment](ctx, r.pool,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY appointment_id`)
}
