package report

import (
	"context"

	"github.com/GenghisKhal/assignment3/internal/model"
)

// AcceptedAppointments lists the caregiver and member names of every
// accepted appointment.
func (r *Reporter) AcceptedAppointments(ctx context.Context) ([]AcceptedAppointment, error) {
	return collect[AcceptedAppointment](ctx, r.pool, `
		SELECT
			a.appointment_id,
			uc.given_name AS caregiver_name,
			uc.surname AS caregiver_surname,
			um.given_name AS member_name,
			um.surname AS member_surname
		FROM appointments a
		JOIN users uc ON a.caregiver_user_id = uc.user_id
		JOIN users um ON a.member_user_id = um.user_id
		WHERE a.status = $1
		ORDER BY a.appointment_id`,
		model.StatusAccepted,
	)
}

// SearchJobRequirements finds jobs whose other requirements contain term,
// ignoring case.
func (r *Reporter) SearchJobRequirements(ctx context.Context, term string) ([]JobRequirement, error) {
	return collect[JobRequirement](ctx, r.pool, `
		SELECT job_id, other_requirements
		FROM jobs
		WHERE other_requirements ILIKE '%' || $1 || '%'
		ORDER BY job_id`,
		term,
	)
}

// AppointmentHoursByCaregivingType lists the work hours of appointments with
// caregivers of the given type.
func (r *Reporter) AppointmentHoursByCaregivingType(ctx context.Context, caregivingType string) ([]AppointmentHours, error) {
	return collect[AppointmentHours](ctx, r.pool, `
		SELECT a.appointment_id, a.work_hours, a.appointment_date
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		WHERE c.caregiving_type = $1
		ORDER BY a.appointment_id`,
		caregivingType,
	)
}

// MembersSeekingCare lists members in city who posted a job for careType
// and whose house rules mention houseRule.
func (r *Reporter) MembersSeekingCare(ctx context.Context, careType, city, houseRule string) ([]MemberSeekingCare, error) {
	return collect[MemberSeekingCare](ctx, r.pool, `
		SELECT DISTINCT m.member_user_id, u.given_name, u.surname, m.house_rules
		FROM members m
		JOIN users u ON m.member_user_id = u.user_id
		JOIN jobs j ON m.member_user_id = j.member_user_id
		WHERE j.required_caregiving_type = $1
		AND u.city = $2
		AND m.house_rules ILIKE '%' || $3 || '%'
		ORDER BY m.member_user_id`,
		careType, city, houseRule,
	)
}

// ApplicantCounts counts the applications of every job. Jobs nobody applied
// to are reported with zero.
func (r *Reporter) ApplicantCounts(ctx context.Context) ([]ApplicantCount, error) {
	return collect[ApplicantCount](ctx, r.pool, `
		SELECT
			j.job_id,
			j.required_caregiving_type,
			u.given_name || ' ' || u.surname AS posted_by,
			COUNT(ja.caregiver_user_id) AS applicant_count
		FROM jobs j
		JOIN users u ON j.member_user_id = u.user_id
		LEFT JOIN job_applications ja ON j.job_id = ja.job_id
		GROUP BY j.job_id, j.required_caregiving_type, u.given_name, u.surname
		ORDER BY applicant_count DESC, j.job_id`)
}

// AcceptedHoursByCaregiver sums the hours of each caregiver's accepted
// appointments.
func (r *Reporter) AcceptedHoursByCaregiver(ctx context.Context) ([]CaregiverHours, error) {
	return collect[CaregiverHours](ctx, r.pool, `
		SELECT
			c.caregiver_user_id,
			u.given_name || ' ' || u.surname AS caregiver_name,
			c.caregiving_type,
			SUM(a.work_hours) AS total_hours
		FROM caregivers c
		JOIN users u ON c.caregiver_user_id = u.user_id
		JOIN appointments a ON c.caregiver_user_id = a.caregiver_user_id
		WHERE a.status = $1
		GROUP BY c.caregiver_user_id, u.given_name, u.surname, c.caregiving_type
		ORDER BY total_hours DESC, c.caregiver_user_id`,
		model.StatusAccepted,
	)
}

// AverageRateByCaregiver reports each caregiver's average rate over their
// accepted appointments and how many there were.
func (r *Reporter) AverageRateByCaregiver(ctx context.Context) ([]CaregiverAverageRate, error) {
	return collect[CaregiverAverageRate](ctx, r.pool, `
		SELECT
			c.caregiver_user_id,
			u.given_name || ' ' || u.surname AS caregiver_name,
			AVG(c.hourly_rate) AS avg_hourly_rate,
			COUNT(a.appointment_id) AS appointment_count
		FROM caregivers c
		JOIN users u ON c.caregiver_user_id = u.user_id
		JOIN appointments a ON c.caregiver_user_id = a.caregiver_user_id
		WHERE a.status = $1
		GROUP BY c.caregiver_user_id, u.given_name, u.surname
		ORDER BY avg_hourly_rate DESC, c.caregiver_user_id`,
		model.StatusAccepted,
	)
}

// AboveAverageEarners lists caregivers whose accepted earnings (hours times
// rate, summed) are strictly above the mean of every caregiver's earnings.
// Earnings are summed and averaged in NUMERIC so equal totals compare equal
// to their mean.
func (r *Reporter) AboveAverageEarners(ctx context.Context) ([]CaregiverEarnings, error) {
	return collect[CaregiverEarnings](ctx, r.pool, `
		SELECT
			c.caregiver_user_id,
			u.given_name || ' ' || u.surname AS caregiver_name,
			c.hourly_rate,
			SUM(a.work_hours * c.hourly_rate::numeric) AS total_earnings
		FROM caregivers c
		JOIN users u ON c.caregiver_user_id = u.user_id
		JOIN appointments a ON c.caregiver_user_id = a.caregiver_user_id
		WHERE a.status = $1
		GROUP BY c.caregiver_user_id, u.given_name, u.surname, c.hourly_rate
		HAVING SUM(a.work_hours * c.hourly_rate::numeric) > (
			SELECT AVG(total_earnings)
			FROM (
				SELECT SUM(a2.work_hours * c2.hourly_rate::numeric) AS total_earnings
				FROM caregivers c2
				JOIN appointments a2 ON c2.caregiver_user_id = a2.caregiver_user_id
				WHERE a2.status = $1
				GROUP BY c2.caregiver_user_id
			) AS earnings
		)
		ORDER BY total_earnings DESC, c.caregiver_user_id`,
		model.StatusAccepted,
	)
}

// AppointmentCosts prices every accepted appointment at work hours times the
// caregiver's current hourly rate.
func (r *Reporter) AppointmentCosts(ctx context.Context) ([]AppointmentCost, error) {
	return collect[AppointmentCost](ctx, r.pool, `
		SELECT
			a.appointment_id,
			uc.given_name || ' ' || uc.surname AS caregiver_name,
			um.given_name || ' ' || um.surname AS member_name,
			a.work_hours,
			c.hourly_rate,
			(a.work_hours * c.hourly_rate::numeric) AS total_cost
		FROM appointments a
		JOIN caregivers c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN users uc ON c.caregiver_user_id = uc.user_id
		JOIN users um ON a.member_user_id = um.user_id
		WHERE a.status = $1
		ORDER BY total_cost DESC, a.appointment_id`,
		model.StatusAccepted,
	)
}

// JobApplicationsView reads job_applications_view, ordered by job then date
// applied.
func (r *Reporter) JobApplicationsView(ctx context.Context) ([]ApplicationView, error) {
	return collect[ApplicationView](ctx, r.pool, `
		SELECT
			job_id, required_caregiving_type, other_requirements, posted_by,
			caregiver_user_id, applicant_name, applicant_type, applicant_rate, date_applied
		FROM job_applications_view
		ORDER BY job_id, date_applied, caregiver_user_id`)
}
