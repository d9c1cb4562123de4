package report

import (
	"github.com/shopspring/decimal"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

// Commission adjusts hourly rates: rates below Threshold get Flat added,
// the others are multiplied by Multiplier.
type Commission struct {
	Threshold  float64 `form:"threshold" validate:"min=0"`
	Flat       float64 `form:"flat"`
	Multiplier float64 `form:"multiplier" validate:"gt=0"`
}

// Validate rejects a commission that could take a rate below zero. Rates are
// never negative, so a negative Flat is the only way to get there.
func (c Commission) Validate() error {
	if c.Flat < 0 {
		return validation.CustomValidationErrors{
			{Field: "flat", Message: "must not be negative"},
		}
	}
	return nil
}

// DefaultCommission adds 0.3 below 10 an hour and 10% from 10 up.
var DefaultCommission = Commission{Threshold: 10, Flat: 0.3, Multiplier: 1.10}

type AcceptedAppointment struct {
	AppointmentID    int64  `json:"appointment_id" db:"appointment_id"`
	CaregiverName    string `json:"caregiver_name" db:"caregiver_name"`
	CaregiverSurname string `json:"caregiver_surname" db:"caregiver_surname"`
	MemberName       string `json:"member_name" db:"member_name"`
	MemberSurname    string `json:"member_surname" db:"member_surname"`
}

type JobRequirement struct {
	JobID             int64  `json:"job_id" db:"job_id"`
	OtherRequirements string `json:"other_requirements" db:"other_requirements"`
}

type AppointmentHours struct {
	AppointmentID   int64      `json:"appointment_id" db:"appointment_id"`
	WorkHours       int32      `json:"work_hours" db:"work_hours"`
	AppointmentDate model.Date `json:"appointment_date" db:"appointment_date"`
}

type MemberSeekingCare struct {
	MemberUserID int64  `json:"member_user_id" db:"member_user_id"`
	GivenName    string `json:"given_name" db:"given_name"`
	Surname      string `json:"surname" db:"surname"`
	HouseRules   string `json:"house_rules" db:"house_rules"`
}

// ApplicantCount is the number of applications a job received, zero included.
type ApplicantCount struct {
	JobID                  int64  `json:"job_id" db:"job_id"`
	RequiredCaregivingType string `json:"required_caregiving_type" db:"required_caregiving_type"`
	PostedBy               string `json:"posted_by" db:"posted_by"`
	ApplicantCount         int64  `json:"applicant_count" db:"applicant_count"`
}

type CaregiverHours struct {
	CaregiverUserID int64  `json:"caregiver_user_id" db:"caregiver_user_id"`
	CaregiverName   string `json:"caregiver_name" db:"caregiver_name"`
	CaregivingType  string `json:"caregiving_type" db:"caregiving_type"`
	TotalHours      int64  `json:"total_hours" db:"total_hours"`
}

type CaregiverAverageRate struct {
	CaregiverUserID  int64   `json:"caregiver_user_id" db:"caregiver_user_id"`
	CaregiverName    string  `json:"caregiver_name" db:"caregiver_name"`
	AvgHourlyRate    float64 `json:"avg_hourly_rate" db:"avg_hourly_rate"`
	AppointmentCount int64   `json:"appointment_count" db:"appointment_count"`
}

type CaregiverEarnings struct {
	CaregiverUserID int64           `json:"caregiver_user_id" db:"caregiver_user_id"`
	CaregiverName   string          `json:"caregiver_name" db:"caregiver_name"`
	HourlyRate      float64         `json:"hourly_rate" db:"hourly_rate"`
	TotalEarnings   decimal.Decimal `json:"total_earnings" db:"total_earnings"`
}

// AppointmentCost is derived at query time and never stored.
type AppointmentCost struct {
	AppointmentID int64           `json:"appointment_id" db:"appointment_id"`
	CaregiverName string          `json:"caregiver_name" db:"caregiver_name"`
	MemberName    string          `json:"member_name" db:"member_name"`
	WorkHours     int32           `json:"work_hours" db:"work_hours"`
	HourlyRate    float64         `json:"hourly_rate" db:"hourly_rate"`
	TotalCost     decimal.Decimal `json:"total_cost" db:"total_cost"`
}

// ApplicationView is one row of job_applications_view.
type ApplicationView struct {
	JobID                  int64      `json:"job_id" db:"job_id"`
	RequiredCaregivingType string     `json:"required_caregiving_type" db:"required_caregiving_type"`
	OtherRequirements      string     `json:"other_requirements" db:"other_requirements"`
	PostedBy               string     `json:"posted_by" db:"posted_by"`
	CaregiverUserID        int64      `json:"caregiver_user_id" db:"caregiver_user_id"`
	ApplicantName          string     `json:"applicant_name" db:"applicant_name"`
	ApplicantType          string     `json:"applicant_type" db:"applicant_type"`
	ApplicantRate          float64    `json:"applicant_rate" db:"applicant_rate"`
	DateApplied            model.Date `json:"date_applied" db:"date_applied"`
}
