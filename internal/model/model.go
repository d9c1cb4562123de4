// Package model holds the care-marketplace entities, the tagged user role
// and the form payloads decoded at the request boundary.
//
// Struct tags:
//   - json: response shape
//   - db: column name, used by pgx.RowToStructByName
//   - form: request field name, used by the validation package
//   - validate: go-playground/validator rules mirroring the NOT NULL/CHECK
//     constraints of the schema
package model

// User is the base identity for caregivers and members.
type User struct {
	UserID             int64  `json:"user_id" db:"user_id" form:"user_id"`
	Email              string `json:"email" db:"email" form:"email" validate:"required"`
	GivenName          string `json:"given_name" db:"given_name" form:"given_name" validate:"required"`
	Surname            string `json:"surname" db:"surname" form:"surname" validate:"required"`
	City               string `json:"city" db:"city" form:"city"`
	PhoneNumber        string `json:"phone_number" db:"phone_number" form:"phone_number"`
	ProfileDescription string `json:"profile_description" db:"profile_description" form:"profile_description"`
	Password           string `json:"-" db:"password" form:"password"`
}

type Caregiver struct {
	CaregiverUserID int64   `json:"caregiver_user_id" db:"caregiver_user_id" form:"-"`
	Photo           string  `json:"photo" db:"photo" form:"photo"`
	Gender          string  `json:"gender" db:"gender" form:"gender"`
	CaregivingType  string  `json:"caregiving_type" db:"caregiving_type" form:"caregiving_type" validate:"required"`
	HourlyRate      float64 `json:"hourly_rate" db:"hourly_rate" form:"hourly_rate" validate:"min=0"`
}

type Member struct {
	MemberUserID         int64  `json:"member_user_id" db:"member_user_id" form:"-"`
	HouseRules           string `json:"house_rules" db:"house_rules" form:"house_rules"`
	DependentDescription string `json:"dependent_description" db:"dependent_description" form:"dependent_description"`
}

// Address belongs to exactly one member.
type Address struct {
	MemberUserID int64  `json:"member_user_id" db:"member_user_id" form:"id" validate:"required"`
	HouseNumber  string `json:"house_number" db:"house_number" form:"house_number"`
	Street       string `json:"street" db:"street" form:"street"`
	Town         string `json:"town" db:"town" form:"town"`
}

// Job is a care request posted by a member. A zero JobID lets the database
// assign one; an unset DatePosted defaults to today.
type Job struct {
	JobID                  int64  `json:"job_id" db:"job_id" form:"job_id"`
	MemberUserID           int64  `json:"member_user_id" db:"member_user_id" form:"member_user_id" validate:"required"`
	RequiredCaregivingType string `json:"required_caregiving_type" db:"required_caregiving_type" form:"required_caregiving_type" validate:"required"`
	OtherRequirements      string `json:"other_requirements" db:"other_requirements" form:"other_requirements"`
	DatePosted             Date   `json:"date_posted" db:"date_posted" form:"date_posted"`
}

// StatusPending is the status every appointment starts with.
const StatusPending = "Pending"

// StatusAccepted is the status the reports count as worked.
const StatusAccepted = "Accepted"

// Appointment links one caregiver and one member. Status is free text.
type Appointment struct {
	AppointmentID   int64     `json:"appointment_id" db:"appointment_id" form:"appointment_id"`
	CaregiverUserID int64     `json:"caregiver_user_id" db:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	MemberUserID    int64     `json:"member_user_id" db:"member_user_id" form:"member_user_id" validate:"required"`
	AppointmentDate Date      `json:"appointment_date" db:"appointment_date" form:"appointment_date" validate:"required"`
	AppointmentTime TimeOfDay `json:"appointment_time" db:"appointment_time" form:"appointment_time" validate:"required"`
	WorkHours       int32     `json:"work_hours" db:"work_hours" form:"work_hours"`
	Status          string    `json:"status" db:"status" form:"status"`
}

// JobApplication is keyed by (CaregiverUserID, JobID).
type JobApplication struct {
	CaregiverUserID int64 `json:"caregiver_user_id" db:"caregiver_user_id" form:"caregiver_user_id" validate:"required"`
	JobID           int64 `json:"job_id" db:"job_id" form:"job_id" validate:"required"`
	DateApplied     Date  `json:"date_applied" db:"date_applied" form:"date_applied"`
}
