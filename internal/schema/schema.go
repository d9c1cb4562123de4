// Package schema describes the relational schema as data: table names, key
// columns and the foreign-key graph between them.
//
// The database declares its foreign keys without ON DELETE actions, so
// removing a referenced row is the application's job. DeletePlan walks the
// graph below and returns the ordered DELETE statements that remove a set of
// root rows together with everything that depends on them.
package schema

// Table names.
const (
	Users           = "users"
	Caregivers      = "caregivers"
	Members         = "members"
	Addresses       = "addresses"
	Jobs            = "jobs"
	Appointments    = "appointments"
	JobApplications = "job_applications"

	ApplicationsView = "job_applications_view"
)

// ForeignKey is a single-column reference from Table.Column to Parent.ParentColumn.
type ForeignKey struct {
	Table        string
	Column       string
	Parent       string
	ParentColumn string
}

// References is the dependency graph of the schema, listed parent first and,
// per parent, in the order dependents are removed.
var References = []ForeignKey{
	{Table: Caregivers, Column: "caregiver_user_id", Parent: Users, ParentColumn: "user_id"},
	{Table: Members, Column: "member_user_id", Parent: Users, ParentColumn: "user_id"},

	{Table: Appointments, Column: "caregiver_user_id", Parent: Caregivers, ParentColumn: "caregiver_user_id"},
	{Table: JobApplications, Column: "caregiver_user_id", Parent: Caregivers, ParentColumn: "caregiver_user_id"},

	{Table: Addresses, Column: "member_user_id", Parent: Members, ParentColumn: "member_user_id"},
	{Table: Appointments, Column: "member_user_id", Parent: Members, ParentColumn: "member_user_id"},
	{Table: Jobs, Column: "member_user_id", Parent: Members, ParentColumn: "member_user_id"},

	{Table: JobApplications, Column: "job_id", Parent: Jobs, ParentColumn: "job_id"},
}

// PrimaryKeys maps each table to the column identifying a row. Tables with a
// composite key (job_applications) are leaves of the graph and not listed.
var PrimaryKeys = map[string]string{
	Users:        "user_id",
	Caregivers:   "caregiver_user_id",
	Members:      "member_user_id",
	Addresses:    "member_user_id",
	Jobs:         "job_id",
	Appointments: "appointment_id",
}

// dependents returns the references pointing at parent, in declaration order.
func dependents(parent string) []ForeignKey {
	var out []ForeignKey
	for _, fk := range References {
		if fk.Parent == parent {
			out = append(out, fk)
		}
	}
	return out
}
