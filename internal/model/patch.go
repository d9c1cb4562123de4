package model

// UserPatch holds the user fields to change. Nil fields are left as they are.
type UserPatch struct {
	Email              *string `form:"email"`
	GivenName          *string `form:"given_name"`
	Surname            *string `form:"surname"`
	City               *string `form:"city"`
	PhoneNumber        *string `form:"phone_number"`
	ProfileDescription *string `form:"profile_description"`
	Password           *string `form:"password"`
}

// Apply copies the set fields onto u.
func (p UserPatch) Apply(u *User) {
	set(&u.Email, p.Email)
	set(&u.GivenName, p.GivenName)
	set(&u.Surname, p.Surname)
	set(&u.City, p.City)
	set(&u.PhoneNumber, p.PhoneNumber)
	set(&u.ProfileDescription, p.ProfileDescription)
	set(&u.Password, p.Password)
}

// RolePatch changes the role row of a user; it must match the user's role.
type RolePatch interface {
	Kind() RoleKind
}

type CaregiverPatch struct {
	Photo          *string  `form:"photo"`
	Gender         *string  `form:"gender"`
	CaregivingType *string  `form:"caregiving_type"`
	HourlyRate     *float64 `form:"hourly_rate" validate:"omitnil,min=0"`
}

func (CaregiverPatch) Kind() RoleKind { return RoleCaregiver }

// Apply copies the set fields onto c.
func (p CaregiverPatch) Apply(c *Caregiver) {
	set(&c.Photo, p.Photo)
	set(&c.Gender, p.Gender)
	set(&c.CaregivingType, p.CaregivingType)
	set(&c.HourlyRate, p.HourlyRate)
}

type MemberPatch struct {
	HouseRules           *string `form:"house_rules"`
	DependentDescription *string `form:"dependent_description"`
}

func (MemberPatch) Kind() RoleKind { return RoleMember }

// Apply copies the set fields onto m.
func (p MemberPatch) Apply(m *Member) {
	set(&m.HouseRules, p.HouseRules)
	set(&m.DependentDescription, p.DependentDescription)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
