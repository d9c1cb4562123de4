package model

import "encoding/json"

// RoleKind names the variant of a Role.
type RoleKind string

const (
	RoleCaregiver  RoleKind = "caregiver"
	RoleMember     RoleKind = "member"
	RoleUnassigned RoleKind = "unassigned"
)

// Role is what a user is beyond its base identity: exactly one of
// CaregiverRole, MemberRole or Unassigned. It is resolved once when the user
// is loaded.
type Role interface {
	Kind() RoleKind
	isRole()
}

type CaregiverRole struct {
	Caregiver
}

type MemberRole struct {
	Member
}

type Unassigned struct{}

func (CaregiverRole) Kind() RoleKind { return RoleCaregiver }
func (MemberRole) Kind() RoleKind    { return RoleMember }
func (Unassigned) Kind() RoleKind    { return RoleUnassigned }

func (CaregiverRole) isRole() {}
func (MemberRole) isRole()    {}
func (Unassigned) isRole()    {}

// ResolveRole picks the variant from the role rows found for a user. A user
// with both rows is reported as a caregiver.
func ResolveRole(caregiver *Caregiver, member *Member) Role {
	switch {
	case caregiver != nil:
		return CaregiverRole{Caregiver: *caregiver}
	case member != nil:
		return MemberRole{Member: *member}
	default:
		return Unassigned{}
	}
}

// UserWithRole is a user together with its resolved role.
type UserWithRole struct {
	User User
	Role Role
}

func (u UserWithRole) MarshalJSON() ([]byte, error) {
	out := struct {
		User      User       `json:"user"`
		Role      RoleKind   `json:"role"`
		Caregiver *Caregiver `json:"caregiver,omitempty"`
		Member    *Member    `json:"member,omitempty"`
	}{User: u.User, Role: RoleUnassigned}

	switch r := u.Role.(type) {
	case CaregiverRole:
		out.Role = RoleCaregiver
		out.Caregiver = &r.Caregiver
	case MemberRole:
		out.Role = RoleMember
		out.Member = &r.Member
	}
	return json.Marshal(out)
}

// Role labels used by the user listing. The listing only checks caregiver
// membership, so a user with no role row is also labelled LabelMember.
const (
	LabelCaregiver = "Caregiver"
	LabelMember    = "Member/User"
)

// UserListing is one row of the user listing.
type UserListing struct {
	User
	Role string `json:"role" db:"role"`
}
