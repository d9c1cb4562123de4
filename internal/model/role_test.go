package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	caregiver := &Caregiver{CaregiverUserID: 1, CaregivingType: "Babysitter"}
	member := &Member{MemberUserID: 1}

	assert.Equal(t, RoleCaregiver, ResolveRole(caregiver, nil).Kind())
	assert.Equal(t, RoleMember, ResolveRole(nil, member).Kind())
	assert.Equal(t, RoleUnassigned, ResolveRole(nil, nil).Kind())

	// both rows present: caregiver wins
	role := ResolveRole(caregiver, member)
	require.IsType(t, CaregiverRole{}, role)
	assert.Equal(t, "Babysitter", role.(CaregiverRole).CaregivingType)
}

func TestUserWithRoleJSON(t *testing.T) {
	u := UserWithRole{
		User: User{UserID: 7, Email: "a@b.kz", GivenName: "Arman", Surname: "Armanov", Password: "secret"},
		Role: MemberRole{Member: Member{MemberUserID: 7, HouseRules: "No pets."}},
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "member", out["role"])
	assert.Contains(t, out, "member")
	assert.NotContains(t, out, "caregiver")
	assert.NotContains(t, out["user"], "password")

	b, err = json.Marshal(UserWithRole{User: u.User, Role: Unassigned{}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"role":"unassigned"`)
}

func TestPatchesOnlyTouchSetFields(t *testing.T) {
	city := "Almaty"
	user := User{Email: "a@b.kz", City: "Astana", GivenName: "Amina"}
	UserPatch{City: &city}.Apply(&user)
	assert.Equal(t, User{Email: "a@b.kz", City: "Almaty", GivenName: "Amina"}, user)

	rate := 12.5
	caregiver := Caregiver{CaregivingType: "Elderly Care", HourlyRate: 9}
	CaregiverPatch{HourlyRate: &rate}.Apply(&caregiver)
	assert.Equal(t, "Elderly Care", caregiver.CaregivingType)
	assert.Equal(t, 12.5, caregiver.HourlyRate)

	rules := "No smoking."
	member := Member{HouseRules: "No pets.", DependentDescription: "grandmother"}
	MemberPatch{HouseRules: &rules}.Apply(&member)
	assert.Equal(t, Member{HouseRules: "No smoking.", DependentDescription: "grandmother"}, member)
}
