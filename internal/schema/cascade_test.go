package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tables(steps []Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Table)
	}
	return out
}

func TestDeletePlanForUsersCoversEveryDependent(t *testing.T) {
	steps, err := DeletePlan(Users)
	require.NoError(t, err)

	assert.Equal(t, []string{
		Appointments, JobApplications, Caregivers,
		Addresses, Appointments, JobApplications, Jobs, Members,
		Users,
	}, tables(steps))

	last := steps[len(steps)-1]
	assert.Equal(t, "DELETE FROM users WHERE user_id = ANY($1)", last.SQL)
}

func TestDeletePlanOrdersDependentsFirst(t *testing.T) {
	for root := range PrimaryKeys {
		steps, err := DeletePlan(root)
		require.NoError(t, err)

		// position of the last delete of each table
		lastAt := map[string]int{}
		for i, s := range steps {
			lastAt[s.Table] = i
		}

		for _, fk := range References {
			parentAt, parentDeleted := lastAt[fk.Parent]
			childAt, childDeleted := lastAt[fk.Table]
			if parentDeleted && childDeleted {
				assert.Less(t, childAt, parentAt, "%s: %s deleted after %s", root, fk.Table, fk.Parent)
			}
		}
	}
}

func TestDeletePlanNestsThroughParents(t *testing.T) {
	steps, err := DeletePlan(Jobs)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t,
		"DELETE FROM job_applications WHERE job_id IN (SELECT job_id FROM jobs WHERE job_id = ANY($1))",
		steps[0].SQL)
	assert.Equal(t, "DELETE FROM jobs WHERE job_id = ANY($1)", steps[1].SQL)

	for _, s := range steps {
		assert.Equal(t, 1, strings.Count(s.SQL, "DELETE"))
	}
}

func TestDeletePlanLeafAndUnknown(t *testing.T) {
	steps, err := DeletePlan(Appointments)
	require.NoError(t, err)
	assert.Equal(t, []string{Appointments}, tables(steps))

	_, err = DeletePlan(JobApplications)
	assert.Error(t, err)
}

func TestDeletePlanDetectsCycles(t *testing.T) {
	saved := References
	t.Cleanup(func() { References = saved })

	References = append(append([]ForeignKey{}, saved...),
		ForeignKey{Table: Users, Column: "referrer_id", Parent: Jobs, ParentColumn: "job_id"})

	_, err := DeletePlan(Users)
	assert.ErrorContains(t, err, "cycle")
}

func TestMissingReportsUnknownForeignKeys(t *testing.T) {
	live := append([]ForeignKey{}, References...)
	assert.Empty(t, Missing(live))

	extra := ForeignKey{Table: "reviews", Column: "caregiver_user_id", Parent: Caregivers, ParentColumn: "caregiver_user_id"}
	upper := ForeignKey{Table: "JOBS", Column: "MEMBER_USER_ID", Parent: "MEMBERS", ParentColumn: "MEMBER_USER_ID"}

	assert.Equal(t, []ForeignKey{extra}, Missing(append(live, extra, upper)))
}
