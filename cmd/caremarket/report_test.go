package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/service"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, service.Table{
		Columns: []string{"job_id", "applicant_count"},
		Rows:    [][]string{{"1", "2"}, {"12", "0"}},
	}))

	assert.Equal(t, "JOB_ID  APPLICANT_COUNT\n1       2\n12      0\n", buf.String())
}

func TestPrintTableWithoutRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, service.Table{Columns: []string{"caregiver_name"}}))

	assert.Equal(t, "CAREGIVER_NAME\n(no rows)\n", buf.String())
}

func TestReportCommandTree(t *testing.T) {
	cmd := newReportCommand(&app{})

	for _, name := range []string{"list", "run", "all"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)
	assert.NotNil(t, run.Flags().Lookup("param"))
	assert.NotNil(t, run.Flags().Lookup("json"))
}

func TestReportListRunsWithoutConfig(t *testing.T) {
	a := &app{}
	root := newRootCommand(a)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", "list"})

	require.NoError(t, root.Execute())
	assert.Nil(t, a.cfg)
	assert.Contains(t, buf.String(), "update-phone")
}
