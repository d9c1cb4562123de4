package database

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenghisKhal/assignment3/internal/schema"
)

func foreignKeyRows(fks ...schema.ForeignKey) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"table_name", "column_name", "parent", "parent_column"})
	for _, fk := range fks {
		rows.AddRow(fk.Table, fk.Column, fk.Parent, fk.ParentColumn)
	}
	return rows
}

func TestVerifyReferencesAcceptsKnownGraph(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM information_schema.table_constraints").
		WillReturnRows(foreignKeyRows(schema.References...))

	require.NoError(t, VerifyReferences(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyReferencesReportsUnknownKeys(t *testing.T) {
	mock := newMock(t)
	extra := schema.ForeignKey{Table: "reviews", Column: "job_id", Parent: schema.Jobs, ParentColumn: "job_id"}
	mock.ExpectQuery("FROM information_schema.table_constraints").
		WillReturnRows(foreignKeyRows(append(append([]schema.ForeignKey{}, schema.References...), extra)...))

	err := VerifyReferences(context.Background(), mock)
	assert.ErrorContains(t, err, "reviews.job_id -> jobs.job_id")
}
