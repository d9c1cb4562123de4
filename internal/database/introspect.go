package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/GenghisKhal/assignment3/internal/schema"
)

const foreignKeysQuery = `
	SELECT
		kcu.table_name,
		kcu.column_name,
		ccu.table_name  AS parent,
		ccu.column_name AS parent_column
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
		ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
	JOIN information_schema.constraint_column_usage ccu
		ON tc.constraint_name = ccu.constraint_name AND tc.table_schema = ccu.table_schema
	WHERE tc.constraint_type = 'FOREIGN KEY'
		AND tc.table_schema = current_schema()
	ORDER BY kcu.table_name, kcu.column_name`

// ForeignKeys reads the foreign keys declared in the current schema.
func ForeignKeys(ctx context.Context, db DBTX) ([]schema.ForeignKey, error) {
	rows, err := db.Query(ctx, foreignKeysQuery)
	if err != nil {
		return nil, fmt.Errorf("listing foreign keys: %w", err)
	}

	fks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (schema.ForeignKey, error) {
		var fk schema.ForeignKey
		err := row.Scan(&fk.Table, &fk.Column, &fk.Parent, &fk.ParentColumn)
		return fk, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning foreign keys: %w", err)
	}
	return fks, nil
}

// VerifyReferences fails when the database declares a foreign key that the
// cascade graph does not know about.
func VerifyReferences(ctx context.Context, db DBTX) error {
	live, err := ForeignKeys(ctx, db)
	if err != nil {
		return err
	}

	missing := schema.Missing(live)
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(missing))
	for _, fk := range missing {
		names = append(names, fk.String())
	}
	return fmt.Errorf("cascade graph is missing foreign keys: %s", strings.Join(names, ", "))
}
