package database

import (
	"context"
	"fmt"

	"github.com/GenghisKhal/assignment3/internal/schema"
)

// Deleted counts the rows removed per table by a cascade.
type Deleted map[string]int64

// Total is the number of rows removed across all tables.
func (d Deleted) Total() int64 {
	var n int64
	for _, rows := range d {
		n += rows
	}
	return n
}

// Cascade removes the rows of root whose key is in ids together with all of
// their dependents, following schema.DeletePlan. It must run inside a
// transaction for the removal to be atomic.
func Cascade(ctx context.Context, tx DBTX, root string, ids []int64) (Deleted, error) {
	steps, err := schema.DeletePlan(root)
	if err != nil {
		return nil, err
	}

	deleted := Deleted{}
	if len(ids) == 0 {
		return deleted, nil
	}

	for _, step := range steps {
		tag, err := tx.Exec(ctx, step.SQL, ids)
		if err != nil {
			return nil, fmt.Errorf("table:%s: cascade delete: %w", step.Table, err)
		}
		deleted[step.Table] += tag.RowsAffected()
	}
	return deleted, nil
}
