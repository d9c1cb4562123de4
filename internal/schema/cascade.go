package schema

import (
	"fmt"
	"strings"
)

// Step is one DELETE statement of a cascade. Every statement takes a single
// argument: the array of root keys.
type Step struct {
	Table string
	SQL   string
}

// DeletePlan returns the statements that delete the root rows whose primary
// key is in $1, preceded by every dependent row reachable through References.
// Dependents always come before the rows they reference. A table reachable
// along several paths (appointments, job_applications) gets one statement per
// path; later statements simply match nothing.
func DeletePlan(root string) ([]Step, error) {
	key, ok := PrimaryKeys[root]
	if !ok {
		return nil, fmt.Errorf("schema: no primary key registered for %q", root)
	}

	var steps []Step
	if err := walk(root, fmt.Sprintf("%s = ANY($1)", key), map[string]bool{}, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func walk(table, where string, visiting map[string]bool, steps *[]Step) error {
	if visiting[table] {
		return fmt.Errorf("schema: reference cycle through %q", table)
	}
	visiting[table] = true
	defer delete(visiting, table)

	for _, fk := range dependents(table) {
		childWhere := fmt.Sprintf("%s IN (SELECT %s FROM %s WHERE %s)", fk.Column, fk.ParentColumn, table, where)
		if err := walk(fk.Table, childWhere, visiting, steps); err != nil {
			return err
		}
	}

	*steps = append(*steps, Step{
		Table: table,
		SQL:   fmt.Sprintf("DELETE FROM %s WHERE %s", table, where),
	})
	return nil
}

// Missing returns the foreign keys present in live (usually read from the
// database catalog) that References does not know about. A non-empty result
// means a cascade would leave rows behind or fail on a constraint.
func Missing(live []ForeignKey) []ForeignKey {
	known := make(map[ForeignKey]bool, len(References))
	for _, fk := range References {
		known[normalize(fk)] = true
	}

	var missing []ForeignKey
	for _, fk := range live {
		if !known[normalize(fk)] {
			missing = append(missing, fk)
		}
	}
	return missing
}

func normalize(fk ForeignKey) ForeignKey {
	return ForeignKey{
		Table:        strings.ToLower(fk.Table),
		Column:       strings.ToLower(fk.Column),
		Parent:       strings.ToLower(fk.Parent),
		ParentColumn: strings.ToLower(fk.ParentColumn),
	}
}

func (fk ForeignKey) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", fk.Table, fk.Column, fk.Parent, fk.ParentColumn)
}
