package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/pkg/config"
)

// ErrReferenced is returned when a restricted delete would orphan child rows.
var ErrReferenced = errors.New("record is referenced by other records")

// Relation declares a child table column that points at a parent table.
type Relation struct {
	Parent   string
	Child    string
	Column   string
	Nullable bool
}

// Relations enumerates every foreign key in the schema.
var Relations = []Relation{
	{Parent: tableStudents, Child: tableAttendance, Column: "student_id"},
	{Parent: tableStudents, Child: tablePayments, Column: "student_id"},
	{Parent: tableStudents, Child: tableResults, Column: "student_id"},
	{Parent: tableExams, Child: tableResults, Column: "exam_id"},
	{Parent: tableEmployees, Child: tableClassrooms, Column: "teacher_id", Nullable: true},
	{Parent: tableEmployees, Child: tableSchedules, Column: "teacher_id", Nullable: true},
}

const (
	tableStudents   = "students"
	tableEmployees  = "employees"
	tableClassrooms = "classrooms"
	tableAttendance = "attendance"
	tablePayments   = "payments"
	tableExams      = "exams"
	tableResults    = "results"
	tableSchedules  = "schedules"
	tableUsers      = "users"
)

// Deleter removes rows while applying the configured referential policy.
type Deleter struct {
	db        *sqlx.DB
	policy    string
	relations []Relation
}

// NewDeleter constructs a Deleter. Unknown policies behave as config.ReferentialNone.
func NewDeleter(db *sqlx.DB, policy string) *Deleter {
	switch policy {
	case config.ReferentialRestrict, config.ReferentialCascade:
	default:
		policy = config.ReferentialNone
	}
	return &Deleter{db: db, policy: policy, relations: Relations}
}

// Policy reports the active referential policy.
func (d *Deleter) Policy() string {
	return d.policy
}

// Delete removes the row with the given id from table. It reports false when no row existed.
func (d *Deleter) Delete(ctx context.Context, table string, id int64) (bool, error) {
	children := d.childrenOf(table)
	if d.policy == config.ReferentialNone || len(children) == 0 {
		return d.deleteRow(ctx, d.db, table, id)
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete %s: %w", table, err)
	}
	defer tx.Rollback() //nolint:errcheck

	existed, err := d.deleteRow(ctx, tx, table, id)
	if err != nil || !existed {
		return existed, err
	}

	for _, rel := range children {
		switch d.policy {
		case config.ReferentialRestrict:
			var count int
			query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", rel.Child, rel.Column)
			if err := tx.GetContext(ctx, &count, query, id); err != nil {
				return false, fmt.Errorf("count %s referencing %s: %w", rel.Child, table, err)
			}
			if count > 0 {
				return false, fmt.Errorf("%s %d referenced by %d %s: %w", table, id, count, rel.Child, ErrReferenced)
			}
		case config.ReferentialCascade:
			query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", rel.Child, rel.Column)
			if rel.Nullable {
				query = fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = $1", rel.Child, rel.Column, rel.Column)
			}
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return false, fmt.Errorf("cascade %s to %s: %w", table, rel.Child, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete %s: %w", table, err)
	}
	return true, nil
}

func (d *Deleter) childrenOf(table string) []Relation {
	var out []Relation
	for _, rel := range d.relations {
		if rel.Parent == table {
			out = append(out, rel)
		}
	}
	return out
}

func (d *Deleter) deleteRow(ctx context.Context, exec sqlx.ExecerContext, table string, id int64) (bool, error) {
	res, err := exec.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s rows affected: %w", table, err)
	}
	return affected > 0, nil
}
