package inmemdb

import (
	"fmt"
	"sync"

	"github.com/trezcool/gradesheet/core"
	"github.com/trezcool/gradesheet/core/grade"
)

type (
	DB struct {
		grade *gradeTable
	}

	// gradeTable keeps names in insertion order next to the lookup map.
	gradeTable struct {
		sync.RWMutex
		grades map[string]string
		names  []string
	}
)

// Open creates an in-memory database holding `seed`.
func Open(seed ...grade.Entry) (*DB, error) {
	db := &DB{
		grade: &gradeTable{grades: make(map[string]string, len(seed))},
	}
	for _, e := range seed {
		db.grade.put(e)
	}
	return db, nil
}

// put must be called with the write lock held (or before the table is shared).
func (t *gradeTable) put(e grade.Entry) {
	if _, ok := t.grades[e.Name]; !ok {
		t.names = append(t.names, e.Name)
	}
	t.grades[e.Name] = e.Grade
}

// sheet must be called with at least the read lock held.
// A table whose name list and grade map disagree cannot be trusted anymore: the process should stop.
func (t *gradeTable) sheet() (grade.Sheet, error) {
	if len(t.names) != len(t.grades) {
		return nil, core.NewShutdownError(fmt.Sprintf("grade table corrupted: %d names for %d grades", len(t.names), len(t.grades)))
	}
	sheet := make(grade.Sheet, 0, len(t.names))
	for _, name := range t.names {
		grd, ok := t.grades[name]
		if !ok {
			return nil, core.NewShutdownError(fmt.Sprintf("grade table corrupted: no grade for %q", name))
		}
		sheet = append(sheet, grade.Entry{Name: name, Grade: grd})
	}
	return sheet, nil
}
