package grade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradesheet/core/grade"
	"github.com/trezcool/gradesheet/storage/database/inmem"
)

func setup(t *testing.T) grade.Service {
	db, err := inmemdb.Open(grade.SeedEntries()...)
	require.NoError(t, err)
	return grade.NewService(inmemdb.NewGradeRepository(db))
}

func listAll(t *testing.T, svc grade.Service) []grade.Entry {
	var entries []grade.Entry
	err := svc.ListAll(context.Background(), func(e grade.Entry) { entries = append(entries, e) })
	require.NoError(t, err)
	return entries
}

func TestService_ListAll_seed(t *testing.T) {
	assert.Equal(t, grade.SeedEntries(), listAll(t, setup(t)))
}

func TestService_AddOrReplace(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	sheet, err := svc.AddOrReplace(ctx, "z", "B")
	require.NoError(t, err)
	got, ok := sheet.Get("z")
	assert.True(t, ok)
	assert.Equal(t, "B", got)
	assert.Contains(t, listAll(t, svc), grade.Entry{Name: "z", Grade: "B"})

	sheet, err = svc.AddOrReplace(ctx, "z", "A")
	require.NoError(t, err)
	assert.Equal(t, 7, sheet.Len())
	got, _ = sheet.Get("z")
	assert.Equal(t, "A", got)

	var zs int
	for _, e := range listAll(t, svc) {
		if e.Name == "z" {
			zs++
			assert.Equal(t, "A", e.Grade)
		}
	}
	assert.Equal(t, 1, zs)
}

func TestService_AddOrReplace_idempotent(t *testing.T) {
	ctx := context.Background()
	once, twice := setup(t), setup(t)

	want, err := once.AddOrReplace(ctx, "n", "g")
	require.NoError(t, err)
	_, err = twice.AddOrReplace(ctx, "n", "g")
	require.NoError(t, err)
	got, err := twice.AddOrReplace(ctx, "n", "g")
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, listAll(t, once), listAll(t, twice))
}

func TestService_AddOrReplace_roundTrip(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	writes := []grade.Entry{
		{Name: "x", Grade: "A"},
		{Name: "y", Grade: "B"},
		{Name: "x", Grade: "C"},
		{Name: "", Grade: ""},
		{Name: "bhavya", Grade: "F"},
	}
	want := make(map[string]string)
	for _, e := range writes {
		_, err := svc.AddOrReplace(ctx, e.Name, e.Grade)
		require.NoError(t, err)
		want[e.Name] = e.Grade
	}

	got := make(map[string]string)
	for _, e := range listAll(t, svc) {
		got[e.Name] = e.Grade
	}
	for name, g := range want {
		assert.Equal(t, g, got[name], name)
	}
}

func TestService_UpdateExisting(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		student   string
		grade     string
		wantErr   error
		wantGrade string
	}{
		{name: "existing student", student: "bhavya", grade: "C", wantGrade: "C"},
		{name: "same grade", student: "ansh", grade: "B", wantGrade: "B"},
		{name: "unknown student", student: "nonexistent", grade: "A", wantErr: grade.ErrNotFound},
		{name: "empty name", student: "", grade: "A", wantErr: grade.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(t)
			before := listAll(t, svc)

			sheet, err := svc.UpdateExisting(ctx, tt.student, tt.grade)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, "Student not found", err.Error())
				assert.Equal(t, before, listAll(t, svc))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(before), sheet.Len())
			got, _ := sheet.Get(tt.student)
			assert.Equal(t, tt.wantGrade, got)
			assert.Contains(t, listAll(t, svc), grade.Entry{Name: tt.student, Grade: tt.wantGrade})
		})
	}
}
