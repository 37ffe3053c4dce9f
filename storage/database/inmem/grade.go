package inmemdb

import (
	"context"

	"github.com/trezcool/gradesheet/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) UpsertGrade(ctx context.Context, e grade.Entry) (grade.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.put(e)
	return repo.db.sheet()
}

func (repo *gradeRepository) UpdateGrade(ctx context.Context, e grade.Entry) (grade.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.grades[e.Name]; !ok {
		return nil, grade.ErrNotFound
	}
	repo.db.put(e)
	return repo.db.sheet()
}

func (repo *gradeRepository) QueryAllGrades(ctx context.Context) (grade.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.sheet()
}
