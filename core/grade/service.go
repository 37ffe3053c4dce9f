package grade

import (
	"context"
	"errors"
)

// ErrNotFound is the only domain error: an update targeted an unknown student.
var ErrNotFound = errors.New("Student not found") // nolint:stylecheck

type (
	Repository interface {
		// UpsertGrade inserts or overwrites e and returns the resulting sheet.
		UpsertGrade(ctx context.Context, e Entry) (Sheet, error)
		// UpdateGrade overwrites an existing entry only; ErrNotFound otherwise.
		UpdateGrade(ctx context.Context, e Entry) (Sheet, error)
		QueryAllGrades(ctx context.Context) (Sheet, error)
	}

	Service interface {
		AddOrReplace(ctx context.Context, name, grade string) (Sheet, error)
		UpdateExisting(ctx context.Context, name, grade string) (Sheet, error)
		ListAll(ctx context.Context, emit func(Entry)) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddOrReplace stores the grade whether or not the student already exists.
// Names and grades are taken as-is.
func (svc *service) AddOrReplace(ctx context.Context, name, grade string) (Sheet, error) {
	return svc.repo.UpsertGrade(ctx, Entry{Name: name, Grade: grade})
}

func (svc *service) UpdateExisting(ctx context.Context, name, grade string) (Sheet, error) {
	return svc.repo.UpdateGrade(ctx, Entry{Name: name, Grade: grade})
}

func (svc *service) ListAll(ctx context.Context, emit func(Entry)) error {
	sheet, err := svc.repo.QueryAllGrades(ctx)
	if err != nil {
		return err
	}
	for _, e := range sheet {
		emit(e)
	}
	return nil
}
