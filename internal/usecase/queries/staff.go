package queries

//go:generate mockgen -source=staff.go -destination=../../../tests/mock/queries/staff.go -package=queriesmock

import (
	"context"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound = errs.New("staff not found")
	ErrStaffInactive = errs.New("staff inactive")
)

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*StaffView, error)
}

type staffQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStaffQueries(uow shared.UnitOfWork) StaffQueries {
	return &staffQueriesImpl{uow: uow}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*StaffView, error) {
	var s *staff.Staff
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		s, err = tx.Staff().FindByID(ctx, staffID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if !s.IsActive() {
		return nil, ErrStaffInactive
	}
	return NewStaffView(s), nil
}

func NewStaffView(s *staff.Staff) *StaffView {
	return &StaffView{
		ID:       s.ID(),
		Name:     s.Name(),
		Email:    s.Email().Value(),
		Role:     s.Role().String(),
		IsActive: s.IsActive(),
	}
}
