package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"

	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"
)

type CatalogQueries interface {
	Rooms(ctx context.Context) ([]*RoomView, error)
	Room(ctx context.Context, id string) (*RoomView, error)
	Extras(ctx context.Context, kind extra.Kind) ([]*ExtraView, error)
	Extra(ctx context.Context, id string) (*ExtraView, error)
	MinibarItems(ctx context.Context) ([]*MinibarItemView, error)
	MinibarItem(ctx context.Context, id string) (*MinibarItemView, error)
	Settings(ctx context.Context) (*SettingsView, error)
}

type catalogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogQueries(uow shared.UnitOfWork) CatalogQueries {
	return &catalogQueriesImpl{uow: uow}
}

// read runs fn in a read-only transaction and marks any failure as a
// database error.
func (q *catalogQueriesImpl) read(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := q.uow.WithinReadOnly(ctx, fn); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *catalogQueriesImpl) Rooms(ctx context.Context) ([]*RoomView, error) {
	var out []*RoomView
	err := q.read(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, err := tx.Rooms().List(ctx)
		if err != nil {
			return err
		}
		out = make([]*RoomView, 0, len(rooms))
		for _, r := range rooms {
			out = append(out, NewRoomView(r))
		}
		return nil
	})
	return out, err
}

func (q *catalogQueriesImpl) Room(ctx context.Context, id string) (*RoomView, error) {
	var out *RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return err
		}
		out = NewRoomView(r)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errs.ErrRoomNotFound)
	}
	return out, nil
}

func (q *catalogQueriesImpl) Extras(ctx context.Context, kind extra.Kind) ([]*ExtraView, error) {
	var out []*ExtraView
	err := q.read(ctx, func(ctx context.Context, tx shared.Tx) error {
		extras, err := tx.Extras().List(ctx, kind)
		if err != nil {
			return err
		}
		out = make([]*ExtraView, 0, len(extras))
		for _, e := range extras {
			out = append(out, NewExtraView(e))
		}
		return nil
	})
	return out, err
}

func (q *catalogQueriesImpl) Extra(ctx context.Context, id string) (*ExtraView, error) {
	var out *ExtraView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Extras().FindByID(ctx, id)
		if err != nil {
			return err
		}
		out = NewExtraView(e)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errs.ErrExtraNotFound)
	}
	return out, nil
}

func (q *catalogQueriesImpl) MinibarItems(ctx context.Context) ([]*MinibarItemView, error) {
	var out []*MinibarItemView
	err := q.read(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Minibar().List(ctx)
		if err != nil {
			return err
		}
		out = make([]*MinibarItemView, 0, len(items))
		for _, it := range items {
			out = append(out, NewMinibarItemView(it))
		}
		return nil
	})
	return out, err
}

func (q *catalogQueriesImpl) MinibarItem(ctx context.Context, id string) (*MinibarItemView, error) {
	var out *MinibarItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Minibar().FindByID(ctx, id)
		if err != nil {
			return err
		}
		out = NewMinibarItemView(it)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errs.ErrItemNotFound)
	}
	return out, nil
}

func (q *catalogQueriesImpl) Settings(ctx context.Context) (*SettingsView, error) {
	var out *SettingsView
	err := q.read(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		if err != nil {
			return err
		}
		out = NewSettingsView(s)
		return nil
	})
	return out, err
}
