package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

import (
	"context"
	"io"
	"log/slog"

	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/pkg/patch"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomInput struct {
	Name string
	Type string
}

type ExtraInput struct {
	Name  string
	Kind  extra.Kind
	Price decimal.Decimal
}

type MinibarItemInput struct {
	Name     string
	Category minibar.Category
	Price    decimal.Decimal
	// Stock is only applied when set.
	Stock *int
}

type CatalogCommands interface {
	CreateRoom(ctx context.Context, in RoomInput) (*queries.RoomView, error)
	UpdateRoom(ctx context.Context, id string, in RoomInput) (*queries.RoomView, error)
	DeleteRoom(ctx context.Context, id string) error

	CreateExtra(ctx context.Context, in ExtraInput) (*queries.ExtraView, error)
	UpdateExtra(ctx context.Context, id string, in ExtraInput) (*queries.ExtraView, error)
	DeleteExtra(ctx context.Context, id string) error

	CreateMinibarItem(ctx context.Context, in MinibarItemInput) (*queries.MinibarItemView, error)
	UpdateMinibarItem(ctx context.Context, id string, in MinibarItemInput) (*queries.MinibarItemView, error)
	DeleteMinibarItem(ctx context.Context, id string) error

	SaveSettings(ctx context.Context, s settings.Settings) (*queries.SettingsView, error)
}

type catalogUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	codes       io.Reader
	maxAttempts int
}

// NewCatalogUseCase draws room codes from codes (nil means crypto/rand) and
// gives up after maxAttempts collisions.
func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock, codes io.Reader, maxAttempts int) CatalogCommands {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &catalogUseCaseImpl{uow: uow, clock: clk, codes: codes, maxAttempts: maxAttempts}
}

func (uc *catalogUseCaseImpl) CreateRoom(ctx context.Context, in RoomInput) (*queries.RoomView, error) {
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		code, err := room.NewRoomCode(uc.codes)
		if err != nil {
			return nil, errs.Wrap(err, "generate room code")
		}
		r, err := room.NewRoom(code, in.Name, in.Type)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}

		var out *room.Room
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Rooms().Insert(ctx, r); err != nil {
				return err
			}
			var err error
			out, err = tx.Rooms().FindByID(ctx, code)
			return err
		})
		switch {
		case err == nil:
			slog.Info("room created", "room_id", code, "name", out.Name())
			return queries.NewRoomView(out), nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			continue
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil, errs.ErrDuplicateRoomCode
}

func (uc *catalogUseCaseImpl) UpdateRoom(ctx context.Context, id string, in RoomInput) (*queries.RoomView, error) {
	var out *room.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := r.Update(in.Name, in.Type); err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		if err := tx.Rooms().Update(ctx, r); err != nil {
			return err
		}
		out, err = tx.Rooms().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, catalogErr(err, errs.ErrRoomNotFound)
	}
	return queries.NewRoomView(out), nil
}

func (uc *catalogUseCaseImpl) DeleteRoom(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, id)
	})
	if err != nil {
		return catalogErr(err, errs.ErrRoomNotFound)
	}
	slog.Info("room deleted", "room_id", id)
	return nil
}

func (uc *catalogUseCaseImpl) CreateExtra(ctx context.Context, in ExtraInput) (*queries.ExtraView, error) {
	e, err := extra.NewExtra(uuid.NewString(), in.Name, in.Kind, in.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Extras().Insert(ctx, e)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewExtraView(e), nil
}

func (uc *catalogUseCaseImpl) UpdateExtra(ctx context.Context, id string, in ExtraInput) (*queries.ExtraView, error) {
	var out *extra.Extra
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Extras().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := e.Update(in.Name, in.Kind, in.Price); err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		out = e
		return tx.Extras().Update(ctx, e)
	})
	if err != nil {
		return nil, catalogErr(err, errs.ErrExtraNotFound)
	}
	return queries.NewExtraView(out), nil
}

func (uc *catalogUseCaseImpl) DeleteExtra(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Extras().Delete(ctx, id)
	})
	return catalogErr(err, errs.ErrExtraNotFound)
}

func (uc *catalogUseCaseImpl) CreateMinibarItem(ctx context.Context, in MinibarItemInput) (*queries.MinibarItemView, error) {
	stock := patch.Coalesce(in.Stock, 0)
	it, err := minibar.NewItem(uuid.NewString(), in.Name, in.Category, stock, in.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Minibar().Insert(ctx, it)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.NewMinibarItemView(it), nil
}

// UpdateMinibarItem edits the catalog fields and, when in.Stock is set,
// overwrites the count after a stock take.
func (uc *catalogUseCaseImpl) UpdateMinibarItem(ctx context.Context, id string, in MinibarItemInput) (*queries.MinibarItemView, error) {
	var out *minibar.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Minibar().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := it.Update(in.Name, in.Category, in.Price); err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		if in.Stock != nil {
			if err := it.SetStock(*in.Stock); err != nil {
				return errs.Mark(err, errs.ErrInvalidInput)
			}
		}
		if err := tx.Minibar().Update(ctx, it); err != nil {
			return err
		}
		out, err = tx.Minibar().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, catalogErr(err, errs.ErrItemNotFound)
	}
	return queries.NewMinibarItemView(out), nil
}

func (uc *catalogUseCaseImpl) DeleteMinibarItem(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Minibar().Delete(ctx, id)
	})
	return catalogErr(err, errs.ErrItemNotFound)
}

func (uc *catalogUseCaseImpl) SaveSettings(ctx context.Context, s settings.Settings) (*queries.SettingsView, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	s.UpdatedAt = uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, s)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	slog.Info("hotel settings saved", "hotel_name", s.HotelName, "currency", s.Currency)
	return queries.NewSettingsView(s), nil
}

func catalogErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrInvalidInput):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
