package memstore

import (
	"context"
	"sort"
	"strings"

	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/usecase/shared"
)

type roomRepo struct{ t *tx }

func copyRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(r.ID(), r.Name(), r.Type(), r.CreatedAt(), r.UpdatedAt())
}

func (r roomRepo) Insert(_ context.Context, rm *room.Room) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[rm.ID()]; ok {
		return duplicate("room code already exists")
	}
	now := r.t.clock.Now()
	r.t.st.rooms[rm.ID()] = room.ReconstructRoom(rm.ID(), rm.Name(), rm.Type(), now, now)
	r.t.record(shared.TableRooms, shared.OpInsert, rm.ID())
	return nil
}

func (r roomRepo) FindByID(_ context.Context, id string) (*room.Room, error) {
	rm, ok := r.t.st.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return copyRoom(rm), nil
}

func (r roomRepo) List(_ context.Context) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(r.t.st.rooms))
	for _, rm := range r.t.st.rooms {
		out = append(out, copyRoom(rm))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r roomRepo) Update(_ context.Context, rm *room.Room) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	cur, ok := r.t.st.rooms[rm.ID()]
	if !ok {
		return notFound("room not found")
	}
	r.t.st.rooms[rm.ID()] = room.ReconstructRoom(rm.ID(), rm.Name(), rm.Type(), cur.CreatedAt(), r.t.clock.Now())
	r.t.record(shared.TableRooms, shared.OpUpdate, rm.ID())
	return nil
}

func (r roomRepo) Delete(_ context.Context, id string) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[id]; !ok {
		return notFound("room not found")
	}
	delete(r.t.st.rooms, id)
	r.t.record(shared.TableRooms, shared.OpDelete, id)
	return nil
}

type extraRepo struct{ t *tx }

func copyExtra(e *extra.Extra) *extra.Extra {
	c, _ := extra.NewExtra(e.ID(), e.Name(), e.Kind(), e.Price())
	return c
}

func (r extraRepo) Insert(_ context.Context, e *extra.Extra) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.extras[e.ID()]; ok {
		return duplicate("extra already exists")
	}
	r.t.st.extras[e.ID()] = copyExtra(e)
	r.t.record(shared.TableExtras, shared.OpInsert, e.ID())
	return nil
}

func (r extraRepo) FindByID(_ context.Context, id string) (*extra.Extra, error) {
	e, ok := r.t.st.extras[id]
	if !ok {
		return nil, notFound("extra not found")
	}
	return copyExtra(e), nil
}

func (r extraRepo) List(_ context.Context, kind extra.Kind) ([]*extra.Extra, error) {
	out := make([]*extra.Extra, 0, len(r.t.st.extras))
	for _, e := range r.t.st.extras {
		if kind != "" && e.Kind() != kind {
			continue
		}
		out = append(out, copyExtra(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (r extraRepo) Update(_ context.Context, e *extra.Extra) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.extras[e.ID()]; !ok {
		return notFound("extra not found")
	}
	r.t.st.extras[e.ID()] = copyExtra(e)
	r.t.record(shared.TableExtras, shared.OpUpdate, e.ID())
	return nil
}

func (r extraRepo) Delete(_ context.Context, id string) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.extras[id]; !ok {
		return notFound("extra not found")
	}
	delete(r.t.st.extras, id)
	r.t.record(shared.TableExtras, shared.OpDelete, id)
	return nil
}

type minibarRepo struct{ t *tx }

func copyItem(it *minibar.Item) *minibar.Item {
	c, _ := minibar.NewItem(it.ID(), it.Name(), it.Category(), it.Stock(), it.Price())
	return c
}

func (r minibarRepo) Insert(_ context.Context, it *minibar.Item) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.items[it.ID()]; ok {
		return duplicate("minibar item already exists")
	}
	r.t.st.items[it.ID()] = copyItem(it)
	r.t.record(shared.TableMinibarItems, shared.OpInsert, it.ID())
	return nil
}

func (r minibarRepo) FindByID(_ context.Context, id string) (*minibar.Item, error) {
	it, ok := r.t.st.items[id]
	if !ok {
		return nil, notFound("minibar item not found")
	}
	return copyItem(it), nil
}

func (r minibarRepo) List(_ context.Context) ([]*minibar.Item, error) {
	out := make([]*minibar.Item, 0, len(r.t.st.items))
	for _, it := range r.t.st.items {
		out = append(out, copyItem(it))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Category() != b.Category() {
			return a.Category() < b.Category()
		}
		if a.Name() != b.Name() {
			return strings.Compare(a.Name(), b.Name()) < 0
		}
		return a.ID() < b.ID()
	})
	return out, nil
}

func (r minibarRepo) Update(_ context.Context, it *minibar.Item) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.items[it.ID()]; !ok {
		return notFound("minibar item not found")
	}
	r.t.st.items[it.ID()] = copyItem(it)
	r.t.record(shared.TableMinibarItems, shared.OpUpdate, it.ID())
	return nil
}

func (r minibarRepo) Delete(_ context.Context, id string) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.items[id]; !ok {
		return notFound("minibar item not found")
	}
	delete(r.t.st.items, id)
	r.t.record(shared.TableMinibarItems, shared.OpDelete, id)
	return nil
}

func (r minibarRepo) AdjustStock(_ context.Context, id string, delta int) (int, error) {
	if err := r.t.writable(); err != nil {
		return 0, err
	}
	cur, ok := r.t.st.items[id]
	if !ok {
		return 0, notFound("minibar item not found")
	}
	next := cur.Stock() + delta
	if next < 0 {
		return cur.Stock(), &minibar.NegativeStockError{ItemID: id, Stock: cur.Stock(), Requested: -delta}
	}
	it := copyItem(cur)
	if err := it.SetStock(next); err != nil {
		return cur.Stock(), err
	}
	r.t.st.items[id] = it
	r.t.record(shared.TableMinibarItems, shared.OpUpdate, id)
	return next, nil
}
