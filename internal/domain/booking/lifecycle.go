package booking

import (
	"time"

	"hotel-frontdesk/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type rule struct {
	to   State
	noop bool
}

// transitions is the legal (state, action) table. A noop rule succeeds
// without changing the booking, which absorbs repeated desk clicks.
var transitions = map[State]map[Action]rule{
	StateDraft: {
		ActionCreate: {to: StateActive},
	},
	StateActive: {
		ActionEdit:      {to: StateActive},
		ActionCheckIn:   {to: StateCheckedIn},
		ActionUncheckIn: {to: StateActive, noop: true},
		ActionCancel:    {to: StateCancelled},
		ActionRestore:   {to: StateActive, noop: true},
	},
	StateCheckedIn: {
		ActionEdit:      {to: StateCheckedIn},
		ActionCheckIn:   {to: StateCheckedIn},
		ActionUncheckIn: {to: StateActive},
		ActionCheckout:  {to: StateCheckedOut},
		ActionCancel:    {to: StateCancelled},
	},
	StateCancelled: {
		ActionCancel:  {to: StateCancelled, noop: true},
		ActionRestore: {to: StateActive},
	},
	StateCheckedOut: {
		ActionRestore: {to: StateActive},
	},
}

func CanTransition(from State, a Action) bool {
	_, ok := transitions[from][a]
	return ok
}

func guard(from State, a Action) error {
	if !CanTransition(from, a) {
		return &TransitionError{From: from, Action: a}
	}
	return nil
}

func (b *Booking) isNoop(a Action) bool {
	return transitions[b.State()][a].noop
}

// Patch is a field-level update. Nil fields are left alone.
type Patch struct {
	Guest              *GuestInfo
	Stays              []RoomStay
	AdvancePayment     *Payment
	TotalReceived      *Payment
	MinibarConsumption map[string]int
	MinibarTotal       *decimal.Decimal
	TotalAmount        *decimal.Decimal
	TotalDue           *decimal.Decimal
	CheckInStatus      *bool
	Status             *Status
	UpdatedAt          *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Guest == nil && p.Stays == nil && p.AdvancePayment == nil && p.TotalReceived == nil &&
		p.MinibarConsumption == nil && p.MinibarTotal == nil && p.TotalAmount == nil && p.TotalDue == nil &&
		p.CheckInStatus == nil && p.Status == nil && p.UpdatedAt == nil
}

// Apply copies the set fields of p onto b. Stores use it to build the
// post-update record.
func (b *Booking) Apply(p Patch) {
	b.guest = patch.Coalesce(p.Guest, b.guest)
	if p.Stays != nil {
		b.stays = cloneStays(p.Stays)
	}
	b.advancePayment = patch.Coalesce(p.AdvancePayment, b.advancePayment)
	b.totalReceived = patch.Coalesce(p.TotalReceived, b.totalReceived)
	if p.MinibarConsumption != nil {
		b.minibarConsumption = cloneConsumption(p.MinibarConsumption)
	}
	b.minibarTotal = patch.Coalesce(p.MinibarTotal, b.minibarTotal)
	b.checkInStatus = patch.Coalesce(p.CheckInStatus, b.checkInStatus)
	b.status = patch.Coalesce(p.Status, b.status)
	b.updatedAt = patch.Coalesce(p.UpdatedAt, b.updatedAt)
}

// withTotals fills the denormalised total columns from the booking as it
// stands after the change.
func (b *Booking) withTotals(p Patch) Patch {
	total := BookingTotal(b)
	due := TotalDue(b)
	p.TotalAmount = &total
	p.TotalDue = &due
	return p
}

func (b *Booking) commit(p Patch, now time.Time) Patch {
	p.UpdatedAt = &now
	b.Apply(p)
	return b.withTotals(p)
}

// Edit replaces the guest, stays and advance payment of a booking that is
// still open.
type Edit struct {
	Guest          GuestInfo
	Stays          []RoomStay
	AdvancePayment Payment
}

func (b *Booking) Edit(e Edit, now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionEdit); err != nil {
		return Patch{}, err
	}
	guest := e.Guest.trimmed()
	stays := normalizeStays(e.Stays)

	verr := &ValidationError{}
	validateContent(verr, guest, stays, e.AdvancePayment)
	if err := verr.orNil(); err != nil {
		return Patch{}, err
	}

	advance := e.AdvancePayment
	return b.commit(Patch{Guest: &guest, Stays: stays, AdvancePayment: &advance}, now), nil
}

// CheckIn records the amount taken at the desk. A manager must sign off.
// Checking in again only replaces the received payment.
func (b *Booking) CheckIn(received Payment, managerAck bool, now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionCheckIn); err != nil {
		return Patch{}, err
	}
	verr := &ValidationError{}
	if !managerAck {
		verr.add("managerAck", "manager acknowledgement is required to check in")
	}
	if received.Amount.IsNegative() {
		verr.add("totalReceived.amount", "must not be negative")
	}
	if err := verr.orNil(); err != nil {
		return Patch{}, err
	}

	checkedIn := true
	return b.commit(Patch{TotalReceived: &received, CheckInStatus: &checkedIn}, now), nil
}

func (b *Booking) UncheckIn(now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionUncheckIn); err != nil {
		return Patch{}, err
	}
	if b.isNoop(ActionUncheckIn) {
		return Patch{}, nil
	}
	checkedIn := false
	return b.commit(Patch{CheckInStatus: &checkedIn}, now), nil
}

// Checkout closes a checked-in stay and prices the minibar consumption
// against prices. Non-positive quantities are dropped.
func (b *Booking) Checkout(consumption map[string]int, prices map[string]decimal.Decimal, now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionCheckout); err != nil {
		return Patch{}, err
	}
	consumed := make(map[string]int, len(consumption))
	for id, qty := range consumption {
		if qty > 0 {
			consumed[id] = qty
		}
	}
	minibarTotal := MinibarTotal(consumed, prices)
	checkedIn := false
	status := StatusCheckedOut
	return b.commit(Patch{
		MinibarConsumption: consumed,
		MinibarTotal:       &minibarTotal,
		CheckInStatus:      &checkedIn,
		Status:             &status,
	}, now), nil
}

// Cancel on an already cancelled booking only re-affirms the status.
func (b *Booking) Cancel(now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionCancel); err != nil {
		return Patch{}, err
	}
	status := StatusCancelled
	if b.isNoop(ActionCancel) {
		return Patch{Status: &status}, nil
	}
	checkedIn := false
	return b.commit(Patch{Status: &status, CheckInStatus: &checkedIn}, now), nil
}

// Restore reopens a cancelled or checked-out booking. The guest has to check
// in again.
func (b *Booking) Restore(now time.Time) (Patch, error) {
	if err := guard(b.State(), ActionRestore); err != nil {
		return Patch{}, err
	}
	if b.isNoop(ActionRestore) {
		return Patch{}, nil
	}
	status := StatusActive
	checkedIn := false
	return b.commit(Patch{Status: &status, CheckInStatus: &checkedIn}, now), nil
}
