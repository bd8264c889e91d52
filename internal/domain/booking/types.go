package booking

import "strings"

// Status is the persisted lifecycle column.
type Status string

const (
	StatusActive     Status = "active"
	StatusCancelled  Status = "cancelled"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// State is the lifecycle position derived from Status and the check-in flag.
type State string

const (
	StateDraft      State = "DRAFT"
	StateActive     State = "ACTIVE"
	StateCheckedIn  State = "CHECKED_IN"
	StateCancelled  State = "CANCELLED"
	StateCheckedOut State = "CHECKED_OUT"
)

func StateOf(status Status, checkedIn bool) State {
	switch status {
	case StatusActive:
		if checkedIn {
			return StateCheckedIn
		}
		return StateActive
	case StatusCancelled:
		return StateCancelled
	case StatusCheckedOut:
		return StateCheckedOut
	default:
		return StateDraft
	}
}

type Action string

const (
	ActionCreate    Action = "create"
	ActionEdit      Action = "edit"
	ActionCheckIn   Action = "check_in"
	ActionUncheckIn Action = "uncheck_in"
	ActionCheckout  Action = "checkout"
	ActionCancel    Action = "cancel"
	ActionRestore   Action = "restore"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentBkash        PaymentMethod = "BKASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentOther        PaymentMethod = "OTHER"
)

// ParsePaymentMethod never fails: blank is CASH, anything unknown is OTHER.
func ParsePaymentMethod(s string) PaymentMethod {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case "":
		return PaymentCash
	case PaymentCash, PaymentBkash, PaymentBankTransfer, PaymentOther:
		return m
	default:
		return PaymentOther
	}
}

// View selects one of the front-desk booking lists.
type View string

const (
	ViewAll        View = "all"
	ViewPending    View = "pending"
	ViewCheckedIn  View = "checked_in"
	ViewCheckedOut View = "checked_out"
	ViewCancelled  View = "cancelled"
)

func (v View) IsValid() bool {
	switch v {
	case ViewAll, ViewPending, ViewCheckedIn, ViewCheckedOut, ViewCancelled:
		return true
	default:
		return false
	}
}

// Filter narrows a booking lookup. Zero fields match everything.
type Filter struct {
	Status        *Status
	CheckedIn     *bool
	ReservationID string
	Search        string
	Limit         int
	Offset        int
}

// FilterForView maps a list view onto the status / check-in predicate.
func FilterForView(v View) Filter {
	var f Filter
	set := func(s Status, checkedIn *bool) {
		f.Status = &s
		f.CheckedIn = checkedIn
	}
	yes, no := true, false
	switch v {
	case ViewPending:
		set(StatusActive, &no)
	case ViewCheckedIn:
		set(StatusActive, &yes)
	case ViewCheckedOut:
		set(StatusCheckedOut, nil)
	case ViewCancelled:
		set(StatusCancelled, nil)
	}
	return f
}

// Matches evaluates the status, check-in and id predicates of f against b.
// Search and paging are left to the caller.
func (f Filter) Matches(b *Booking) bool {
	if f.Status != nil && b.status != *f.Status {
		return false
	}
	if f.CheckedIn != nil && b.checkInStatus != *f.CheckedIn {
		return false
	}
	if f.ReservationID != "" && b.reservationID != f.ReservationID {
		return false
	}
	return true
}

// MatchesSearch is a case-insensitive substring match over id and guest contact fields.
func (f Filter) MatchesSearch(b *Booking) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	for _, s := range []string{b.reservationID, b.guest.Name, b.guest.Email, b.guest.Phone} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
