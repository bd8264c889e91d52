package extra

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("extra name cannot be empty")
	ErrNegativePrice = errors.New("extra price cannot be negative")
	ErrInvalidKind   = errors.New("invalid extra kind")
)

// Kind separates per-night extras from one-off addons.
type Kind string

const (
	KindExtra Kind = "extra"
	KindAddon Kind = "addon"
)

func (k Kind) IsValid() bool {
	return k == KindExtra || k == KindAddon
}

// ParseKind treats an empty kind as a regular extra.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindExtra, nil
	}
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Extra is a chargeable catalog entry. Booking extra lines reference it by name.
type Extra struct {
	id    string
	name  string
	kind  Kind
	price decimal.Decimal
}

func NewExtra(id, name string, kind Kind, price decimal.Decimal) (*Extra, error) {
	e := &Extra{id: id}
	if err := e.Update(name, kind, price); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Extra) Update(name string, kind Kind, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !kind.IsValid() {
		return ErrInvalidKind
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	e.name, e.kind, e.price = name, kind, price
	return nil
}

func (e *Extra) ID() string             { return e.id }
func (e *Extra) Name() string           { return e.name }
func (e *Extra) Kind() Kind             { return e.kind }
func (e *Extra) Price() decimal.Decimal { return e.price }

