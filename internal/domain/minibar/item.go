package minibar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("item name cannot be empty")
	ErrInvalidCategory = errors.New("invalid item category")
	ErrNegativePrice   = errors.New("item price cannot be negative")
	ErrNegativeStock   = errors.New("item stock cannot be negative")
	ErrInsufficient    = errors.New("insufficient stock")
)

type Category string

const (
	CategoryAmenities Category = "AMENITIES"
	CategoryMinibar   Category = "MINIBAR"
)

func (c Category) IsValid() bool {
	return c == CategoryAmenities || c == CategoryMinibar
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// NegativeStockError reports a decrement that would take an item below zero.
// It matches ErrInsufficient with errors.Is.
type NegativeStockError struct {
	ItemID    string
	Stock     int
	Requested int
}

func (e *NegativeStockError) Error() string {
	return fmt.Sprintf("item %s: stock %d cannot cover %d", e.ItemID, e.Stock, e.Requested)
}

func (e *NegativeStockError) Is(target error) bool {
	return target == ErrInsufficient
}

type Item struct {
	id       string
	name     string
	category Category
	stock    int
	price    decimal.Decimal
}

func NewItem(id, name string, category Category, stock int, price decimal.Decimal) (*Item, error) {
	it := &Item{id: id}
	if err := it.Update(name, category, price); err != nil {
		return nil, err
	}
	if err := it.SetStock(stock); err != nil {
		return nil, err
	}
	return it, nil
}

// Update edits the catalog fields. Stock moves through SetStock, Consume and
// Restock only.
func (i *Item) Update(name string, category Category, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	i.name, i.category, i.price = name, category, price
	return nil
}

// SetStock overwrites the count after a physical stock take.
func (i *Item) SetStock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	i.stock = stock
	return nil
}

// Consume takes qty units out of stock. Non-positive quantities are a no-op.
// The item is left untouched when the result would go below zero.
func (i *Item) Consume(qty int) (int, error) {
	if qty <= 0 {
		return i.stock, nil
	}
	if i.stock-qty < 0 {
		return i.stock, &NegativeStockError{ItemID: i.id, Stock: i.stock, Requested: qty}
	}
	i.stock -= qty
	return i.stock, nil
}

func (i *Item) Restock(qty int) int {
	if qty > 0 {
		i.stock += qty
	}
	return i.stock
}

func (i *Item) ID() string             { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Category() Category     { return i.category }
func (i *Item) Stock() int             { return i.stock }
func (i *Item) Price() decimal.Decimal { return i.price }

// PriceList maps item id to unit price. It is the catalog view pricing needs.
type PriceList map[string]decimal.Decimal

func NewPriceList(items []*Item) PriceList {
	pl := make(PriceList, len(items))
	for _, it := range items {
		pl[it.id] = it.price
	}
	return pl
}
