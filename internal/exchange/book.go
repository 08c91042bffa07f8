package exchange

import (
	"github.com/tidwall/btree"
)

// book holds the open orders of one side, kept in price-time priority by
// the btree comparator. Bids sort highest price first, asks lowest price
// first; within a price, earlier Arrival wins, and Seq breaks the tie when
// two orders carry the same instant.
type book struct {
	orders *btree.BTreeG[*Order]
}

func newBook(side Side) *book {
	var less func(a, b *Order) bool
	switch side {
	case Bid:
		// Sorted greatest price first.
		less = func(a, b *Order) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return arrivedBefore(a, b)
		}
	default:
		// Sorted least price first.
		less = func(a, b *Order) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return arrivedBefore(a, b)
		}
	}
	return &book{
		orders: btree.NewBTreeG(less),
	}
}

func arrivedBefore(a, b *Order) bool {
	if !a.Arrival.Equal(b.Arrival) {
		return a.Arrival.Before(b.Arrival)
	}
	return a.Seq < b.Seq
}

func (b *book) insert(o *Order) {
	b.orders.Set(o)
}

func (b *book) remove(o *Order) {
	b.orders.Delete(o)
}

// best returns the highest-priority order of the side, or false on an
// empty book.
func (b *book) best() (*Order, bool) {
	return b.orders.Min()
}

// bestN returns up to n orders in priority order. An empty book yields an
// empty slice, never nil checks for the caller to trip over.
func (b *book) bestN(n int) []Order {
	if n <= 0 {
		return []Order{}
	}
	out := make([]Order, 0, min(n, b.orders.Len()))
	b.orders.Scan(func(o *Order) bool {
		out = append(out, *o)
		return len(out) < n
	})
	return out
}

// forAccount collects the account's open orders in priority order.
func (b *book) forAccount(account string) []Order {
	var out []Order
	b.orders.Scan(func(o *Order) bool {
		if o.Account == account {
			out = append(out, *o)
		}
		return true
	})
	return out
}
