package exchange

import (
	"fmt"
	"time"
)

type Side int

const (
	Bid Side = iota
	Ask
)

var sideName = map[Side]string{
	Bid: "BID",
	Ask: "ASK",
}

func (s Side) String() string {
	name, ok := sideName[s]
	if !ok {
		return fmt.Sprintf("SIDE(%d)", int(s))
	}
	return name
}

func (s Side) valid() bool {
	return s == Bid || s == Ask
}

// Order is one resting order in a book. Orders are immutable once booked:
// a partial fill replaces the order with a smaller remainder that carries
// the same Arrival and Seq, so queue priority never resets.
type Order struct {
	Account  string    // Owning account id
	Price    int64     // Limit price in minor currency units
	Quantity int64     // Remaining quantity, always > 0 while booked
	Side     Side      // Order side
	Arrival  time.Time // Time of admission into the book
	Seq      uint64    // Admission sequence, unique tie-break on equal Arrival
}

// NewOrder validates the raw order fields and builds an unstamped Order.
// Arrival and Seq are assigned at admission, not here. A zero quantity is
// deliberately let through: admission owns that rejection.
func NewOrder(account string, price, quantity int64, side Side) (Order, error) {
	if account == "" {
		return Order{}, ErrBlankAccount
	}
	if price < 0 {
		return Order{}, ErrNegativePrice
	}
	if quantity < 0 {
		return Order{}, ErrNegativeQuantity
	}
	if !side.valid() {
		return Order{}, ErrUnknownSide
	}
	return Order{
		Account:  account,
		Price:    price,
		Quantity: quantity,
		Side:     side,
	}, nil
}

func (o Order) String() string {
	return fmt.Sprintf("%s %d@%d account=%s seq=%d arrival=%s",
		o.Side,
		o.Quantity,
		o.Price,
		o.Account,
		o.Seq,
		o.Arrival.Format(time.RFC3339Nano),
	)
}
