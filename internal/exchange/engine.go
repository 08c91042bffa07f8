package exchange

import (
	"time"
)

// Engine is a single-asset continuous double-auction matching engine. It
// owns two books, the account ledger and the trade history outright, so
// independent engines can run side by side without shared state.
//
// The engine is single-threaded by design. Callers sharing one instance
// across goroutines must serialize every public call behind one boundary:
// a settlement step is a multi-read-modify-write sequence and cannot be
// interleaved with anything else on the same instance.
type Engine struct {
	bids    *book
	asks    *book
	ledger  *ledger
	history *history

	overhead int64  // Running total of captured spread
	seq      uint64 // Admission sequence counter
}

func New() *Engine {
	return &Engine{
		bids:    newBook(Bid),
		asks:    newBook(Ask),
		ledger:  newLedger(),
		history: newHistory(),
	}
}

// CreateAccount stores a fresh account with the given opening balance and
// returns its generated id. Accounts are never removed; only settlement
// mutates them afterwards.
func (e *Engine) CreateAccount(money, stock int64) string {
	return e.ledger.create(money, stock)
}

// SubmitOrder validates, stamps and books a new order. A zero quantity or
// an unrecognized side is rejected outright and leaves the books
// untouched. The arrival stamp pairs wall time with a strictly-increasing
// sequence so priority stays deterministic even on equal instants.
func (e *Engine) SubmitOrder(account string, price, quantity int64, side Side) error {
	o, err := NewOrder(account, price, quantity, side)
	if err != nil {
		return err
	}
	if o.Quantity == 0 {
		return ErrZeroQuantity
	}
	if _, ok := e.ledger.get(o.Account); !ok {
		return ErrUnknownAccount
	}

	e.seq++
	o.Arrival = time.Now()
	o.Seq = e.seq
	e.bookFor(o.Side).insert(&o)
	return nil
}

func (e *Engine) bookFor(side Side) *book {
	if side == Bid {
		return e.bids
	}
	return e.asks
}

// BestOrder returns the highest-priority order of a side: highest price
// for bids, lowest for asks, earliest arrival on price ties.
func (e *Engine) BestOrder(side Side) (Order, error) {
	if !side.valid() {
		return Order{}, ErrUnknownSide
	}
	o, ok := e.bookFor(side).best()
	if !ok {
		return Order{}, ErrEmptyBook
	}
	return *o, nil
}

// BestNOrders returns up to n orders of a side in priority order. An empty
// book yields an empty slice rather than an error.
func (e *Engine) BestNOrders(side Side, n int) []Order {
	if !side.valid() {
		return []Order{}
	}
	return e.bookFor(side).bestN(n)
}

// HasOverlap reports whether the books cross: both non-empty and the best
// bid strictly above the best ask. Equal prices do not overlap.
func (e *Engine) HasOverlap() bool {
	bid, bidOk := e.bids.best()
	ask, askOk := e.asks.best()
	return bidOk && askOk && bid.Price > ask.Price
}

// SettleOnce executes at most one match between the current best bid and
// best ask. Callers loop on it to drain all crossable liquidity.
//
// The matched quantity starts at the smaller of the two orders, then is
// capped by what the seller actually holds and by what the buyer can
// afford at its own limit price. The buyer pays its own limit per unit,
// not the seller's and not a midpoint; the seller receives its own limit,
// and the spread between the two is captured as overhead. An order that
// cannot trade at all — a seller with nothing to deliver, a buyer unable
// to afford a single unit — is evicted from its book and the step ends
// with no trade and a nil error.
func (e *Engine) SettleOnce() (*Trade, error) {
	if !e.HasOverlap() {
		return nil, ErrNoOverlap
	}

	// HasOverlap guarantees both books are non-empty, and admission
	// guarantees both accounts exist in the ledger.
	bestBuy, _ := e.bids.best()
	bestSell, _ := e.asks.best()
	buyer, _ := e.ledger.get(bestBuy.Account)
	seller, _ := e.ledger.get(bestSell.Account)

	qty := min(bestBuy.Quantity, bestSell.Quantity)
	if seller.Stock < bestSell.Quantity {
		qty = seller.Stock
	}
	if qty == 0 {
		// Seller has nothing to deliver.
		e.asks.remove(bestSell)
		return nil, nil
	}
	if buyer.Money < bestBuy.Price {
		// Buyer cannot afford even one unit at its own limit.
		e.bids.remove(bestBuy)
		return nil, nil
	}
	if buyer.Money < qty*bestBuy.Price {
		qty = buyer.Money / bestBuy.Price
	}

	totalBuyCost := qty * bestBuy.Price
	totalSellProceeds := qty * bestSell.Price
	e.overhead += totalBuyCost - totalSellProceeds

	buyer.Stock += qty
	buyer.Money -= totalBuyCost
	seller.Stock -= qty
	seller.Money += totalSellProceeds

	// Replace the matched entries. A partial fill re-admits the remainder
	// with its original Arrival and Seq intact, so it keeps its place in
	// the queue instead of being re-stamped.
	e.bids.remove(bestBuy)
	e.asks.remove(bestSell)
	if qty < bestBuy.Quantity {
		rem := *bestBuy
		rem.Quantity -= qty
		e.bids.insert(&rem)
	}
	if qty < bestSell.Quantity {
		rem := *bestSell
		rem.Quantity -= qty
		e.asks.insert(&rem)
	}

	trade := Trade{
		Buyer:     bestBuy.Account,
		Seller:    bestSell.Account,
		BuyPrice:  bestBuy.Price,
		SellPrice: bestSell.Price,
		Quantity:  qty,
		Timestamp: time.Now(),
	}
	e.history.record(trade)
	return &trade, nil
}

// OrdersForAccount returns the account's open orders across both books,
// bid entries first, each side in priority order.
func (e *Engine) OrdersForAccount(account string) []Order {
	orders := e.bids.forAccount(account)
	return append(orders, e.asks.forAccount(account)...)
}

// TradeHistory returns the executed trades in execution order.
func (e *Engine) TradeHistory() []Trade {
	return e.history.all()
}

// AllBalances returns a snapshot of every account balance.
func (e *Engine) AllBalances() map[string]Balance {
	return e.ledger.snapshot()
}

// TotalOverhead returns the spread captured across all settlements so far.
func (e *Engine) TotalOverhead() int64 {
	return e.overhead
}
