package exchange

import (
	"fmt"
	"time"
)

// Trade records one executed match. BuyPrice and SellPrice differ whenever
// the matched orders crossed: the buyer pays its own limit, the seller
// receives its own limit, and the engine captures the spread.
type Trade struct {
	Buyer     string
	Seller    string
	BuyPrice  int64
	SellPrice int64
	Quantity  int64
	Timestamp time.Time
}

func (t Trade) String() string {
	return fmt.Sprintf("trade %d units, buyer %s paid %d/unit, seller %s received %d/unit",
		t.Quantity,
		t.Buyer,
		t.BuyPrice,
		t.Seller,
		t.SellPrice,
	)
}

// history is the append-only trade ledger, in execution order.
type history struct {
	trades []Trade
}

func newHistory() *history {
	return &history{
		trades: make([]Trade, 0, 1024),
	}
}

func (h *history) record(t Trade) {
	h.trades = append(h.trades, t)
}

// all returns a copy so callers cannot disturb the recorded sequence.
func (h *history) all() []Trade {
	out := make([]Trade, len(h.trades))
	copy(out, h.trades)
	return out
}
