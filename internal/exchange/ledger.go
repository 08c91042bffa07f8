package exchange

import (
	"github.com/google/uuid"
)

// Balance is one account's holdings. Settlement is the only mutator and
// keeps both fields non-negative.
type Balance struct {
	Money int64 // Cash in minor currency units
	Stock int64 // Inventory units
}

// ledger maps account ids to balances. Accounts are created once and never
// removed.
type ledger struct {
	accounts map[string]*Balance
}

func newLedger() *ledger {
	return &ledger{
		accounts: make(map[string]*Balance),
	}
}

// create stores a fresh account and returns its generated id.
func (l *ledger) create(money, stock int64) string {
	id := uuid.New().String()
	l.accounts[id] = &Balance{Money: money, Stock: stock}
	return id
}

func (l *ledger) get(id string) (*Balance, bool) {
	b, ok := l.accounts[id]
	return b, ok
}

// snapshot returns a copy of every balance, safe for the caller to hold.
func (l *ledger) snapshot() map[string]Balance {
	out := make(map[string]Balance, len(l.accounts))
	for id, b := range l.accounts {
		out[id] = *b
	}
	return out
}
