package sim

import (
	"math/rand"

	"bourse/internal/exchange"
)

// Intent is one agent's wish to place an order, pending admission by the
// engine goroutine.
type Intent struct {
	Account  string
	Price    int64
	Quantity int64
	Side     exchange.Side
}

// Agent is a noise trader: it quotes a uniformly random side, a price
// inside the configured band and a small random quantity. Each agent owns
// its own seeded rand.Rand so runs replay deterministically without any
// locking between agents.
type Agent struct {
	account string
	rng     *rand.Rand
	cfg     Config
}

func NewAgent(account string, seed int64, cfg Config) *Agent {
	return &Agent{
		account: account,
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
	}
}

func (a *Agent) Next() Intent {
	side := exchange.Bid
	if a.rng.Intn(2) == 1 {
		side = exchange.Ask
	}
	band := a.cfg.PriceMax - a.cfg.PriceMin + 1
	return Intent{
		Account:  a.account,
		Price:    a.cfg.PriceMin + a.rng.Int63n(band),
		Quantity: 1 + a.rng.Int63n(a.cfg.MaxQuantity),
		Side:     side,
	}
}
