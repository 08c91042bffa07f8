package sim

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/exchange"
)

const intentChanSize = 100

// Summary reports what one run did.
type Summary struct {
	Submitted int
	Rejected  int
	Trades    int
	Evictions int
	Overhead  int64
	Balances  map[string]exchange.Balance
}

// Runner drives one engine with a population of agents. Agents run as
// goroutines under a tomb and only produce intents; the Run goroutine is
// the sole owner of the engine, which keeps every engine call serialized
// behind a single boundary.
type Runner struct {
	cfg     Config
	engine  *exchange.Engine
	agents  []*Agent
	intents chan Intent
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := exchange.New()
	agents := make([]*Agent, cfg.Agents)
	for i := range agents {
		account := engine.CreateAccount(cfg.InitialMoney, cfg.InitialStock)
		agents[i] = NewAgent(account, cfg.Seed+int64(i), cfg)
	}

	return &Runner{
		cfg:     cfg,
		engine:  engine,
		agents:  agents,
		intents: make(chan Intent, intentChanSize),
	}, nil
}

// Run feeds agent intents through the engine until every agent has spent
// its rounds or the context is cancelled, settling after each admission
// until no crossable price remains.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	t, _ := tomb.WithContext(ctx)

	var wg sync.WaitGroup
	for _, agent := range r.agents {
		agent := agent
		wg.Add(1)
		t.Go(func() error {
			defer wg.Done()
			for i := 0; i < r.cfg.Rounds; i++ {
				select {
				case <-t.Dying():
					return nil
				case r.intents <- agent.Next():
				}
			}
			return nil
		})
	}
	// Close the intent feed once every agent has finished or given up.
	t.Go(func() error {
		wg.Wait()
		close(r.intents)
		return nil
	})

	var summary Summary
	for intent := range r.intents {
		summary.Submitted++
		err := r.engine.SubmitOrder(intent.Account, intent.Price, intent.Quantity, intent.Side)
		if err != nil {
			summary.Rejected++
			log.Warn().
				Err(err).
				Str("account", intent.Account).
				Msg("order rejected")
			continue
		}
		r.drain(&summary)
	}

	err := t.Wait()
	summary.Overhead = r.engine.TotalOverhead()
	summary.Balances = r.engine.AllBalances()
	if err != nil && !errors.Is(err, context.Canceled) {
		return summary, err
	}
	// Cancellation winds the run down early; the partial summary is
	// still coherent.
	return summary, nil
}

// drain settles until the books no longer cross.
func (r *Runner) drain(summary *Summary) {
	for r.engine.HasOverlap() {
		trade, err := r.engine.SettleOnce()
		if err != nil {
			// Cannot happen while HasOverlap holds; bail out rather
			// than spin.
			log.Error().Err(err).Msg("settlement failed")
			return
		}
		if trade == nil {
			// An unfillable order was evicted, no trade produced.
			summary.Evictions++
			continue
		}
		summary.Trades++
		log.Debug().
			Str("buyer", trade.Buyer).
			Str("seller", trade.Seller).
			Int64("quantity", trade.Quantity).
			Int64("buy_price", trade.BuyPrice).
			Int64("sell_price", trade.SellPrice).
			Msg("trade settled")
	}
}

// Engine exposes the underlying engine for post-run inspection. Callers
// must not touch it while Run is in flight.
func (r *Runner) Engine() *exchange.Engine {
	return r.engine
}
