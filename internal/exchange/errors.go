package exchange

import "errors"

// Construction failures (typed stand-in for the upstream order validator).
var (
	ErrBlankAccount     = errors.New("blank account id")
	ErrNegativePrice    = errors.New("negative price")
	ErrNegativeQuantity = errors.New("negative quantity")
	ErrUnknownSide      = errors.New("unknown order side")
)

// Admission and matching failures.
var (
	ErrZeroQuantity   = errors.New("zero quantity order")
	ErrUnknownAccount = errors.New("account does not exist")
	ErrEmptyBook      = errors.New("empty order book")
	ErrNoOverlap      = errors.New("no overlapping orders")
)
