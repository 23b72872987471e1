// Package transfer is a reference consumer of the voting engine: a native
// balance ledger with handlers that release funds or record remarks when
// bridge proposals resolve.
package transfer

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInsufficientBalance is returned when a transfer exceeds the sender's
	// balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Ledger is a minimal in-memory native balance ledger. It stands in for the
// host chain's currency module in demos and tests.
type Ledger struct {
	mu       sync.Mutex
	balances map[common.Address]*big.Int
}

// NewLedger returns a ledger seeded with the given balances.
func NewLedger(initial map[common.Address]*big.Int) *Ledger {
	l := &Ledger{balances: make(map[common.Address]*big.Int, len(initial))}
	for addr, amount := range initial {
		l.balances[addr] = new(big.Int).Set(amount)
	}

	return l
}

// Balance returns the account's balance. Unknown accounts hold zero.
func (l *Ledger) Balance(account common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.balances[account]
	if !ok {
		return new(big.Int)
	}

	return new(big.Int).Set(b)
}

// Transfer moves amount from one account to another.
func (l *Ledger) Transfer(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.balances[from]
	if !ok || src.Cmp(amount) < 0 {
		return fmt.Errorf("%w: account %s", ErrInsufficientBalance, from)
	}

	src.Sub(src, amount)
	dst, ok := l.balances[to]
	if !ok {
		dst = new(big.Int)
		l.balances[to] = dst
	}
	dst.Add(dst, amount)

	return nil
}
