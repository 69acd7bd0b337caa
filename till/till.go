// Package till implements a cash drawer holding money.Money that can be
// shared by concurrent callers.
//
// The drawer content is an immutable money.Money swapped atomically,
// readers never block and writers retry until their update applies
// to the latest content.
package till

import (
	"fmt"

	"github.com/progressoft/go-denominations/money"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Till is a cash drawer.
type Till struct {
	drawer *atomic.Pointer[money.Money]

	name string
	log  *zap.Logger
}

// New creates a Till holding float.
// Default list:
// - Logger: zap.NewNop()
// - Name: none, entries carry no "till" field
func New(float money.Money, options ...Option) *Till {
	t := &Till{
		drawer: atomic.NewPointer(&float),
		log:    zap.NewNop(),
	}

	for _, o := range options {
		o.apply(t)
	}

	if t.name != "" {
		t.log = t.log.With(zap.String("till", t.name))
	}

	t.log.Debug(
		"till opened",
		zap.Stringer("balance", float),
		zap.Stringers("options", options),
	)

	return t
}

// Balance returns the current content of the drawer.
func (t *Till) Balance() money.Money {
	return *t.drawer.Load()
}

// Deposit adds the units of m to the drawer and
// returns the new balance.
func (t *Till) Deposit(m money.Money) money.Money {
	balance, _ := t.update(func(current money.Money) (money.Money, error) {
		return current.Plus(m), nil
	})

	t.log.Debug(
		"deposit",
		zap.Stringer("amount", m),
		zap.Int("units", m.Len()),
		zap.Stringer("balance", balance),
	)

	return balance
}

// Withdraw removes from the drawer the units matching the amount of m,
// picked as described by money.Money.Minus, and returns the new balance.
// The drawer is left untouched if the units cannot cover m exactly.
func (t *Till) Withdraw(m money.Money) (money.Money, error) {
	balance, err := t.update(func(current money.Money) (money.Money, error) {
		return current.Minus(m)
	})
	if err != nil {
		t.log.Info(
			"withdraw rejected",
			zap.Stringer("amount", m),
			zap.Error(err),
		)

		return money.Money{}, fmt.Errorf("withdraw %s: %w", m, err)
	}

	t.log.Debug(
		"withdraw",
		zap.Stringer("amount", m),
		zap.Stringer("balance", balance),
	)

	return balance, nil
}

// Reset replaces the content of the drawer with float
// and returns the previous content.
func (t *Till) Reset(float money.Money) money.Money {
	previous := *t.drawer.Swap(&float)

	t.log.Debug(
		"till reset",
		zap.Stringer("previous", previous),
		zap.Stringer("balance", float),
	)

	return previous
}

// update applies fn to the latest drawer content until the result
// is stored without a concurrent update in between.
func (t *Till) update(
	fn func(current money.Money) (money.Money, error),
) (money.Money, error) {
	for {
		current := t.drawer.Load()

		next, err := fn(*current)
		if err != nil {
			return money.Money{}, err
		}

		if t.drawer.CompareAndSwap(current, &next) {
			return next, nil
		}
	}
}
