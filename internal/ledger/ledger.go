// Package ledger records the shop's income and expenses.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells income from expense.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind accepts "income"/"expense" in any case.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, raw)
	}
}

// ErrInvalidTransaction is returned for entries a store refuses to keep.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is one ledger entry.
type Transaction struct {
	ID          int64
	Kind        Kind
	Description string
	Amount      float64
	CreatedAt   time.Time
}

// Store persists transactions. Writes are append-only; reads return a
// snapshot in insertion order.
type Store interface {
	AddTransaction(ctx context.Context, kind Kind, description string, amount float64) error
	Transactions(ctx context.Context) ([]Transaction, error)
	Clear(ctx context.Context) error
}

// Validate checks an entry before it is stored.
func Validate(kind Kind, description string, amount float64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, kind)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidTransaction)
	}
	return nil
}

// Summary totals a set of transactions.
type Summary struct {
	Income  float64
	Expense float64
	Count   int
}

// Balance is income minus expense, in whole cents.
func (s Summary) Balance() float64 {
	return decimal.NewFromFloat(s.Income).Sub(decimal.NewFromFloat(s.Expense)).Round(2).InexactFloat64()
}

// Summarize totals in decimal so long ledgers of 0.10 steps stay exact to
// the cent.
func Summarize(txs []Transaction) Summary {
	var income, expense decimal.Decimal
	var sum Summary
	for _, tx := range txs {
		switch tx.Kind {
		case KindIncome:
			income = income.Add(decimal.NewFromFloat(tx.Amount))
		case KindExpense:
			expense = expense.Add(decimal.NewFromFloat(tx.Amount))
		default:
			continue
		}
		sum.Count++
	}
	sum.Income = income.Round(2).InexactFloat64()
	sum.Expense = expense.Round(2).InexactFloat64()
	return sum
}
