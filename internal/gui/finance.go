package gui

import (
	"context"
	"log/slog"
	"time"

	"github.com/appengine-ltd/plushie-shop/internal/ledger"
)

const financeReadTimeout = 2 * time.Second

// financePanel mirrors the ledger for the sidebar. It re-reads the store
// only when the session reports a new ledger revision.
type financePanel struct {
	store  ledger.Store
	logger *slog.Logger

	revision int
	loaded   bool
	visible  bool

	txs     []ledger.Transaction
	summary ledger.Summary
	err     error
}

func newFinancePanel(store ledger.Store, logger *slog.Logger) *financePanel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &financePanel{store: store, logger: logger}
}

// sync refreshes the cached transactions when revision moved. It returns
// true when a read happened.
func (p *financePanel) sync(revision int) bool {
	if p.store == nil {
		return false
	}
	if p.loaded && revision == p.revision {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), financeReadTimeout)
	defer cancel()

	txs, err := p.store.Transactions(ctx)
	p.revision = revision
	p.loaded = true
	if err != nil {
		p.err = err
		p.logger.Warn("ledger read failed", "error", err)
		return true
	}
	p.err = nil
	p.txs = txs
	p.summary = ledger.Summarize(txs)
	return true
}

// recent returns up to n transactions, newest first.
func (p *financePanel) recent(n int) []ledger.Transaction {
	if n <= 0 || len(p.txs) == 0 {
		return nil
	}
	n = min(n, len(p.txs))
	out := make([]ledger.Transaction, 0, n)
	for i := len(p.txs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, p.txs[i])
	}
	return out
}
