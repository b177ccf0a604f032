// Command plushie-ledger inspects and edits the shop's transaction ledger
// without starting the game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/appengine-ltd/plushie-shop/internal/config"
	"github.com/appengine-ltd/plushie-shop/internal/display"
	"github.com/appengine-ltd/plushie-shop/internal/ledger"
	"github.com/appengine-ltd/plushie-shop/internal/ledger/sqlite"
)

const usage = `usage: plushie-ledger [-db path] <command>

commands:
  list                                 show every transaction
  summary                              show income, expenses and balance
  add <income|expense> <amount> <desc> record a transaction
  clear                                delete every transaction
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("plushie-ledger", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dbPath := fs.String("db", cfg.DatabasePath, "ledger database path")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	if err := config.EnsureParentDir(*dbPath); err != nil {
		return err
	}
	store, err := sqlite.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch rest[0] {
	case "list":
		return list(ctx, store, out)
	case "summary":
		return summary(ctx, store, out)
	case "add":
		return add(ctx, store, rest[1:], out)
	case "clear":
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear ledger: %w", err)
		}
		fmt.Fprintln(out, "ledger cleared")
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

func list(ctx context.Context, store ledger.Store, out io.Writer) error {
	txs, err := store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	if len(txs) == 0 {
		fmt.Fprintln(out, "no transactions")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tKIND\tAMOUNT\tDESCRIPTION")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			tx.ID,
			tx.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			tx.Kind,
			display.Amount(tx.Amount),
			tx.Description,
		)
	}
	return tw.Flush()
}

func summary(ctx context.Context, store ledger.Store, out io.Writer) error {
	txs, err := store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	sum := ledger.Summarize(txs)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Transactions\t%d\n", sum.Count)
	fmt.Fprintf(tw, "Income\t%s\n", display.Amount(sum.Income))
	fmt.Fprintf(tw, "Expenses\t%s\n", display.Amount(sum.Expense))
	fmt.Fprintf(tw, "Balance\t%s\n", display.Amount(sum.Balance()))
	return tw.Flush()
}

func add(ctx context.Context, store ledger.Store, args []string, out io.Writer) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: add needs a kind, an amount and a description", errUsage)
	}
	kind, err := ledger.ParseKind(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", ledger.ErrInvalidTransaction, args[1])
	}
	desc := strings.Join(args[2:], " ")
	if err := store.AddTransaction(ctx, kind, desc, amount); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}
	fmt.Fprintf(out, "recorded %s %s: %s\n", strings.ToLower(string(kind)), display.Amount(amount), desc)
	return nil
}
