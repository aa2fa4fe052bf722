// Command fxconvert converts an amount between currencies using the quotes
// of a configuration file.
//
// Usage:
//
//	fxconvert -config configs/fxconvert.yaml -amount 100 -from GBP -to EUR [-locale de] [-style symbol]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moneyfx/money"
	"github.com/moneyfx/money/decimal"
	"github.com/moneyfx/money/internal/config"
)

type options struct {
	amount string
	from   string
	to     string
	locale string
	style  string
}

func main() {
	configPath := flag.String("config", "", "config file path")
	var opts options
	flag.StringVar(&opts.amount, "amount", "", "amount in the base currency")
	flag.StringVar(&opts.from, "from", "", "base currency code")
	flag.StringVar(&opts.to, "to", "", "counter currency code")
	flag.StringVar(&opts.locale, "locale", "", "locale of the output, overrides format.locale")
	flag.StringVar(&opts.style, "style", "", "symbol, code, decimal or accounting, overrides format.style")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, os.Stdout); err != nil {
		slog.Error("conversion failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options, w io.Writer) error {
	if opts.locale == "" {
		opts.locale = cfg.Format.Locale
	}
	if opts.style == "" {
		opts.style = cfg.Format.Style
	}
	style, err := money.ParseStyle(opts.style)
	if err != nil {
		return err
	}

	reg, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}
	table, err := cfg.Table(reg)
	if err != nil {
		return fmt.Errorf("building quote table: %w", err)
	}
	slog.Debug("configuration loaded", "currencies", reg.Len(), "quotes", table.Len())

	base, ok := reg.Lookup(opts.from)
	if !ok {
		return fmt.Errorf("unknown base currency %q", opts.from)
	}
	counter, ok := reg.Lookup(opts.to)
	if !ok {
		return fmt.Errorf("unknown counter currency %q", opts.to)
	}
	amount, err := decimal.Parse[decimal.Bankers](opts.amount)
	if err != nil {
		return fmt.Errorf("parsing amount: %w", err)
	}

	q, err := table.Quote(ctx, base, counter)
	if err != nil {
		return err
	}
	slog.Debug("quote found", "base", base.Code(), "counter", counter.Code(), "quote", q.String())

	commission, err := q.Commission(amount)
	if err != nil {
		return err
	}
	value, err := q.CounterValue(amount)
	if err != nil {
		return err
	}

	printAmount := func(label string, curr money.Currency, d money.Decimal) error {
		text, err := curr.FormatValue(d, style, opts.locale)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%-11s %s\n", label+":", text)
		return err
	}
	if err := printAmount("amount", base, amount); err != nil {
		return err
	}
	if err := printAmount("commission", base, commission); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-11s %v\n", "rate:", q.Rate()); err != nil {
		return err
	}
	return printAmount("received", counter, value)
}
