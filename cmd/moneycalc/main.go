// Command moneycalc evaluates one money expression and prints the result.
//
// Usage:
//
//	moneycalc [flags] OPERAND OP OPERAND
//	moneycalc [flags] neg|abs|pos OPERAND
//	moneycalc [flags] format OPERAND
//
// An operand is CODE:AMOUNT, :AMOUNT for the default currency, or a plain
// number. OP is one of + - * / // % == != < <= > >=.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/exactmoney/money"
	"github.com/exactmoney/money/internal/calc"
	"github.com/exactmoney/money/internal/config"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("moneycalc", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: moneycalc [flags] OPERAND OP OPERAND | neg|abs|pos OPERAND | format OPERAND")
		fs.PrintDefaults()
	}
	cfg, args, err := config.Load(fs, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	logger := newLogger(cfg, stderr)

	curr, err := cfg.Currency()
	if err != nil {
		level.Error(logger).Log("msg", "config", "err", err)
		return err
	}
	f, err := cfg.Formatter()
	if err != nil {
		level.Error(logger).Log("msg", "config", "err", err)
		return err
	}

	// format OPERAND
	if len(args) == 2 && args[0] == "format" {
		v, err := calc.ParseOperand(args[1], curr, cfg.Policy())
		if err != nil {
			level.Error(logger).Log("msg", "format", "err", err)
			return err
		}
		m, ok := v.(money.Money)
		if !ok {
			err = fmt.Errorf("formatting %v: %w", v, money.ErrInvalidOperand)
			level.Error(logger).Log("msg", "format", "err", err)
			return err
		}
		s, err := f.Format(m)
		if err != nil {
			level.Error(logger).Log("msg", "format", "err", err)
			return err
		}
		fmt.Fprintln(stdout, s)
		return nil
	}

	e, err := calc.Parse(args, curr, cfg.Policy())
	if err != nil {
		level.Error(logger).Log("msg", "parse", "err", err)
		fs.Usage()
		return err
	}
	ev := calc.NewLoggingEvaluator(log.With(logger, "component", "calc"), calc.NewEvaluator())
	res, err := ev.Eval(e)
	if err != nil {
		return err
	}

	if m, ok := res.(money.Money); ok {
		s, err := f.Format(m)
		if err != nil {
			level.Error(logger).Log("msg", "format", "err", err)
			return err
		}
		fmt.Fprintln(stdout, s)
		return nil
	}
	fmt.Fprintln(stdout, res)
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if cfg.LogFormat == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.LogLevel, level.InfoValue())))
}
