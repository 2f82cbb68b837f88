package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/moneybook/moneybook"
	"github.com/moneybook/moneybook/renderer"
)

// summaryCmd shows the period overview.
type summaryCmd struct {
	period string
	key    string
	list   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a period summary" }
func (*summaryCmd) Usage() string {
	return `mbk summary [-p month|year] [-k <bucket>] [-list]

  Shows income, expense and net for one period bucket, with account
  balances and savings goal progress. Defaults to the current month.
  -list prints the buckets that have activity instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "bucket granularity, month or year")
	f.StringVar(&c.key, "k", "", "bucket to report on, such as 2024-06, defaults to the current one")
	f.BoolVar(&c.list, "list", false, "list available buckets")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := moneybook.ParsePeriod(c.period)
	if err != nil || period == moneybook.Weekly {
		fmt.Fprintf(os.Stderr, "Error: -p must be month or year, got %q\n", c.period)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	keys := moneybook.PeriodKeys(state.Transactions, period, moneybook.Today())

	if c.list {
		fmt.Println(strings.Join(keys, "\n"))
		return subcommands.ExitSuccess
	}

	key := c.key
	if key == "" {
		key = period.Key(moneybook.Today())
	}
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(&state, key)), s.cfg.Style)
	return subcommands.ExitSuccess
}

// trendCmd shows the daily series over a trailing window.
type trendCmd struct {
	days int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display daily income and expense over a window" }
func (*trendCmd) Usage() string {
	return `mbk trend [-days 30|90|180|365]

  Shows daily income and expense for the trailing window, the window's
  cumulative balance, and the top expense categories.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "window length in days")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.days {
	case 30, 90, 180, 365:
	default:
		fmt.Fprintf(os.Stderr, "Error: -days must be 30, 90, 180 or 365, got %d\n", c.days)
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	printMarkdown(renderer.RenderTrend(renderer.NewTrendReport(&state, c.days, moneybook.Today())), s.cfg.Style)
	return subcommands.ExitSuccess
}

// compareCmd shows the month-over-month comparison.
type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the last months side by side" }
func (*compareCmd) Usage() string {
	return `mbk compare

  Shows the last six months with activity, each against the month
  before it.
`
}

func (*compareCmd) SetFlags(*flag.FlagSet) {}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	printMarkdown(renderer.RenderCompare(renderer.NewCompareReport(&state)), s.cfg.Style)
	return subcommands.ExitSuccess
}
