package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneybook/moneybook"
)

// setCmd changes document settings.
type setCmd struct {
	theme    string
	currency string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change theme or currency" }
func (*setCmd) Usage() string {
	return `mbk set [-theme light|dark] [-currency <code>]

  Changes document settings. Changing the currency relabels amounts,
  it does not convert them.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "light or dark")
	f.StringVar(&c.currency, "currency", "", "currency code, such as EUR or USD")
}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.theme == "" && c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, use -theme or -currency")
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	if c.theme != "" {
		switch c.theme {
		case "light":
			s.book.SetTheme(moneybook.Light)
		case "dark":
			s.book.SetTheme(moneybook.Dark)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", c.theme)
			return subcommands.ExitUsageError
		}
	}
	if c.currency != "" {
		if err := s.book.SetCurrency(c.currency); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
