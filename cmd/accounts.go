package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/moneybook/moneybook"
	"github.com/moneybook/moneybook/renderer"
)

// addAccountCmd declares a new account.
type addAccountCmd struct {
	name     string
	acctType string
	currency string
	initial  string
	color    string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "declare a new account" }
func (*addAccountCmd) Usage() string {
	return `mbk add-account -name <name> [-type checking] [-currency EUR] [-initial <n>]

  Declares an account. The initial balance is the money already there
  before the first recorded transaction.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "account name")
	f.StringVar(&c.acctType, "type", "checking", "cash, checking, savings, credit, investment or other")
	f.StringVar(&c.currency, "currency", "", "currency code, defaults to the document currency")
	f.StringVar(&c.initial, "initial", "0", "initial balance")
	f.StringVar(&c.color, "color", "", "display color")
}

func (c *addAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	acctType, err := moneybook.ParseAccountType(c.acctType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	initial, err := decimal.NewFromString(c.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing initial balance %q: %v\n", c.initial, err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	a, err := s.book.AddAccount(moneybook.Account{
		Name:           c.name,
		Type:           acctType,
		Currency:       c.currency,
		InitialBalance: initial,
		Color:          c.color,
		IsActive:       true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared account %q (%s)\n", a.Name, a.ID)
	return subcommands.ExitSuccess
}

// accountsCmd lists accounts with balances.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and balances" }
func (*accountsCmd) Usage() string {
	return `mbk accounts

  Lists every account with its current balance.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	v := renderer.NewSummary(&state, moneybook.Today().MonthKey())
	v.Goals = nil // accounts only
	printMarkdown(renderer.RenderSummary(v), s.cfg.Style)
	return subcommands.ExitSuccess
}

// closeAccountCmd marks an account inactive, or deletes it when unused.
type closeAccountCmd struct {
	id     string
	delete bool
}

func (*closeAccountCmd) Name() string     { return "close-account" }
func (*closeAccountCmd) Synopsis() string { return "close or delete an account" }
func (*closeAccountCmd) Usage() string {
	return `mbk close-account -id <account-id> [-delete]

  Marks an account inactive. With -delete the account is removed
  entirely, which only works when no transaction references it.
`
}

func (c *closeAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the account")
	f.BoolVar(&c.delete, "delete", false, "delete instead of closing")
}

func (c *closeAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	if c.delete {
		if err := s.book.DeleteAccount(c.id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Deleted account", c.id)
		return subcommands.ExitSuccess
	}

	state := s.book.State()
	a, ok := state.Account(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	a.IsActive = false
	if err := s.book.UpdateAccount(a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Closed account %q\n", a.Name)
	return subcommands.ExitSuccess
}
