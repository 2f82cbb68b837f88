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

// setBudgetCmd declares or replaces the budget of a category.
type setBudgetCmd struct {
	category string
	limit    string
	period   string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "declare or change a category budget" }
func (*setBudgetCmd) Usage() string {
	return `mbk set-budget -category <name> -limit <n> [-period monthly]

  Caps a category's spending. A category carries one budget; setting it
  again replaces the limit and period.
`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "category to cap")
	f.StringVar(&c.limit, "limit", "", "spending limit")
	f.StringVar(&c.period, "period", "monthly", "weekly, monthly or yearly")
}

func (c *setBudgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := decimal.NewFromString(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing limit %q: %v\n", c.limit, err)
		return subcommands.ExitUsageError
	}
	period, err := moneybook.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	budget := moneybook.Budget{Category: c.category, Limit: limit, Period: period}
	if have, ok := state.BudgetFor(c.category); ok {
		budget.ID = have.ID
		if err := s.book.UpdateBudget(budget); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	} else if _, err := s.book.AddBudget(budget); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Budget for %q set to %s %s\n", c.category, moneybook.M(limit, state.Currency), period)
	return subcommands.ExitSuccess
}

// budgetsCmd shows each budget's month-to-date standing.
type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display budgets and month-to-date spend" }
func (*budgetsCmd) Usage() string {
	return `mbk budgets

  Shows each budget with its spend during the current calendar month.
`
}

func (*budgetsCmd) SetFlags(*flag.FlagSet) {}

func (c *budgetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	printMarkdown(renderer.RenderBudgets(renderer.NewBudgetReport(&state, moneybook.Today())), s.cfg.Style)
	return subcommands.ExitSuccess
}

// rmBudgetCmd removes a budget.
type rmBudgetCmd struct {
	id       string
	category string
}

func (*rmBudgetCmd) Name() string     { return "rm-budget" }
func (*rmBudgetCmd) Synopsis() string { return "remove a budget" }
func (*rmBudgetCmd) Usage() string {
	return `mbk rm-budget (-id <budget-id> | -category <name>)

  Removes a budget by id or by its category.
`
}

func (c *rmBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the budget")
	f.StringVar(&c.category, "category", "", "category of the budget")
}

func (c *rmBudgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	id := c.id
	if id == "" && c.category != "" {
		if have, ok := s.book.State().BudgetFor(c.category); ok {
			id = have.ID
		}
	}
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id or -category is required")
		return subcommands.ExitUsageError
	}
	if err := s.book.DeleteBudget(id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Removed budget", id)
	return subcommands.ExitSuccess
}
