package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/moneybook/moneybook"
)

// addGoalCmd declares a new savings goal.
type addGoalCmd struct {
	name     string
	target   string
	saved    string
	by       string
	priority string
	desc     string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "declare a savings goal" }
func (*addGoalCmd) Usage() string {
	return `mbk add-goal -name <name> -target <n> [-by <date>] [-priority medium] [-saved <n>]

  Declares a savings goal. Money already set aside (-saved) is recorded
  as a matching expense transaction on your first active account.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "goal name")
	f.StringVar(&c.target, "target", "", "target amount")
	f.StringVar(&c.saved, "saved", "0", "amount already set aside")
	f.StringVar(&c.by, "by", "", "target date")
	f.StringVar(&c.priority, "priority", "medium", "high, medium or low")
	f.StringVar(&c.desc, "desc", "", "description")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := decimal.NewFromString(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target %q: %v\n", c.target, err)
		return subcommands.ExitUsageError
	}
	saved, err := decimal.NewFromString(c.saved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing saved amount %q: %v\n", c.saved, err)
		return subcommands.ExitUsageError
	}
	priority, err := moneybook.ParseGoalPriority(c.priority)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	var by moneybook.Date
	if c.by != "" {
		if by, err = moneybook.ParseDate(c.by); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing target date:", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	g, err := s.book.AddSavingsGoal(moneybook.SavingsGoal{
		Name:          c.name,
		TargetAmount:  target,
		CurrentAmount: saved,
		TargetDate:    by,
		Priority:      priority,
		Description:   c.desc,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared goal %q (%s)\n", g.Name, g.ID)
	return subcommands.ExitSuccess
}

// goalsCmd lists savings goals with progress.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals" }
func (*goalsCmd) Usage() string {
	return `mbk goals

  Lists savings goals with saved amount, target and progress, ordered
  by priority and target date.
`
}

func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (c *goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	for _, g := range moneybook.SortGoals(state.SavingsGoals) {
		fmt.Printf("%-10s %-24s %10s / %-10s %5.0f%%  %s\n",
			g.Priority, g.Name,
			moneybook.M(g.CurrentAmount, state.Currency),
			moneybook.M(g.TargetAmount, state.Currency),
			moneybook.GoalProgress(g), g.ID)
	}
	return subcommands.ExitSuccess
}

// contributeCmd moves money into a goal.
type contributeCmd struct {
	id     string
	amount string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "move money into a savings goal" }
func (*contributeCmd) Usage() string {
	return `mbk contribute -id <goal-id> -amount <n>

  Raises a goal's saved amount and records the matching expense
  transaction, as one atomic step.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the goal")
	f.StringVar(&c.amount, "amount", "", "amount to set aside")
}

func (c *contributeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	if !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: amount must be positive")
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	g, ok := state.Goal(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: savings goal %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if err := s.book.UpdateSavingsGoal(g); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set aside %s for %q, now at %.0f%%\n",
		moneybook.M(amount, state.Currency), g.Name, moneybook.GoalProgress(g))
	return subcommands.ExitSuccess
}

// rmGoalCmd removes a savings goal.
type rmGoalCmd struct {
	id string
}

func (*rmGoalCmd) Name() string     { return "rm-goal" }
func (*rmGoalCmd) Synopsis() string { return "remove a savings goal" }
func (*rmGoalCmd) Usage() string {
	return `mbk rm-goal -id <goal-id>

  Removes a goal. Contributions already in the ledger stay there.
`
}

func (c *rmGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the goal")
}

func (c *rmGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := s.book.DeleteSavingsGoal(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Removed goal", c.id)
	return subcommands.ExitSuccess
}
