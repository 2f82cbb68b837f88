package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/moneybook/moneybook"
)

// exportCmd writes the whole document as JSON.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all data as JSON" }
func (*exportCmd) Usage() string {
	return `mbk export [-o <file>]

  Writes the whole document as JSON, to stdout by default. The output
  is a valid input for 'mbk import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, stdout by default")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := moneybook.Export(out, s.book.State()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// importCmd replaces the document with a backup.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all data with a backup" }
func (*importCmd) Usage() string {
	return `mbk import -i <file>

  Replaces the whole document with a backup produced by 'mbk export'.
  The backup is upgraded to the current layout on the way in; a file
  that is not a backup is rejected and nothing changes.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "backup file to read")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	state, err := moneybook.Import(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	s.book.Load(state)
	fmt.Printf("Imported %d transactions, %d accounts, %d goals, %d budgets\n",
		len(state.Transactions), len(state.Accounts), len(state.SavingsGoals), len(state.Budgets))
	return subcommands.ExitSuccess
}
