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

// addCmd records a new transaction.
type addCmd struct {
	amount    string
	category  string
	desc      string
	date      string
	txType    string
	account   string
	toAccount string
	notes     string
	recurring bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `mbk add -amount <n> -category <name> [-type income|expense|transfer] [-date <date>]

  Records a money movement. Transfers need -to with the destination
  account id. The date defaults to today and accepts relative forms
  like -3d.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "amount, always positive")
	f.StringVar(&c.category, "category", "", "category name")
	f.StringVar(&c.desc, "desc", "", "description")
	f.StringVar(&c.date, "date", "", "date of the movement, defaults to today")
	f.StringVar(&c.txType, "type", "expense", "income, expense or transfer")
	f.StringVar(&c.account, "account", "", "account id, defaults to the first active account")
	f.StringVar(&c.toAccount, "to", "", "destination account id for transfers")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
	f.BoolVar(&c.recurring, "recurring", false, "mark as a recurring movement")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	txType, err := moneybook.ParseTransactionType(c.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	var date moneybook.Date
	if c.date != "" {
		if date, err = moneybook.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	tx, err := s.book.AddTransaction(moneybook.Transaction{
		Amount:      amount,
		Category:    c.category,
		Description: c.desc,
		Date:        date,
		Type:        txType,
		AccountID:   c.account,
		ToAccountID: c.toAccount,
		Notes:       c.notes,
		IsRecurring: c.recurring,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s (%s)\n", tx.Type, moneybook.M(tx.Amount, s.book.State().Currency), tx.ID)
	return subcommands.ExitSuccess
}

// txCmd lists transactions.
type txCmd struct {
	key string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `mbk tx [-k <period>]

  Lists transactions, newest first. -k limits the list to one period
  bucket, such as 2024-06 or 2024.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "", "period bucket to list, empty for everything")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	state := s.book.State()
	printMarkdown(renderer.RenderTransactions(renderer.NewTransactionList(&state, c.key)), s.cfg.Style)
	return subcommands.ExitSuccess
}

// rmCmd deletes a transaction.
type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `mbk rm -id <transaction-id>

  Deletes one transaction. Find ids with 'mbk tx'.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id of the transaction to delete")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := s.book.DeleteTransaction(c.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted", c.id)
	return subcommands.ExitSuccess
}
