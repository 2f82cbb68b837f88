package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// addCategoryCmd declares a category.
type addCategoryCmd struct{}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "declare a category" }
func (*addCategoryCmd) Usage() string {
	return `mbk add-category <name>...

  Declares one or more categories. Declaring an existing one is
  harmless.
`
}

func (*addCategoryCmd) SetFlags(*flag.FlagSet) {}

func (c *addCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one category name is required")
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	for _, name := range f.Args() {
		if err := s.book.AddCategory(name); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// categoriesCmd lists categories.
type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories" }
func (*categoriesCmd) Usage() string {
	return `mbk categories

  Lists the declared categories.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	for _, name := range s.book.State().Categories {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}

// rmCategoryCmd removes a category.
type rmCategoryCmd struct{}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "remove a category" }
func (*rmCategoryCmd) Usage() string {
	return `mbk rm-category <name>

  Removes a category. A category still used by a transaction or a
  budget cannot be removed.
`
}

func (*rmCategoryCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required")
		return subcommands.ExitUsageError
	}
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	if err := s.book.DeleteCategory(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Removed category", f.Arg(0))
	return subcommands.ExitSuccess
}
