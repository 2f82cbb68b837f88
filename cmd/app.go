// Package cmd implements the subcommands of the mbk command-line tool.
package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/moneybook/moneybook"
	"github.com/moneybook/moneybook/store"
)

// Commands is the full registry, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&rmCmd{},
	&addAccountCmd{},
	&accountsCmd{},
	&closeAccountCmd{},
	&summaryCmd{},
	&trendCmd{},
	&compareCmd{},
	&setBudgetCmd{},
	&budgetsCmd{},
	&rmBudgetCmd{},
	&addGoalCmd{},
	&goalsCmd{},
	&contributeCmd{},
	&rmGoalCmd{},
	&addCategoryCmd{},
	&categoriesCmd{},
	&rmCategoryCmd{},
	&setCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Register registers every mbk subcommand on c.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

var storeFile = flag.String("store", "", "path to the database file, overriding the config")

// newLogger builds the CLI logger: human-readable warnings on stderr.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// session bundles everything a subcommand needs: the open store, the live
// book wired to the debounced saver, and the config.
type session struct {
	cfg   config
	log   *zap.Logger
	store *store.Store
	book  *moneybook.Book
	co    *moneybook.Coordinator
}

// openSession loads the config, opens the database and wires the book to
// the persistence coordinator.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.StorePath
	if *storeFile != "" {
		path = *storeFile
	}
	log := newLogger()
	st, err := store.Open(path, log)
	if err != nil {
		return nil, err
	}
	book := moneybook.NewBook(st.LoadOrDefault(ctx, cfg.Currency))
	co := moneybook.NewCoordinator(st, cfg.debounce(), log)
	book.OnChange(co.StateChanged)
	return &session{cfg: cfg, log: log, store: st, book: book, co: co}, nil
}

// Close flushes any pending write and releases the database. A process
// exit does not wait for the debounce timer, so the flush is what makes
// one-shot commands durable.
func (s *session) Close(ctx context.Context) error {
	err := s.co.Flush(ctx)
	s.co.Close()
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	s.log.Sync()
	return err
}
