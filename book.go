package moneybook

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Book owns the live document. It is the single writer: helpers validate,
// mint identifiers, expand compound operations into canonical actions, and
// push everything through Reduce. Readers take snapshots via State.
//
// State and Dispatch are safe for concurrent use. The compound helpers
// read a snapshot before dispatching and expect one writer at a time;
// concurrent writers can validate against a stale snapshot.
type Book struct {
	mu        sync.Mutex
	state     *AppState
	newID     IDGenerator
	today     func() Date
	listeners []func(AppState)
}

// Option configures a Book.
type Option func(*Book)

// WithIDGenerator replaces the identifier source, mainly for tests.
func WithIDGenerator(g IDGenerator) Option { return func(b *Book) { b.newID = g } }

// WithClock replaces the date source, mainly for tests.
func WithClock(today func() Date) Option { return func(b *Book) { b.today = today } }

// NewBook wraps an existing document. The document is normalized on the
// way in, so callers can hand over raw loaded or imported states.
func NewBook(initial AppState, opts ...Option) *Book {
	s := Normalize(initial)
	b := &Book{state: &s, newID: NewID, today: Today}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns a snapshot of the document. The caller owns the copy.
func (b *Book) State() AppState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// OnChange registers fn to run with a snapshot after every effective
// mutation. A compound operation notifies once, not per action.
func (b *Book) OnChange(fn func(AppState)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Dispatch applies the actions in order as one atomic step. Listeners see
// only the final state, once, and only if something changed.
func (b *Book) Dispatch(actions ...Action) {
	b.mu.Lock()
	before := b.state
	for _, a := range actions {
		b.state = Reduce(b.state, a)
	}
	changed := b.state != before
	var snapshot AppState
	var listeners []func(AppState)
	if changed {
		snapshot = b.state.Clone()
		listeners = append(b.listeners[:0:0], b.listeners...)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Load replaces the whole document, normalizing it first.
func (b *Book) Load(s AppState) { b.Dispatch(LoadData{State: s}) }

// AddTransaction validates t, mints an id if needed and records it. A
// zero date is filled with the book's clock.
func (b *Book) AddTransaction(t Transaction) (Transaction, error) {
	s := b.State()
	if t.Date.IsZero() {
		t.Date = b.today()
	}
	t, err := s.ValidateTransaction(t)
	if err != nil {
		return t, err
	}
	if t.ID == "" {
		t.ID = b.newID()
	}
	b.Dispatch(AddTransaction{Transaction: t})
	return t, nil
}

// UpdateTransaction validates t and replaces the stored transaction with
// the same id.
func (b *Book) UpdateTransaction(t Transaction) error {
	s := b.State()
	if !has(s.Transactions, t.ID, txID) {
		return fmt.Errorf("transaction %q not found", t.ID)
	}
	if t.Date.IsZero() {
		t.Date = b.today()
	}
	t, err := s.ValidateTransaction(t)
	if err != nil {
		return err
	}
	b.Dispatch(UpdateTransaction{Transaction: t})
	return nil
}

// DeleteTransaction removes the transaction with the given id.
func (b *Book) DeleteTransaction(id string) error {
	if !has(b.State().Transactions, id, txID) {
		return fmt.Errorf("transaction %q not found", id)
	}
	b.Dispatch(DeleteTransaction{ID: id})
	return nil
}

// AddAccount validates a, mints an id if needed and records it.
func (b *Book) AddAccount(a Account) (Account, error) {
	s := b.State()
	a, err := s.ValidateAccount(a)
	if err != nil {
		return a, err
	}
	if a.ID == "" {
		a.ID = b.newID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = b.today().time()
	}
	b.Dispatch(AddAccount{Account: a})
	return a, nil
}

// UpdateAccount validates a and replaces the stored account with the same id.
func (b *Book) UpdateAccount(a Account) error {
	s := b.State()
	if !has(s.Accounts, a.ID, acctID) {
		return fmt.Errorf("account %q not found", a.ID)
	}
	a, err := s.ValidateAccount(a)
	if err != nil {
		return err
	}
	b.Dispatch(UpdateAccount{Account: a})
	return nil
}

// DeleteAccount removes the account with the given id. Accounts still
// referenced by transactions cannot be removed.
func (b *Book) DeleteAccount(id string) error {
	s := b.State()
	if !has(s.Accounts, id, acctID) {
		return fmt.Errorf("account %q not found", id)
	}
	for _, t := range s.Transactions {
		if t.AccountID == id || t.ToAccountID == id {
			return fmt.Errorf("account %q still has transactions", id)
		}
	}
	b.Dispatch(DeleteAccount{ID: id})
	return nil
}

// AddSavingsGoal validates g, mints an id if needed and records it. A goal
// created with money already set aside also records the matching expense
// transaction, atomically with the goal.
func (b *Book) AddSavingsGoal(g SavingsGoal) (SavingsGoal, error) {
	s := b.State()
	g, err := s.ValidateSavingsGoal(g)
	if err != nil {
		return g, err
	}
	if g.ID == "" {
		g.ID = b.newID()
	}
	actions := []Action{AddSavingsGoal{Goal: g}}
	if g.CurrentAmount.IsPositive() {
		if tx, ok := b.contribution(&s, g, g.CurrentAmount); ok {
			actions = append(actions, AddTransaction{Transaction: tx})
		}
	}
	b.Dispatch(actions...)
	return g, nil
}

// UpdateSavingsGoal validates g and replaces the stored goal with the same
// id. When the saved amount grows, the increase is mirrored as an expense
// transaction so account balances track the money set aside; a shrinking
// amount records nothing.
func (b *Book) UpdateSavingsGoal(g SavingsGoal) error {
	s := b.State()
	old, ok := s.Goal(g.ID)
	if !ok {
		return fmt.Errorf("savings goal %q not found", g.ID)
	}
	g, err := s.ValidateSavingsGoal(g)
	if err != nil {
		return err
	}
	actions := []Action{UpdateSavingsGoal{Goal: g}}
	if delta := g.CurrentAmount.Sub(old.CurrentAmount); delta.IsPositive() {
		if tx, ok := b.contribution(&s, g, delta); ok {
			actions = append(actions, AddTransaction{Transaction: tx})
		}
	}
	b.Dispatch(actions...)
	return nil
}

// contribution builds the expense transaction mirroring money moved into a
// goal. It lands on the first active account.
func (b *Book) contribution(s *AppState, g SavingsGoal, amount decimal.Decimal) (Transaction, bool) {
	acct, ok := s.FirstActiveAccount()
	if !ok {
		return Transaction{}, false
	}
	return Transaction{
		ID:          b.newID(),
		Amount:      amount,
		Category:    SavingsCategory,
		Description: "Savings goal: " + g.Name,
		Date:        b.today(),
		Type:        Expense,
		AccountID:   acct.ID,
	}, true
}

// DeleteSavingsGoal removes the goal with the given id. Contributions
// already recorded stay in the ledger.
func (b *Book) DeleteSavingsGoal(id string) error {
	if !has(b.State().SavingsGoals, id, goalID) {
		return fmt.Errorf("savings goal %q not found", id)
	}
	b.Dispatch(DeleteSavingsGoal{ID: id})
	return nil
}

// AddBudget validates b and records it.
func (b *Book) AddBudget(bd Budget) (Budget, error) {
	s := b.State()
	bd, err := s.ValidateBudget(bd)
	if err != nil {
		return bd, err
	}
	if bd.ID == "" {
		bd.ID = b.newID()
	}
	b.Dispatch(AddBudget{Budget: bd})
	return bd, nil
}

// UpdateBudget validates bd and replaces the stored budget with the same id.
func (b *Book) UpdateBudget(bd Budget) error {
	s := b.State()
	if !has(s.Budgets, bd.ID, budgetID) {
		return fmt.Errorf("budget %q not found", bd.ID)
	}
	bd, err := s.ValidateBudget(bd)
	if err != nil {
		return err
	}
	b.Dispatch(UpdateBudget{Budget: bd})
	return nil
}

// DeleteBudget removes the budget with the given id.
func (b *Book) DeleteBudget(id string) error {
	if !has(b.State().Budgets, id, budgetID) {
		return fmt.Errorf("budget %q not found", id)
	}
	b.Dispatch(DeleteBudget{ID: id})
	return nil
}

// AddCategory declares a new category. Declaring an existing one is not an
// error, the document simply does not change.
func (b *Book) AddCategory(name string) error {
	if name == "" {
		return errors.New("category name is missing")
	}
	b.Dispatch(AddCategory{Name: name})
	return nil
}

// DeleteCategory removes a category. Categories still referenced by a
// transaction or a budget cannot be removed.
func (b *Book) DeleteCategory(name string) error {
	s := b.State()
	if !s.HasCategory(name) {
		return fmt.Errorf("category %q not declared", name)
	}
	if s.CategoryInUse(name) {
		return fmt.Errorf("category %q is still in use", name)
	}
	b.Dispatch(DeleteCategory{Name: name})
	return nil
}

// SetTheme stores the rendering preference.
func (b *Book) SetTheme(t Theme) {
	if t != Dark {
		t = Light
	}
	b.Dispatch(SetTheme{Theme: t})
}

// SetCurrency stores the document currency. Existing amounts are not
// converted, only relabeled.
func (b *Book) SetCurrency(code string) error {
	if !ValidCurrency(code) {
		return fmt.Errorf("unknown currency %q", code)
	}
	b.Dispatch(SetCurrency{Currency: code})
	return nil
}

func has[T any](in []T, id string, idOf func(T) string) bool {
	for _, e := range in {
		if idOf(e) == id {
			return true
		}
	}
	return false
}
