package moneybook

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsCategory is the reserved category used by automatic savings-goal
// contribution transactions.
const SavingsCategory = "Savings Goal"

// DefaultCurrency is assumed when a document does not name one.
const DefaultCurrency = "EUR"

// DefaultAccountID identifies the account synthesized for documents that
// predate multi-account support.
const DefaultAccountID = "default"

// DefaultCategories returns the category list seeded into fresh documents.
func DefaultCategories() []string {
	return []string{
		"Food",
		"Transport",
		"Housing",
		"Leisure",
		"Health",
		"Education",
		"Salary",
		SavingsCategory,
		"Other",
	}
}

// DefaultAccount returns the account synthesized for fresh or migrated
// documents.
func DefaultAccount(currency string, initialBalance decimal.Decimal, createdAt time.Time) Account {
	return Account{
		ID:             DefaultAccountID,
		Name:           "Main Account",
		Type:           Checking,
		Currency:       currency,
		InitialBalance: initialBalance,
		Color:          "#6366f1",
		IsActive:       true,
		CreatedAt:      createdAt,
	}
}

// AppState is the whole persisted document. All mutation goes through
// Reduce; everything else reads it.
type AppState struct {
	Transactions []Transaction `json:"transactions"`
	Accounts     []Account     `json:"accounts"`
	SavingsGoals []SavingsGoal `json:"savingsGoals"`
	Budgets      []Budget      `json:"budgets"`
	Categories   []string      `json:"categories"`
	Theme        Theme         `json:"theme"`
	Currency     string        `json:"currency"`
}

// NewState returns an empty document with default categories, one default
// account and the given currency.
func NewState(currency string) AppState {
	if currency == "" {
		currency = DefaultCurrency
	}
	return AppState{
		Transactions: []Transaction{},
		Accounts:     []Account{DefaultAccount(currency, decimal.Zero, time.Now())},
		SavingsGoals: []SavingsGoal{},
		Budgets:      []Budget{},
		Categories:   DefaultCategories(),
		Theme:        Light,
		Currency:     currency,
	}
}

// Normalize upgrades a document loaded from storage or import to the
// current shape. It is idempotent and pure except for the creation
// timestamp of a synthesized account.
//
// Documents written before multi-account support carry transactions but no
// accounts. Those get a single default account whose initial balance is the
// net of all recorded transactions, so that account balances computed from
// initialBalance plus movements reproduce the balance the old document
// implied.
func Normalize(s AppState) AppState {
	out := s

	if out.Currency == "" {
		out.Currency = DefaultCurrency
	}
	if out.Theme != Dark {
		out.Theme = Light
	}
	if len(out.Categories) == 0 {
		out.Categories = DefaultCategories()
	}
	if out.Transactions == nil {
		out.Transactions = []Transaction{}
	}
	if out.SavingsGoals == nil {
		out.SavingsGoals = []SavingsGoal{}
	}
	if out.Budgets == nil {
		out.Budgets = []Budget{}
	}

	if len(out.Accounts) == 0 {
		net := decimal.Zero
		for _, t := range out.Transactions {
			switch t.Type {
			case Income:
				net = net.Add(t.Amount)
			case Expense:
				net = net.Sub(t.Amount)
			}
		}
		out.Accounts = []Account{DefaultAccount(out.Currency, net, time.Now())}
		// Old transactions have no account reference; attach them to the
		// synthesized account.
		migrated := make([]Transaction, len(out.Transactions))
		for i, t := range out.Transactions {
			if t.AccountID == "" {
				t.AccountID = DefaultAccountID
			}
			migrated[i] = t
		}
		out.Transactions = migrated
	}

	return out
}

// Clone returns a deep copy of the document. Decimal values are immutable
// and shared.
func (s AppState) Clone() AppState {
	out := s
	out.Transactions = make([]Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		if t.Tags != nil {
			t.Tags = append([]string(nil), t.Tags...)
		}
		out.Transactions[i] = t
	}
	out.Accounts = append([]Account(nil), s.Accounts...)
	out.SavingsGoals = append([]SavingsGoal(nil), s.SavingsGoals...)
	out.Budgets = append([]Budget(nil), s.Budgets...)
	out.Categories = append([]string(nil), s.Categories...)
	return out
}

// HasCategory reports whether name is a known category.
func (s AppState) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Account returns the account with the given id.
func (s AppState) Account(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// FirstActiveAccount returns the first active account, falling back to the
// first account of any state.
func (s AppState) FirstActiveAccount() (Account, bool) {
	for _, a := range s.Accounts {
		if a.IsActive {
			return a, true
		}
	}
	if len(s.Accounts) > 0 {
		return s.Accounts[0], true
	}
	return Account{}, false
}

// Goal returns the savings goal with the given id.
func (s AppState) Goal(id string) (SavingsGoal, bool) {
	for _, g := range s.SavingsGoals {
		if g.ID == id {
			return g, true
		}
	}
	return SavingsGoal{}, false
}

// BudgetFor returns the budget declared for a category.
func (s AppState) BudgetFor(category string) (Budget, bool) {
	for _, b := range s.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return Budget{}, false
}

// CategoryInUse reports whether any transaction or budget still references
// the category. Callers check this before dispatching a delete.
func (s AppState) CategoryInUse(name string) bool {
	for _, t := range s.Transactions {
		if t.Category == name {
			return true
		}
	}
	for _, b := range s.Budgets {
		if b.Category == name {
			return true
		}
	}
	return false
}
