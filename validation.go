package moneybook

import (
	"errors"
	"fmt"
)

// ValidateTransaction checks t against the document and returns a copy with
// quick fixes applied, or an error. It runs before the transaction is
// dispatched; Reduce itself trusts its input.
func (s *AppState) ValidateTransaction(t Transaction) (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Amount.IsNegative() || t.Amount.IsZero() {
		return t, fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	switch t.Type {
	case Income, Expense, Transfer:
	default:
		return t, fmt.Errorf("unknown transaction type %q", t.Type)
	}

	if t.AccountID == "" {
		if a, ok := s.FirstActiveAccount(); ok {
			t.AccountID = a.ID
		} else {
			return t, errors.New("transaction needs an account and none exists")
		}
	}
	if _, ok := s.Account(t.AccountID); !ok {
		return t, fmt.Errorf("account %q not declared", t.AccountID)
	}

	if t.Type == Transfer {
		if t.ToAccountID == "" {
			return t, errors.New("transfer needs a destination account")
		}
		if t.ToAccountID == t.AccountID {
			return t, errors.New("transfer source and destination are the same account")
		}
		if _, ok := s.Account(t.ToAccountID); !ok {
			return t, fmt.Errorf("account %q not declared", t.ToAccountID)
		}
	} else if t.ToAccountID != "" {
		return t, fmt.Errorf("%s transaction cannot carry a destination account", t.Type)
	}

	if t.Category == "" {
		return t, errors.New("transaction category is missing")
	}
	if !s.HasCategory(t.Category) {
		return t, fmt.Errorf("category %q not declared", t.Category)
	}
	return t, nil
}

// ValidateAccount checks a and returns a copy with quick fixes applied, or
// an error.
func (s *AppState) ValidateAccount(a Account) (Account, error) {
	if a.Name == "" {
		return a, errors.New("account name is missing")
	}
	switch a.Type {
	case Cash, Checking, Savings, Credit, Investment, OtherAcct:
	default:
		return a, fmt.Errorf("unknown account type %q", a.Type)
	}
	if a.Currency == "" {
		a.Currency = s.Currency
	}
	if !ValidCurrency(a.Currency) {
		return a, fmt.Errorf("unknown currency %q", a.Currency)
	}
	return a, nil
}

// ValidateSavingsGoal checks g and returns a copy with quick fixes applied,
// or an error.
func (s *AppState) ValidateSavingsGoal(g SavingsGoal) (SavingsGoal, error) {
	if g.Name == "" {
		return g, errors.New("goal name is missing")
	}
	if g.TargetAmount.IsNegative() || g.TargetAmount.IsZero() {
		return g, fmt.Errorf("goal target must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return g, fmt.Errorf("goal saved amount cannot be negative, got %s", g.CurrentAmount)
	}
	if g.Priority == "" {
		g.Priority = Medium
	}
	switch g.Priority {
	case High, Medium, Low:
	default:
		return g, fmt.Errorf("unknown priority %q", g.Priority)
	}
	return g, nil
}

// ValidateBudget checks b and returns a copy with quick fixes applied, or
// an error. A category can carry at most one budget; on update the budget
// being edited does not conflict with itself.
func (s *AppState) ValidateBudget(b Budget) (Budget, error) {
	if b.Limit.IsNegative() || b.Limit.IsZero() {
		return b, fmt.Errorf("budget limit must be positive, got %s", b.Limit)
	}
	if b.Category == "" {
		return b, errors.New("budget category is missing")
	}
	if !s.HasCategory(b.Category) {
		return b, fmt.Errorf("category %q not declared", b.Category)
	}
	if have, ok := s.BudgetFor(b.Category); ok && have.ID != b.ID {
		return b, fmt.Errorf("category %q already has a budget", b.Category)
	}
	return b, nil
}
