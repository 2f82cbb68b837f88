package moneybook

import (
	"testing"
)

func testState() *AppState {
	s := NewState("EUR")
	s.Transactions = []Transaction{
		{ID: "t1", Amount: dec("500"), Type: Income, Category: "Salary", Date: MustParse("2024-01-05"), AccountID: DefaultAccountID},
	}
	s.Budgets = []Budget{{ID: "b1", Category: "Food", Limit: dec("400"), Period: Monthly}}
	s.SavingsGoals = []SavingsGoal{{ID: "g1", Name: "Vacation", TargetAmount: dec("1000"), CurrentAmount: dec("100"), Priority: High}}
	return &s
}

func TestReduceAddTransaction(t *testing.T) {
	s := testState()
	tx := Transaction{ID: "t2", Amount: dec("20"), Type: Expense, Category: "Food", Date: MustParse("2024-01-06"), AccountID: DefaultAccountID}

	next := Reduce(s, AddTransaction{Transaction: tx})

	if len(next.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(next.Transactions))
	}
	if len(s.Transactions) != 1 {
		t.Error("input state was mutated")
	}
}

func TestReduceUpdateTransaction(t *testing.T) {
	s := testState()
	updated := s.Transactions[0]
	updated.Amount = dec("600")

	next := Reduce(s, UpdateTransaction{Transaction: updated})

	if !next.Transactions[0].Amount.Equal(dec("600")) {
		t.Errorf("amount = %s, want 600", next.Transactions[0].Amount)
	}
	if !s.Transactions[0].Amount.Equal(dec("500")) {
		t.Error("input state was mutated")
	}
}

func TestReduceDeleteTransaction(t *testing.T) {
	s := testState()
	next := Reduce(s, DeleteTransaction{ID: "t1"})
	if len(next.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(next.Transactions))
	}
	if len(s.Transactions) != 1 {
		t.Error("input state was mutated")
	}
}

func TestReduceDeleteMissingIsHarmless(t *testing.T) {
	s := testState()
	next := Reduce(s, DeleteTransaction{ID: "nope"})
	if len(next.Transactions) != 1 {
		t.Errorf("got %d transactions, want 1", len(next.Transactions))
	}
}

func TestReduceAddCategoryIdempotent(t *testing.T) {
	s := testState()

	next := Reduce(s, AddCategory{Name: "Gifts"})
	if !next.HasCategory("Gifts") {
		t.Fatal("category not added")
	}

	again := Reduce(next, AddCategory{Name: "Gifts"})
	if again != next {
		t.Error("re-adding an existing category produced a new state")
	}
	count := 0
	for _, c := range again.Categories {
		if c == "Gifts" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("category appears %d times, want 1", count)
	}
}

func TestReduceUnknownActionReturnsSameState(t *testing.T) {
	s := testState()
	if next := Reduce(s, nil); next != s {
		t.Error("unknown action produced a new state")
	}
}

func TestReduceSetThemeAndCurrency(t *testing.T) {
	s := testState()
	next := Reduce(s, SetTheme{Theme: Dark})
	next = Reduce(next, SetCurrency{Currency: "USD"})

	if next.Theme != Dark || next.Currency != "USD" {
		t.Errorf("theme/currency = %q/%q, want dark/USD", next.Theme, next.Currency)
	}
	if s.Theme != Light || s.Currency != "EUR" {
		t.Error("input state was mutated")
	}
	// Amounts are relabeled, never converted.
	if !next.Transactions[0].Amount.Equal(s.Transactions[0].Amount) {
		t.Error("currency change altered an amount")
	}
}

func TestReduceLoadDataNormalizes(t *testing.T) {
	s := testState()
	loaded := AppState{
		Transactions: []Transaction{
			{ID: "x", Amount: dec("50"), Type: Income, Category: "Salary", Date: MustParse("2023-03-01")},
		},
	}
	next := Reduce(s, LoadData{State: loaded})

	if len(next.Transactions) != 1 || next.Transactions[0].ID != "x" {
		t.Fatal("load did not replace the document")
	}
	if len(next.Accounts) != 1 || !next.Accounts[0].InitialBalance.Equal(dec("50")) {
		t.Errorf("loaded document not migrated: %+v", next.Accounts)
	}
	if len(next.Categories) == 0 {
		t.Error("loaded document missing default categories")
	}
}

func TestReduceBudgets(t *testing.T) {
	s := testState()

	next := Reduce(s, AddBudget{Budget: Budget{ID: "b2", Category: "Transport", Limit: dec("150"), Period: Weekly}})
	if len(next.Budgets) != 2 {
		t.Fatalf("got %d budgets, want 2", len(next.Budgets))
	}

	edited := next.Budgets[0]
	edited.Limit = dec("450")
	next = Reduce(next, UpdateBudget{Budget: edited})
	if !next.Budgets[0].Limit.Equal(dec("450")) {
		t.Errorf("limit = %s, want 450", next.Budgets[0].Limit)
	}

	next = Reduce(next, DeleteBudget{ID: "b1"})
	if len(next.Budgets) != 1 || next.Budgets[0].ID != "b2" {
		t.Errorf("unexpected budgets after delete: %+v", next.Budgets)
	}
}

func TestReduceGoals(t *testing.T) {
	s := testState()

	edited := s.SavingsGoals[0]
	edited.CurrentAmount = dec("150")
	next := Reduce(s, UpdateSavingsGoal{Goal: edited})
	if !next.SavingsGoals[0].CurrentAmount.Equal(dec("150")) {
		t.Errorf("saved amount = %s, want 150", next.SavingsGoals[0].CurrentAmount)
	}
	if !s.SavingsGoals[0].CurrentAmount.Equal(dec("100")) {
		t.Error("input state was mutated")
	}

	next = Reduce(next, DeleteSavingsGoal{ID: "g1"})
	if len(next.SavingsGoals) != 0 {
		t.Errorf("got %d goals, want 0", len(next.SavingsGoals))
	}
}
