package moneybook

import (
	"fmt"
	"testing"
	"time"
)

// testBook returns a Book with deterministic ids (id-1, id-2, ...) and a
// clock pinned to 2024-06-15.
func testBook() *Book {
	n := 0
	return NewBook(NewState("EUR"),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		WithClock(func() Date { return NewDate(2024, time.June, 15) }),
	)
}

func TestBookAddTransaction(t *testing.T) {
	b := testBook()
	tx, err := b.AddTransaction(Transaction{Amount: dec("50"), Category: "Food", Type: Expense})
	if err != nil {
		t.Fatal(err)
	}
	if tx.ID != "id-1" {
		t.Errorf("id = %q, want id-1", tx.ID)
	}
	if tx.AccountID != DefaultAccountID {
		t.Errorf("account = %q, want the first active account", tx.AccountID)
	}
	if tx.Date != NewDate(2024, time.June, 15) {
		t.Errorf("date = %s, want today", tx.Date)
	}
	if got := b.State().Transactions; len(got) != 1 || got[0].ID != "id-1" {
		t.Errorf("stored transactions = %+v", got)
	}
}

func TestBookAddTransactionRejectsInvalid(t *testing.T) {
	b := testBook()
	tests := []struct {
		name string
		tx   Transaction
	}{
		{"zero amount", Transaction{Category: "Food", Type: Expense}},
		{"negative amount", Transaction{Amount: dec("-5"), Category: "Food", Type: Expense}},
		{"undeclared category", Transaction{Amount: dec("5"), Category: "Yachts", Type: Expense}},
		{"unknown account", Transaction{Amount: dec("5"), Category: "Food", Type: Expense, AccountID: "nope"}},
		{"transfer to itself", Transaction{Amount: dec("5"), Category: "Other", Type: Transfer, AccountID: DefaultAccountID, ToAccountID: DefaultAccountID}},
		{"destination on an expense", Transaction{Amount: dec("5"), Category: "Food", Type: Expense, ToAccountID: DefaultAccountID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.AddTransaction(tt.tx); err == nil {
				t.Error("want error, got none")
			}
		})
	}
	if got := b.State().Transactions; len(got) != 0 {
		t.Errorf("rejected transactions were stored: %+v", got)
	}
}

func TestBookDeleteAccountInUse(t *testing.T) {
	b := testBook()
	if _, err := b.AddTransaction(Transaction{Amount: dec("5"), Category: "Food", Type: Expense}); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteAccount(DefaultAccountID); err == nil {
		t.Error("deleting an account with transactions should fail")
	}
}

func TestBookGoalContribution(t *testing.T) {
	b := testBook()
	g, err := b.AddSavingsGoal(SavingsGoal{Name: "Vacation", TargetAmount: dec("1000"), CurrentAmount: dec("100")})
	if err != nil {
		t.Fatal(err)
	}

	s := b.State()
	if len(s.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1 contribution", len(s.Transactions))
	}
	tx := s.Transactions[0]
	if !tx.Amount.Equal(dec("100")) || tx.Category != SavingsCategory || tx.Type != Expense {
		t.Errorf("contribution = %+v", tx)
	}
	if tx.Description != "Savings goal: Vacation" {
		t.Errorf("description = %q", tx.Description)
	}

	// Raising the saved amount mirrors only the increase.
	g.CurrentAmount = dec("150")
	if err := b.UpdateSavingsGoal(g); err != nil {
		t.Fatal(err)
	}
	s = b.State()
	if len(s.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(s.Transactions))
	}
	if !s.Transactions[1].Amount.Equal(dec("50")) {
		t.Errorf("second contribution = %s, want 50", s.Transactions[1].Amount)
	}

	// Lowering it records nothing.
	g.CurrentAmount = dec("80")
	if err := b.UpdateSavingsGoal(g); err != nil {
		t.Fatal(err)
	}
	s = b.State()
	if len(s.Transactions) != 2 {
		t.Errorf("got %d transactions after a decrease, want still 2", len(s.Transactions))
	}
	got, _ := s.Goal(g.ID)
	if !got.CurrentAmount.Equal(dec("80")) {
		t.Errorf("saved amount = %s, want 80", got.CurrentAmount)
	}
}

func TestBookGoalContributionNotifiesOnce(t *testing.T) {
	b := testBook()
	var calls int
	var last AppState
	b.OnChange(func(s AppState) { calls++; last = s })

	if _, err := b.AddSavingsGoal(SavingsGoal{Name: "Car", TargetAmount: dec("5000"), CurrentAmount: dec("200")}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
	if len(last.SavingsGoals) != 1 || len(last.Transactions) != 1 {
		t.Errorf("snapshot missed part of the compound step: %d goals, %d transactions",
			len(last.SavingsGoals), len(last.Transactions))
	}
}

func TestBookListenerCanRegisterDuringNotify(t *testing.T) {
	b := testBook()
	var first, second int
	b.OnChange(func(AppState) {
		first++
		if first == 1 {
			b.OnChange(func(AppState) { second++ })
		}
	})

	// The notifying dispatch works off its own copy of the listener
	// list, so the registration lands on the next dispatch only.
	if err := b.AddCategory("Pets"); err != nil {
		t.Fatal(err)
	}
	if first != 1 || second != 0 {
		t.Errorf("after first dispatch: first=%d second=%d, want 1/0", first, second)
	}
	if err := b.AddCategory("Plants"); err != nil {
		t.Fatal(err)
	}
	if first != 2 || second != 1 {
		t.Errorf("after second dispatch: first=%d second=%d, want 2/1", first, second)
	}
}

func TestBookUpdateTransactionFillsDate(t *testing.T) {
	b := testBook()
	tx, err := b.AddTransaction(Transaction{Amount: dec("50"), Category: "Food", Type: Expense, Date: MustParse("2024-01-10")})
	if err != nil {
		t.Fatal(err)
	}

	// An update that clears the date gets it refilled from the book's
	// clock, same as on add.
	tx.Date = Date{}
	if err := b.UpdateTransaction(tx); err != nil {
		t.Fatal(err)
	}
	got := b.State().Transactions[0]
	if got.Date != NewDate(2024, time.June, 15) {
		t.Errorf("date = %s, want the pinned clock date", got.Date)
	}
}

// The snapshot returned by State is a plain value; every read helper must
// be callable on it directly.
func TestStateSnapshotAccessors(t *testing.T) {
	b := testBook()
	if !b.State().HasCategory("Food") {
		t.Error("HasCategory on a snapshot")
	}
	if _, ok := b.State().Account(DefaultAccountID); !ok {
		t.Error("Account on a snapshot")
	}
	if _, ok := b.State().FirstActiveAccount(); !ok {
		t.Error("FirstActiveAccount on a snapshot")
	}
	if _, ok := b.State().BudgetFor("Food"); ok {
		t.Error("BudgetFor on a snapshot reported a budget that does not exist")
	}
	if _, ok := b.State().Goal("nope"); ok {
		t.Error("Goal on a snapshot reported a goal that does not exist")
	}
	if b.State().CategoryInUse("Food") {
		t.Error("CategoryInUse on a snapshot reported an unused category")
	}
}

func TestBookNoNotificationWhenNothingChanges(t *testing.T) {
	b := testBook()
	var calls int
	b.OnChange(func(AppState) { calls++ })

	// Re-declaring a default category is a no-op.
	if err := b.AddCategory("Food"); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("listener ran %d times for a no-op, want 0", calls)
	}
}

func TestBookDeleteCategory(t *testing.T) {
	b := testBook()
	if err := b.AddCategory("Pets"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddTransaction(Transaction{Amount: dec("20"), Category: "Pets", Type: Expense}); err != nil {
		t.Fatal(err)
	}

	if err := b.DeleteCategory("Pets"); err == nil {
		t.Error("deleting a category in use should fail")
	}
	if err := b.DeleteCategory("Ghosts"); err == nil {
		t.Error("deleting an undeclared category should fail")
	}
	if err := b.DeleteCategory("Leisure"); err != nil {
		t.Errorf("deleting an unused category: %v", err)
	}
	if b.State().HasCategory("Leisure") {
		t.Error("category survived deletion")
	}
}

func TestBookBudgetPerCategory(t *testing.T) {
	b := testBook()
	bd, err := b.AddBudget(Budget{Category: "Food", Limit: dec("400")})
	if err != nil {
		t.Fatal(err)
	}
	if bd.Period != Monthly {
		t.Errorf("period = %v, want the monthly default", bd.Period)
	}

	if _, err := b.AddBudget(Budget{Category: "Food", Limit: dec("200")}); err == nil {
		t.Error("second budget on the same category should fail")
	}

	// Updating the existing budget is fine.
	bd.Limit = dec("450")
	if err := b.UpdateBudget(bd); err != nil {
		t.Fatal(err)
	}
	got, _ := b.State().BudgetFor("Food")
	if !got.Limit.Equal(dec("450")) {
		t.Errorf("limit = %s, want 450", got.Limit)
	}
}

func TestBookSetCurrency(t *testing.T) {
	b := testBook()
	if err := b.SetCurrency("XXQ"); err == nil {
		t.Error("unknown currency should fail")
	}
	if err := b.SetCurrency("USD"); err != nil {
		t.Fatal(err)
	}
	if got := b.State().Currency; got != "USD" {
		t.Errorf("currency = %q, want USD", got)
	}
}

func TestBookSetTheme(t *testing.T) {
	b := testBook()
	b.SetTheme(Dark)
	if got := b.State().Theme; got != Dark {
		t.Errorf("theme = %q, want dark", got)
	}
	b.SetTheme(Theme("sepia"))
	if got := b.State().Theme; got != Light {
		t.Errorf("theme = %q, unknown themes fall back to light", got)
	}
}
