package moneybook

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := scenarioState()
	s.Theme = Dark
	s.Budgets = []Budget{{ID: "b1", Category: "Food", Limit: dec("400")}}

	var buf bytes.Buffer
	if err := Export(&buf, *s); err != nil {
		t.Fatal(err)
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Transactions) != 2 || got.Transactions[0].ID != "t1" {
		t.Errorf("transactions = %+v", got.Transactions)
	}
	if !got.Transactions[0].Amount.Equal(dec("500")) {
		t.Errorf("amount = %s, want 500", got.Transactions[0].Amount)
	}
	if got.Theme != Dark || got.Currency != "EUR" {
		t.Errorf("theme/currency = %q/%q", got.Theme, got.Currency)
	}
	if b, ok := got.BudgetFor("Food"); !ok || b.Period != Monthly {
		t.Errorf("budget = %+v, omitted period should read back monthly", b)
	}
}

func TestImportRejectsNonBackups(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty object", `{}`},
		{"transactions not a list", `{"transactions": {"a": 1}}`},
		{"transactions null", `{"transactions": null}`},
		{"unrelated document", `{"version": 3, "items": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidBackup) {
				t.Errorf("err = %v, want ErrInvalidBackup", err)
			}
		})
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := Import(strings.NewReader("not json at all")); err == nil {
		t.Error("want error, got none")
	}
}

func TestImportNormalizes(t *testing.T) {
	// A backup with transactions but no accounts gets the synthetic
	// default account so balances keep working.
	doc := `{"transactions": [
		{"id": "t1", "amount": 500, "category": "Salary", "date": "2024-01-05", "type": "income"},
		{"id": "t2", "amount": 120, "category": "Food", "date": "2024-01-10", "type": "expense"}
	]}`
	got, err := Import(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Accounts) != 1 {
		t.Fatalf("accounts = %+v, want one synthesized", got.Accounts)
	}
	if !got.Accounts[0].InitialBalance.Equal(dec("380")) {
		t.Errorf("initial balance = %s, want 380", got.Accounts[0].InitialBalance)
	}
	if got.Transactions[0].AccountID != DefaultAccountID {
		t.Errorf("transaction not attached to the default account: %+v", got.Transactions[0])
	}
}
