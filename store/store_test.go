package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/moneybook/moneybook"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moneybook.db")
	st, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st, path
}

func TestLoadFreshDatabase(t *testing.T) {
	st, _ := openTemp(t)
	_, ok, err := st.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("fresh database should report no document")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, path := openTemp(t)
	ctx := context.Background()

	s := moneybook.NewState("USD")
	s.Transactions = []moneybook.Transaction{{
		ID:        "t1",
		Amount:    decimal.RequireFromString("42.50"),
		Category:  "Food",
		Date:      moneybook.MustParse("2024-06-15"),
		Type:      moneybook.Expense,
		AccountID: moneybook.DefaultAccountID,
	}}
	if err := st.Save(ctx, s); err != nil {
		t.Fatal(err)
	}

	got, ok, err := st.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("saved document not found")
	}
	if got.Currency != "USD" || len(got.Transactions) != 1 {
		t.Errorf("loaded = %+v", got)
	}
	if !got.Transactions[0].Amount.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("amount = %s, want 42.50", got.Transactions[0].Amount)
	}

	// The document survives a close and reopen.
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	st2, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer st2.Close()
	got, ok, err = st2.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("reload: ok=%v err=%v", ok, err)
	}
	if len(got.Transactions) != 1 {
		t.Errorf("reloaded transactions = %+v", got.Transactions)
	}
}

func TestSaveOverwrites(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	first := moneybook.NewState("EUR")
	if err := st.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := moneybook.NewState("EUR")
	second.Theme = moneybook.Dark
	if err := st.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, ok, err := st.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.Theme != moneybook.Dark {
		t.Error("second save did not replace the first")
	}

	// Only one row ever exists.
	var n int
	if err := st.db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("got %d rows, want 1", n)
	}
}

func TestLoadOrDefault(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	t.Run("fresh database yields a usable default", func(t *testing.T) {
		got := st.LoadOrDefault(ctx, "GBP")
		if got.Currency != "GBP" || len(got.Accounts) != 1 {
			t.Errorf("default state = %+v", got)
		}
	})

	t.Run("stored document comes back normalized", func(t *testing.T) {
		// An older document without categories.
		bare := moneybook.AppState{
			Transactions: []moneybook.Transaction{},
			Accounts:     []moneybook.Account{},
		}
		if err := st.Save(ctx, bare); err != nil {
			t.Fatal(err)
		}
		got := st.LoadOrDefault(ctx, "GBP")
		if len(got.Categories) == 0 {
			t.Error("normalization did not fill the default categories")
		}
		if got.Currency == "" {
			t.Error("normalization did not fill the currency")
		}
	})

	t.Run("corrupt document falls back to default", func(t *testing.T) {
		_, err := st.db.Exec(`UPDATE app_state SET doc = ? WHERE key = ?`, []byte("{broken"), "current_state")
		if err != nil {
			t.Fatal(err)
		}
		got := st.LoadOrDefault(ctx, "GBP")
		if got.Currency != "GBP" {
			t.Errorf("fallback currency = %q, want GBP", got.Currency)
		}
	})
}
