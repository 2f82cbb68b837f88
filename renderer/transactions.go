package renderer

import (
	"sort"
	"strings"

	"github.com/moneybook/moneybook"
)

// TransactionList is the transaction log view.
type TransactionList struct {
	Title string
	Rows  []TransactionLine
}

// TransactionLine is one transaction row.
type TransactionLine struct {
	ID          string
	Date        string
	Type        string
	Category    string
	Description string
	Account     string
	Amount      string
}

// NewTransactionList builds the log view. An empty key lists everything;
// otherwise only the transactions of that period bucket. Newest first.
func NewTransactionList(s *moneybook.AppState, key string) *TransactionList {
	title := "Transactions"
	if key != "" {
		title = "Transactions for " + key
	}
	v := &TransactionList{Title: title}

	txs := append([]moneybook.Transaction(nil), s.Transactions...)
	sort.SliceStable(txs, func(i, j int) bool { return txs[j].Date.Before(txs[i].Date) })

	for _, t := range txs {
		if key != "" && !strings.HasPrefix(t.Date.String(), key) {
			continue
		}
		name := t.AccountID
		if a, ok := s.Account(t.AccountID); ok {
			name = a.Name
		}
		if t.Type == moneybook.Transfer {
			if to, ok := s.Account(t.ToAccountID); ok {
				name += " > " + to.Name
			}
		}
		amount := moneybook.M(t.Amount, s.Currency)
		display := amount.String()
		switch t.Type {
		case moneybook.Income:
			display = "+" + display
		case moneybook.Expense:
			display = amount.Neg().String()
		}
		v.Rows = append(v.Rows, TransactionLine{
			ID:          t.ID,
			Date:        t.Date.String(),
			Type:        string(t.Type),
			Category:    t.Category,
			Description: t.Description,
			Account:     name,
			Amount:      display,
		})
	}
	return v
}

// RenderTransactions renders the log view to markdown.
func RenderTransactions(v *TransactionList) string {
	return renderTemplate("transactions", "transactions.md", nil, v)
}
