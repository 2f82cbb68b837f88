package renderer

import (
	"github.com/moneybook/moneybook"
)

// CompareReport is the month-over-month comparison.
type CompareReport struct {
	Rows []CompareLine
}

// CompareLine is one month with its change against the previous one.
type CompareLine struct {
	Month         string
	Income        string
	Expense       string
	Net           string
	IncomeChange  string
	ExpenseChange string
}

// NewCompareReport builds the comparison view over the whole ledger.
func NewCompareReport(s *moneybook.AppState) *CompareReport {
	v := &CompareReport{}
	for _, m := range moneybook.MonthlyComparison(s.Transactions) {
		v.Rows = append(v.Rows, CompareLine{
			Month:         m.Month,
			Income:        moneybook.M(m.Income, s.Currency).String(),
			Expense:       moneybook.M(m.Expense, s.Currency).String(),
			Net:           moneybook.M(m.Net(), s.Currency).SignedString(),
			IncomeChange:  percent(m.IncomeChange),
			ExpenseChange: percent(m.ExpenseChange),
		})
	}
	return v
}

// RenderCompare renders the comparison view to markdown.
func RenderCompare(v *CompareReport) string {
	return renderTemplate("compare", "compare.md", nil, v)
}
