package renderer

import (
	"fmt"

	"github.com/moneybook/moneybook"
)

// BudgetReport is the month-to-date budget standing.
type BudgetReport struct {
	Month string
	Rows  []BudgetLine
}

// BudgetLine is one budget row.
type BudgetLine struct {
	Category string
	Period   string
	Spent    string
	Limit    string
	Used     string
	Mark     string // warning marker when the limit is blown
}

// NewBudgetReport builds the budget view as of today.
func NewBudgetReport(s *moneybook.AppState, today moneybook.Date) *BudgetReport {
	v := &BudgetReport{Month: today.MonthKey()}
	for _, b := range s.Budgets {
		spent := moneybook.BudgetSpent(s.Transactions, b.Category, today)
		used := 0.0
		if !b.Limit.IsZero() {
			used = spent.Div(b.Limit).InexactFloat64() * 100
		}
		mark := ""
		if spent.GreaterThan(b.Limit) {
			mark = "over"
		}
		v.Rows = append(v.Rows, BudgetLine{
			Category: b.Category,
			Period:   b.Period.String(),
			Spent:    moneybook.M(spent, s.Currency).String(),
			Limit:    moneybook.M(b.Limit, s.Currency).String(),
			Used:     fmt.Sprintf("%.0f%%", used),
			Mark:     mark,
		})
	}
	return v
}

// RenderBudgets renders the budget view to markdown.
func RenderBudgets(v *BudgetReport) string {
	return renderTemplate("budgets", "budgets.md", nil, v)
}
