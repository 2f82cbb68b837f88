package renderer

import (
	"github.com/moneybook/moneybook"
)

// TrendReport is the daily income and expense series over a trailing
// window, with the window's cumulative balance.
type TrendReport struct {
	Days int
	From string
	To   string
	Rows []TrendLine
	Top  []CategoryLine
}

// TrendLine is one day with activity.
type TrendLine struct {
	Date    string
	Income  string
	Expense string
	Balance string
}

// CategoryLine is one entry of the expense category ranking.
type CategoryLine struct {
	Category string
	Total    string
}

// NewTrendReport builds the trend view for the trailing days ending today.
// Days without activity are elided from the table; the running balance
// still accounts for them.
func NewTrendReport(s *moneybook.AppState, days int, today moneybook.Date) *TrendReport {
	series := moneybook.TrendSeries(s.Transactions, days, today)
	v := &TrendReport{
		Days: days,
		From: series[0].Date.String(),
		To:   series[len(series)-1].Date.String(),
	}
	for _, p := range series {
		if p.Income.IsZero() && p.Expense.IsZero() {
			continue
		}
		v.Rows = append(v.Rows, TrendLine{
			Date:    p.Date.String(),
			Income:  moneybook.M(p.Income, s.Currency).String(),
			Expense: moneybook.M(p.Expense, s.Currency).String(),
			Balance: moneybook.M(p.Balance, s.Currency).SignedString(),
		})
	}
	for _, c := range moneybook.TopExpenseCategories(s.Transactions, 5) {
		v.Top = append(v.Top, CategoryLine{
			Category: c.Category,
			Total:    moneybook.M(c.Total, s.Currency).String(),
		})
	}
	return v
}

// RenderTrend renders the trend view to markdown.
func RenderTrend(v *TrendReport) string {
	partials := map[string]string{
		"trend_top_categories": "trend_top_categories.md",
	}
	return renderTemplate("trend", "trend.md", partials, v)
}
