package renderer

import (
	"fmt"

	"github.com/moneybook/moneybook"
)

// Summary is the period overview: aggregate stats for one bucket plus the
// current account and goal standing.
type Summary struct {
	Period   string
	Income   string
	Expense  string
	Net      string
	Total    string // total balance across all accounts, all time
	Accounts []AccountLine
	Goals    []GoalLine
}

// AccountLine is one account row of the summary.
type AccountLine struct {
	Name    string
	Type    string
	Balance string
	Status  string
}

// GoalLine is one savings goal row of the summary.
type GoalLine struct {
	Name     string
	Priority string
	Saved    string
	Target   string
	Progress string
}

// NewSummary builds the summary view for the period bucket named by key.
func NewSummary(s *moneybook.AppState, key string) *Summary {
	stats := moneybook.PeriodStats(s.Transactions, key)
	v := &Summary{
		Period:  key,
		Income:  moneybook.M(stats.Income, s.Currency).String(),
		Expense: moneybook.M(stats.Expense, s.Currency).String(),
		Net:     moneybook.M(stats.Net(), s.Currency).SignedString(),
		Total:   moneybook.M(moneybook.TotalBalance(s), s.Currency).String(),
	}
	for _, a := range s.Accounts {
		status := "active"
		if !a.IsActive {
			status = "closed"
		}
		v.Accounts = append(v.Accounts, AccountLine{
			Name:    a.Name,
			Type:    string(a.Type),
			Balance: moneybook.M(moneybook.AccountBalance(a, s.Transactions), a.Currency).String(),
			Status:  status,
		})
	}
	for _, g := range moneybook.SortGoals(s.SavingsGoals) {
		v.Goals = append(v.Goals, GoalLine{
			Name:     g.Name,
			Priority: string(g.Priority),
			Saved:    moneybook.M(g.CurrentAmount, s.Currency).String(),
			Target:   moneybook.M(g.TargetAmount, s.Currency).String(),
			Progress: fmt.Sprintf("%.0f%%", moneybook.GoalProgress(g)),
		})
	}
	return v
}

// RenderSummary renders the summary view to markdown.
func RenderSummary(v *Summary) string {
	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
		"summary_goals":    "summary_goals.md",
	}
	return renderTemplate("summary", "summary.md", partials, v)
}
