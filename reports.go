package moneybook

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Stats aggregates money movements over some window.
type Stats struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (s Stats) Net() decimal.Decimal { return s.Income.Sub(s.Expense) }

// AccountBalance returns the balance of account a: its initial balance plus
// every movement touching it. Transfers debit the source and credit the
// destination.
func AccountBalance(a Account, txs []Transaction) decimal.Decimal {
	balance := a.InitialBalance
	for _, t := range txs {
		switch t.Type {
		case Income:
			if t.AccountID == a.ID {
				balance = balance.Add(t.Amount)
			}
		case Expense:
			if t.AccountID == a.ID {
				balance = balance.Sub(t.Amount)
			}
		case Transfer:
			if t.AccountID == a.ID {
				balance = balance.Sub(t.Amount)
			}
			if t.ToAccountID == a.ID {
				balance = balance.Add(t.Amount)
			}
		}
	}
	return balance
}

// TotalBalance returns the sum of all account balances. Transfers cancel
// out, so this moves only with income and expense.
func TotalBalance(s *AppState) decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Accounts {
		total = total.Add(AccountBalance(a, s.Transactions))
	}
	return total
}

// GlobalStats aggregates income and expense over all transactions.
// Transfers count as neither.
func GlobalStats(txs []Transaction) Stats {
	st := Stats{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range txs {
		switch t.Type {
		case Income:
			st.Income = st.Income.Add(t.Amount)
		case Expense:
			st.Expense = st.Expense.Add(t.Amount)
		}
	}
	return st
}

// PeriodKeys returns the distinct period buckets that carry transactions,
// newest first. The bucket containing today is always present, even when
// empty, so a report always has a current period to land on.
func PeriodKeys(txs []Transaction, p Period, today Date) []string {
	seen := map[string]bool{p.Key(today): true}
	for _, t := range txs {
		seen[p.Key(t.Date)] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// PeriodStats aggregates income and expense over the transactions whose
// date falls in the bucket named by key ("2024-06" or "2024").
func PeriodStats(txs []Transaction, key string) Stats {
	st := Stats{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range txs {
		if !strings.HasPrefix(t.Date.String(), key) {
			continue
		}
		switch t.Type {
		case Income:
			st.Income = st.Income.Add(t.Amount)
		case Expense:
			st.Expense = st.Expense.Add(t.Amount)
		}
	}
	return st
}

// CategoryTotal is the spend recorded against one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TopExpenseCategories ranks categories by expense volume, largest first,
// and returns at most n of them. Ties break on category name so the
// ranking is deterministic.
func TopExpenseCategories(txs []Transaction, n int) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	ranked := make([]CategoryTotal, 0, len(totals))
	for c, v := range totals {
		ranked = append(ranked, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Category < ranked[j].Category
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// BudgetSpent returns the expense recorded against a category during the
// calendar month containing today. The window is the month regardless of
// the budget's declared period; weekly and yearly budgets are still judged
// against month-to-date spend.
func BudgetSpent(txs []Transaction, category string, today Date) decimal.Decimal {
	window := Monthly.Range(today)
	spent := decimal.Zero
	for _, t := range txs {
		if t.Type == Expense && t.Category == category && window.Contains(t.Date) {
			spent = spent.Add(t.Amount)
		}
	}
	return spent
}

// TrendPoint is one day of the trend series.
type TrendPoint struct {
	Date    Date
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // cumulative net of the window up to this day
}

// TrendSeries buckets the trailing days ending today into one point per
// day, zero-filled so the series has no gaps. Anything that is not income
// counts as expense here, transfers included. Balance accumulates the
// window's daily nets and starts from zero, so it tracks the window's own
// movement rather than absolute account balances.
func TrendSeries(txs []Transaction, days int, today Date) []TrendPoint {
	start := today.Add(-days)
	window := Range{From: start, To: today}

	perDay := map[Date]*TrendPoint{}
	series := make([]TrendPoint, days+1)
	for i := range series {
		d := start.Add(i)
		series[i] = TrendPoint{Date: d, Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
		perDay[d] = &series[i]
	}

	for _, t := range txs {
		if !window.Contains(t.Date) {
			continue
		}
		p := perDay[t.Date]
		if t.Type == Income {
			p.Income = p.Income.Add(t.Amount)
		} else {
			p.Expense = p.Expense.Add(t.Amount)
		}
	}

	running := decimal.Zero
	for i := range series {
		running = running.Add(series[i].Income).Sub(series[i].Expense)
		series[i].Balance = running
	}
	return series
}

// MonthStats is one month of the month-over-month comparison.
type MonthStats struct {
	Month         string // "2006-01"
	Income        decimal.Decimal
	Expense       decimal.Decimal
	IncomeChange  float64 // percent vs previous month in the window
	ExpenseChange float64
}

// Net returns income minus expense for the month.
func (m MonthStats) Net() decimal.Decimal { return m.Income.Sub(m.Expense) }

// MonthlyComparison aggregates transactions per month, keeps the six most
// recent months with activity, and annotates each with its percent change
// against the month before it in the window. The first month of the window
// and any month following a zero get a change of zero rather than a
// division blow-up. As in TrendSeries, non-income counts as expense.
func MonthlyComparison(txs []Transaction) []MonthStats {
	perMonth := map[string]*MonthStats{}
	for _, t := range txs {
		key := t.Date.MonthKey()
		m := perMonth[key]
		if m == nil {
			m = &MonthStats{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			perMonth[key] = m
		}
		if t.Type == Income {
			m.Income = m.Income.Add(t.Amount)
		} else {
			m.Expense = m.Expense.Add(t.Amount)
		}
	}

	keys := make([]string, 0, len(perMonth))
	for k := range perMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 6 {
		keys = keys[len(keys)-6:]
	}

	out := make([]MonthStats, 0, len(keys))
	for i, k := range keys {
		m := *perMonth[k]
		if i > 0 {
			prev := perMonth[keys[i-1]]
			m.IncomeChange = percentChange(prev.Income, m.Income)
			m.ExpenseChange = percentChange(prev.Expense, m.Expense)
		}
		out = append(out, m)
	}
	return out
}

// percentChange returns the relative change from prev to cur in percent,
// and zero when prev is zero.
func percentChange(prev, cur decimal.Decimal) float64 {
	if prev.IsZero() {
		return 0
	}
	return cur.Sub(prev).Div(prev).InexactFloat64() * 100
}

// GoalProgress returns the percent of the target already saved, capped at
// 100. A goal with a zero target reports zero.
func GoalProgress(g SavingsGoal) float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).InexactFloat64() * 100
	if pct > 100 {
		return 100
	}
	return pct
}

var priorityRank = map[GoalPriority]int{High: 0, Medium: 1, Low: 2}

// SortGoals orders goals by priority, then by nearest target date.
func SortGoals(goals []SavingsGoal) []SavingsGoal {
	out := append([]SavingsGoal(nil), goals...)
	sort.SliceStable(out, func(i, j int) bool {
		if priorityRank[out[i].Priority] != priorityRank[out[j].Priority] {
			return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
		}
		return out[i].TargetDate.Before(out[j].TargetDate)
	})
	return out
}
