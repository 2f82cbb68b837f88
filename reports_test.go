package moneybook

import (
	"testing"
	"time"
)

// scenarioState is one default account, 500 income and 120 expense in
// January 2024.
func scenarioState() *AppState {
	s := NewState("EUR")
	s.Transactions = []Transaction{
		{ID: "t1", Amount: dec("500"), Type: Income, Category: "Salary", Date: MustParse("2024-01-05"), AccountID: DefaultAccountID},
		{ID: "t2", Amount: dec("120"), Type: Expense, Category: "Food", Date: MustParse("2024-01-10"), AccountID: DefaultAccountID},
	}
	return &s
}

func TestAccountBalance(t *testing.T) {
	s := scenarioState()
	if got := AccountBalance(s.Accounts[0], s.Transactions); !got.Equal(dec("380")) {
		t.Errorf("balance = %s, want 380", got)
	}
}

func TestAccountBalanceTransfers(t *testing.T) {
	s := NewState("EUR")
	other := Account{ID: "acc2", Name: "Savings", Type: Savings, Currency: "EUR", IsActive: true}
	s.Accounts = append(s.Accounts, other)
	s.Transactions = []Transaction{
		{ID: "t1", Amount: dec("300"), Type: Income, Category: "Salary", Date: MustParse("2024-01-05"), AccountID: DefaultAccountID},
		{ID: "t2", Amount: dec("100"), Type: Transfer, Category: "Other", Date: MustParse("2024-01-06"), AccountID: DefaultAccountID, ToAccountID: "acc2"},
	}

	if got := AccountBalance(s.Accounts[0], s.Transactions); !got.Equal(dec("200")) {
		t.Errorf("source balance = %s, want 200", got)
	}
	if got := AccountBalance(other, s.Transactions); !got.Equal(dec("100")) {
		t.Errorf("destination balance = %s, want 100", got)
	}
	// Transfers move money around but the total stays put.
	if got := TotalBalance(&s); !got.Equal(dec("300")) {
		t.Errorf("total balance = %s, want 300", got)
	}
}

func TestPeriodStats(t *testing.T) {
	s := scenarioState()

	tests := []struct {
		name    string
		key     string
		income  string
		expense string
		net     string
	}{
		{"month with activity", "2024-01", "500", "120", "380"},
		{"year bucket", "2024", "500", "120", "380"},
		{"empty month", "2024-02", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := PeriodStats(s.Transactions, tt.key)
			if !st.Income.Equal(dec(tt.income)) || !st.Expense.Equal(dec(tt.expense)) || !st.Net().Equal(dec(tt.net)) {
				t.Errorf("PeriodStats(%q) = {%s %s %s}, want {%s %s %s}",
					tt.key, st.Income, st.Expense, st.Net(), tt.income, tt.expense, tt.net)
			}
		})
	}
}

func TestPeriodStatsIgnoresTransfers(t *testing.T) {
	txs := []Transaction{
		{ID: "t1", Amount: dec("100"), Type: Transfer, Category: "Other", Date: MustParse("2024-01-05"), AccountID: "a", ToAccountID: "b"},
	}
	st := PeriodStats(txs, "2024-01")
	if !st.Income.IsZero() || !st.Expense.IsZero() {
		t.Errorf("transfer leaked into period stats: %+v", st)
	}
}

func TestPeriodKeys(t *testing.T) {
	today := NewDate(2024, time.June, 15)

	t.Run("empty ledger still has the current bucket", func(t *testing.T) {
		got := PeriodKeys(nil, Monthly, today)
		if len(got) != 1 || got[0] != "2024-06" {
			t.Errorf("PeriodKeys = %v, want [2024-06]", got)
		}
	})

	t.Run("distinct buckets newest first", func(t *testing.T) {
		txs := []Transaction{
			{ID: "a", Amount: dec("1"), Type: Expense, Category: "Food", Date: MustParse("2024-01-05")},
			{ID: "b", Amount: dec("1"), Type: Expense, Category: "Food", Date: MustParse("2024-01-20")},
			{ID: "c", Amount: dec("1"), Type: Expense, Category: "Food", Date: MustParse("2023-11-02")},
		}
		got := PeriodKeys(txs, Monthly, today)
		want := []string{"2024-06", "2024-01", "2023-11"}
		if len(got) != len(want) {
			t.Fatalf("PeriodKeys = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("PeriodKeys = %v, want %v", got, want)
			}
		}
	})

	t.Run("yearly buckets", func(t *testing.T) {
		txs := []Transaction{
			{ID: "a", Amount: dec("1"), Type: Expense, Category: "Food", Date: MustParse("2022-03-05")},
		}
		got := PeriodKeys(txs, Yearly, today)
		if len(got) != 2 || got[0] != "2024" || got[1] != "2022" {
			t.Errorf("PeriodKeys = %v, want [2024 2022]", got)
		}
	})
}

func TestTopExpenseCategories(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Amount: dec("50"), Type: Expense, Category: "Food", Date: MustParse("2024-01-01")},
		{ID: "2", Amount: dec("70"), Type: Expense, Category: "Food", Date: MustParse("2024-01-02")},
		{ID: "3", Amount: dec("200"), Type: Expense, Category: "Housing", Date: MustParse("2024-01-03")},
		{ID: "4", Amount: dec("30"), Type: Expense, Category: "Transport", Date: MustParse("2024-01-04")},
		{ID: "5", Amount: dec("25"), Type: Expense, Category: "Health", Date: MustParse("2024-01-05")},
		{ID: "6", Amount: dec("10"), Type: Expense, Category: "Leisure", Date: MustParse("2024-01-06")},
		{ID: "7", Amount: dec("5"), Type: Expense, Category: "Education", Date: MustParse("2024-01-07")},
		{ID: "8", Amount: dec("9999"), Type: Income, Category: "Salary", Date: MustParse("2024-01-08")},
	}

	got := TopExpenseCategories(txs, 5)
	if len(got) != 5 {
		t.Fatalf("got %d categories, want 5", len(got))
	}
	if got[0].Category != "Housing" || !got[0].Total.Equal(dec("200")) {
		t.Errorf("top = %+v, want Housing 200", got[0])
	}
	if got[1].Category != "Food" || !got[1].Total.Equal(dec("120")) {
		t.Errorf("second = %+v, want Food 120", got[1])
	}
	for _, c := range got {
		if c.Category == "Salary" {
			t.Error("income category leaked into the expense ranking")
		}
		if c.Category == "Education" {
			t.Error("sixth category survived the cut")
		}
	}
}

func TestBudgetSpentUsesCalendarMonth(t *testing.T) {
	today := NewDate(2024, time.June, 20)
	txs := []Transaction{
		{ID: "1", Amount: dec("40"), Type: Expense, Category: "Food", Date: MustParse("2024-06-03")},
		{ID: "2", Amount: dec("60"), Type: Expense, Category: "Food", Date: MustParse("2024-06-25")},
		{ID: "3", Amount: dec("500"), Type: Expense, Category: "Food", Date: MustParse("2024-05-31")},
		{ID: "4", Amount: dec("30"), Type: Expense, Category: "Transport", Date: MustParse("2024-06-10")},
		{ID: "5", Amount: dec("100"), Type: Income, Category: "Food", Date: MustParse("2024-06-11")},
	}

	// The whole calendar month counts, days after today included; other
	// months, other categories and income do not.
	if got := BudgetSpent(txs, "Food", today); !got.Equal(dec("100")) {
		t.Errorf("spent = %s, want 100", got)
	}
}

func TestTrendSeries(t *testing.T) {
	today := NewDate(2024, time.June, 30)
	txs := []Transaction{
		{ID: "1", Amount: dec("100"), Type: Income, Category: "Salary", Date: MustParse("2024-06-05")},
		{ID: "2", Amount: dec("30"), Type: Expense, Category: "Food", Date: MustParse("2024-06-10")},
		{ID: "3", Amount: dec("999"), Type: Expense, Category: "Food", Date: MustParse("2024-05-01")}, // outside
	}

	series := TrendSeries(txs, 30, today)

	if len(series) != 31 {
		t.Fatalf("got %d points, want 31", len(series))
	}
	if series[0].Date != NewDate(2024, time.May, 31) || series[30].Date != today {
		t.Errorf("window = [%s, %s], want [2024-05-31, 2024-06-30]", series[0].Date, series[30].Date)
	}

	byDate := map[Date]TrendPoint{}
	for _, p := range series {
		byDate[p.Date] = p
	}
	if p := byDate[MustParse("2024-06-05")]; !p.Income.Equal(dec("100")) {
		t.Errorf("income on 06-05 = %s, want 100", p.Income)
	}
	if p := byDate[MustParse("2024-06-10")]; !p.Expense.Equal(dec("30")) {
		t.Errorf("expense on 06-10 = %s, want 30", p.Expense)
	}
	// Days without activity are zero-filled, and the balance runs
	// cumulatively: 0 until 06-04, 100 from 06-05, 70 from 06-10 on.
	if p := byDate[MustParse("2024-06-01")]; !p.Income.IsZero() || !p.Expense.IsZero() || !p.Balance.IsZero() {
		t.Errorf("quiet day not zero-filled: %+v", p)
	}
	if p := byDate[MustParse("2024-06-07")]; !p.Balance.Equal(dec("100")) {
		t.Errorf("balance on 06-07 = %s, want 100", p.Balance)
	}
	if p := byDate[today]; !p.Balance.Equal(dec("70")) {
		t.Errorf("final balance = %s, want 70", p.Balance)
	}
}

func TestTrendSeriesCountsTransfersAsExpense(t *testing.T) {
	today := NewDate(2024, time.June, 30)
	txs := []Transaction{
		{ID: "1", Amount: dec("40"), Type: Transfer, Category: "Other", Date: MustParse("2024-06-15"), AccountID: "a", ToAccountID: "b"},
	}
	series := TrendSeries(txs, 30, today)
	for _, p := range series {
		if p.Date == MustParse("2024-06-15") {
			if !p.Expense.Equal(dec("40")) {
				t.Errorf("transfer expense = %s, want 40", p.Expense)
			}
			return
		}
	}
	t.Fatal("day not found in series")
}

func TestMonthlyComparison(t *testing.T) {
	txs := []Transaction{
		{ID: "1", Amount: dec("100"), Type: Income, Category: "Salary", Date: MustParse("2024-01-10")},
		{ID: "2", Amount: dec("50"), Type: Expense, Category: "Food", Date: MustParse("2024-01-15")},
		{ID: "3", Amount: dec("150"), Type: Income, Category: "Salary", Date: MustParse("2024-02-10")},
		{ID: "4", Amount: dec("25"), Type: Expense, Category: "Food", Date: MustParse("2024-02-15")},
	}

	got := MonthlyComparison(txs)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}
	if got[0].Month != "2024-01" || got[1].Month != "2024-02" {
		t.Fatalf("months = %s, %s", got[0].Month, got[1].Month)
	}
	if got[0].IncomeChange != 0 || got[0].ExpenseChange != 0 {
		t.Errorf("first month change = %v/%v, want 0/0", got[0].IncomeChange, got[0].ExpenseChange)
	}
	if got[1].IncomeChange != 50 {
		t.Errorf("income change = %v, want 50", got[1].IncomeChange)
	}
	if got[1].ExpenseChange != -50 {
		t.Errorf("expense change = %v, want -50", got[1].ExpenseChange)
	}
	if !got[1].Net().Equal(dec("125")) {
		t.Errorf("net = %s, want 125", got[1].Net())
	}
}

func TestMonthlyComparisonZeroPrevious(t *testing.T) {
	// A month with zero income followed by a month with income: the
	// change reports 0, not a division blow-up.
	txs := []Transaction{
		{ID: "1", Amount: dec("50"), Type: Expense, Category: "Food", Date: MustParse("2024-01-15")},
		{ID: "2", Amount: dec("100"), Type: Income, Category: "Salary", Date: MustParse("2024-02-10")},
	}
	got := MonthlyComparison(txs)
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}
	if got[1].IncomeChange != 0 {
		t.Errorf("income change after a zero month = %v, want 0", got[1].IncomeChange)
	}
}

func TestMonthlyComparisonKeepsSixMonths(t *testing.T) {
	var txs []Transaction
	for m := time.January; m <= time.August; m++ {
		txs = append(txs, Transaction{
			ID:       string(rune('a' + int(m))),
			Amount:   dec("10"),
			Type:     Income,
			Category: "Salary",
			Date:     NewDate(2024, m, 10),
		})
	}
	got := MonthlyComparison(txs)
	if len(got) != 6 {
		t.Fatalf("got %d months, want 6", len(got))
	}
	if got[0].Month != "2024-03" || got[5].Month != "2024-08" {
		t.Errorf("window = [%s, %s], want [2024-03, 2024-08]", got[0].Month, got[5].Month)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    float64
	}{
		{"halfway", "50", "100", 50},
		{"capped at 100", "250", "100", 100},
		{"zero target", "10", "0", 0},
		{"nothing saved", "0", "100", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := SavingsGoal{CurrentAmount: dec(tt.current), TargetAmount: dec(tt.target)}
			if got := GoalProgress(g); got != tt.want {
				t.Errorf("GoalProgress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortGoals(t *testing.T) {
	goals := []SavingsGoal{
		{ID: "a", Priority: Low, TargetDate: MustParse("2024-01-01")},
		{ID: "b", Priority: High, TargetDate: MustParse("2025-01-01")},
		{ID: "c", Priority: High, TargetDate: MustParse("2024-06-01")},
		{ID: "d", Priority: Medium, TargetDate: MustParse("2024-02-01")},
	}
	got := SortGoals(goals)
	want := []string{"c", "b", "d", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
	if goals[0].ID != "a" {
		t.Error("input slice was reordered")
	}
}

func ids(goals []SavingsGoal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}
