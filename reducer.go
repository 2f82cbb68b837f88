package moneybook

// ActionType names a canonical document mutation.
type ActionType string

const (
	ActAddTransaction    ActionType = "add-transaction"
	ActUpdateTransaction ActionType = "update-transaction"
	ActDeleteTransaction ActionType = "delete-transaction"
	ActAddAccount        ActionType = "add-account"
	ActUpdateAccount     ActionType = "update-account"
	ActDeleteAccount     ActionType = "delete-account"
	ActAddSavingsGoal    ActionType = "add-savings-goal"
	ActUpdateSavingsGoal ActionType = "update-savings-goal"
	ActDeleteSavingsGoal ActionType = "delete-savings-goal"
	ActAddBudget         ActionType = "add-budget"
	ActUpdateBudget      ActionType = "update-budget"
	ActDeleteBudget      ActionType = "delete-budget"
	ActAddCategory       ActionType = "add-category"
	ActDeleteCategory    ActionType = "delete-category"
	ActLoadData          ActionType = "load-data"
	ActSetTheme          ActionType = "set-theme"
	ActSetCurrency       ActionType = "set-currency"
)

// Action is one canonical mutation of the document. Reduce is the only
// interpreter; actions carry data, never behavior.
type Action interface {
	What() ActionType
}

type AddTransaction struct{ Transaction Transaction }
type UpdateTransaction struct{ Transaction Transaction }
type DeleteTransaction struct{ ID string }
type AddAccount struct{ Account Account }
type UpdateAccount struct{ Account Account }
type DeleteAccount struct{ ID string }
type AddSavingsGoal struct{ Goal SavingsGoal }
type UpdateSavingsGoal struct{ Goal SavingsGoal }
type DeleteSavingsGoal struct{ ID string }
type AddBudget struct{ Budget Budget }
type UpdateBudget struct{ Budget Budget }
type DeleteBudget struct{ ID string }
type AddCategory struct{ Name string }
type DeleteCategory struct{ Name string }
type LoadData struct{ State AppState }
type SetTheme struct{ Theme Theme }
type SetCurrency struct{ Currency string }

func (AddTransaction) What() ActionType    { return ActAddTransaction }
func (UpdateTransaction) What() ActionType { return ActUpdateTransaction }
func (DeleteTransaction) What() ActionType { return ActDeleteTransaction }
func (AddAccount) What() ActionType        { return ActAddAccount }
func (UpdateAccount) What() ActionType     { return ActUpdateAccount }
func (DeleteAccount) What() ActionType     { return ActDeleteAccount }
func (AddSavingsGoal) What() ActionType    { return ActAddSavingsGoal }
func (UpdateSavingsGoal) What() ActionType { return ActUpdateSavingsGoal }
func (DeleteSavingsGoal) What() ActionType { return ActDeleteSavingsGoal }
func (AddBudget) What() ActionType         { return ActAddBudget }
func (UpdateBudget) What() ActionType      { return ActUpdateBudget }
func (DeleteBudget) What() ActionType      { return ActDeleteBudget }
func (AddCategory) What() ActionType       { return ActAddCategory }
func (DeleteCategory) What() ActionType    { return ActDeleteCategory }
func (LoadData) What() ActionType          { return ActLoadData }
func (SetTheme) What() ActionType          { return ActSetTheme }
func (SetCurrency) What() ActionType       { return ActSetCurrency }

// Reduce applies one action to the document and returns the next document.
// It never mutates s in place: every touched slice is rebuilt, untouched
// slices are shared. An action it does not recognize returns s unchanged.
//
// Reduce validates nothing. Callers vet an action (see validation.go)
// before dispatching it; by the time it reaches Reduce it is assumed sound.
func Reduce(s *AppState, a Action) *AppState {
	switch a := a.(type) {

	case AddTransaction:
		next := *s
		next.Transactions = appended(s.Transactions, a.Transaction)
		return &next

	case UpdateTransaction:
		next := *s
		next.Transactions = replaced(s.Transactions, a.Transaction.ID, a.Transaction, txID)
		return &next

	case DeleteTransaction:
		next := *s
		next.Transactions = removed(s.Transactions, a.ID, txID)
		return &next

	case AddAccount:
		next := *s
		next.Accounts = appended(s.Accounts, a.Account)
		return &next

	case UpdateAccount:
		next := *s
		next.Accounts = replaced(s.Accounts, a.Account.ID, a.Account, acctID)
		return &next

	case DeleteAccount:
		next := *s
		next.Accounts = removed(s.Accounts, a.ID, acctID)
		return &next

	case AddSavingsGoal:
		next := *s
		next.SavingsGoals = appended(s.SavingsGoals, a.Goal)
		return &next

	case UpdateSavingsGoal:
		next := *s
		next.SavingsGoals = replaced(s.SavingsGoals, a.Goal.ID, a.Goal, goalID)
		return &next

	case DeleteSavingsGoal:
		next := *s
		next.SavingsGoals = removed(s.SavingsGoals, a.ID, goalID)
		return &next

	case AddBudget:
		next := *s
		next.Budgets = appended(s.Budgets, a.Budget)
		return &next

	case UpdateBudget:
		next := *s
		next.Budgets = replaced(s.Budgets, a.Budget.ID, a.Budget, budgetID)
		return &next

	case DeleteBudget:
		next := *s
		next.Budgets = removed(s.Budgets, a.ID, budgetID)
		return &next

	case AddCategory:
		// Idempotent: adding an existing category is a no-op.
		if s.HasCategory(a.Name) {
			return s
		}
		next := *s
		next.Categories = append(append([]string(nil), s.Categories...), a.Name)
		return &next

	case DeleteCategory:
		next := *s
		out := make([]string, 0, len(s.Categories))
		for _, c := range s.Categories {
			if c != a.Name {
				out = append(out, c)
			}
		}
		next.Categories = out
		return &next

	case LoadData:
		next := Normalize(a.State)
		return &next

	case SetTheme:
		next := *s
		next.Theme = a.Theme
		return &next

	case SetCurrency:
		next := *s
		next.Currency = a.Currency
		return &next

	default:
		return s
	}
}

func txID(t Transaction) string     { return t.ID }
func acctID(a Account) string       { return a.ID }
func goalID(g SavingsGoal) string   { return g.ID }
func budgetID(b Budget) string      { return b.ID }

// appended returns a fresh slice with v at the end, never growing the
// original's backing array.
func appended[T any](in []T, v T) []T {
	out := make([]T, len(in)+1)
	copy(out, in)
	out[len(in)] = v
	return out
}

// replaced returns a fresh slice with the element whose id matches swapped
// for v. A miss leaves the rebuilt slice identical to the original.
func replaced[T any](in []T, id string, v T, idOf func(T) string) []T {
	out := make([]T, len(in))
	for i, e := range in {
		if idOf(e) == id {
			out[i] = v
		} else {
			out[i] = e
		}
	}
	return out
}

// removed returns a fresh slice without the element whose id matches.
func removed[T any](in []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(in))
	for _, e := range in {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}
