package moneybook

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType classifies a money movement.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// ParseTransactionType parses a transaction type from its wire name.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense, Transfer:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// AccountType classifies an account.
type AccountType string

const (
	Cash       AccountType = "cash"
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
	OtherAcct  AccountType = "other"
)

// ParseAccountType parses an account type from its wire name.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(strings.ToLower(strings.TrimSpace(s))); t {
	case Cash, Checking, Savings, Credit, Investment, OtherAcct:
		return t, nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// GoalPriority ranks a savings goal.
type GoalPriority string

const (
	High   GoalPriority = "high"
	Medium GoalPriority = "medium"
	Low    GoalPriority = "low"
)

// ParseGoalPriority parses a goal priority from its wire name.
func ParseGoalPriority(s string) (GoalPriority, error) {
	switch p := GoalPriority(strings.ToLower(strings.TrimSpace(s))); p {
	case High, Medium, Low:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Theme is the UI rendering preference carried in the document.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Transaction is a single dated money movement. Amount is always positive;
// Type tells which way the money went. Transfers carry the destination in
// ToAccountID.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
	ToAccountID string          `json:"toAccountId,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Location    string          `json:"location,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
}

// Account is a container of funds. InitialBalance is the balance before the
// first recorded transaction.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Color          string          `json:"color,omitempty"`
	Icon           string          `json:"icon,omitempty"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// SavingsGoal tracks progress toward a target amount.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
	Priority      GoalPriority    `json:"priority"`
	Description   string          `json:"description,omitempty"`
}

// Budget caps spending for one category. At most one budget exists per
// category.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Period   Period          `json:"period"`
}
