package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/moneybook/moneybook"
	"github.com/moneybook/moneybook/renderer"
)

const model = "gemini-2.5-pro"

// NewAdvisor builds the advisor expert over a live book. Its tools are
// read-only; the advisor can look at the money, not move it.
func NewAdvisor(book *moneybook.Book) *Expert {
	lib := tools(book)
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance advisor. The user tracks all their
			money in a local book: transactions, accounts, savings goals,
			budgets. Use the available tools to read the book before
			answering; never guess figures.

			Answer in short plain language. When a question is about
			spending, check the budgets and the category ranking. When it
			is about saving, check the goals. Amounts you quote must come
			from tool output.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func tools(book *moneybook.Book) []Function {
	return []Function{
		summaryTool(book),
		budgetsTool(book),
		trendTool(book),
		compareTool(book),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func summaryTool(book *moneybook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports income, expense and net for one period,
			plus every account balance and savings goal progress.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": {
						Type:        genai.TypeString,
						Description: `The period bucket, "YYYY-MM" for a month or "YYYY" for a year. Defaults to the current month.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the period.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			key, err := stringArg(args, "period", moneybook.Today().MonthKey())
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			s := book.State()
			return outputResponse(id, "Summary", renderer.RenderSummary(renderer.NewSummary(&s, key)))
		},
	}
}

func budgetsTool(book *moneybook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Budgets",
			Description: `Budgets reports each budget's month-to-date spend against its limit.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of budgets with spend and limit.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := book.State()
			return outputResponse(id, "Budgets", renderer.RenderBudgets(renderer.NewBudgetReport(&s, moneybook.Today())))
		},
	}
}

func trendTool(book *moneybook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Trend",
			Description: `Trend reports daily income and expense over a trailing
			window, with the top expense categories.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeInteger,
						Description: "Window length in days: 30, 90, 180 or 365. Defaults to 30.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown trend report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days := 30
			if v, ok := args["days"]; ok {
				f, ok := v.(float64)
				if !ok {
					return errorResponse(id, "Trend", fmt.Errorf("argument 'days' is not a number but %T", v))
				}
				days = int(f)
			}
			s := book.State()
			return outputResponse(id, "Trend", renderer.RenderTrend(renderer.NewTrendReport(&s, days, moneybook.Today())))
		},
	}
}

func compareTool(book *moneybook.Book) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Compare",
			Description: `Compare reports the last six months side by side with percent changes.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown month-over-month comparison.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s := book.State()
			return outputResponse(id, "Compare", renderer.RenderCompare(renderer.NewCompareReport(&s)))
		},
	}
}

func stringArg(args map[string]any, name, fallback string) (string, error) {
	v, ok := args[name]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return fallback, fmt.Errorf("argument %q is not a string but %T", name, v)
	}
	if s == "" {
		return fallback, nil
	}
	return s, nil
}
