package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/biashara"
	"github.com/etnz/biashara/renderer"
	"google.golang.org/genai"
)

// NewFacilitator returns the expert leading the conversation with the user.
func NewFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the shop owner's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The owner runs a small boutique in Kenya, amounts are in Kenyan shillings (KES).
			Devise a plan of questions to ask to each expert and come up with the best response to the owner's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketAnalyst returns an expert grounded with Google Search.
func NewMarketAnalyst(model string) *Expert {
	return &Expert{
		Name: "MarketAnalyst",
		Description: `This is an expert of retail markets in East Africa,
		aware of consumer trends, suppliers and seasonal demand.
		Ask the MarketAnalyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of retail markets, you can search and find about anything related to
			fashion retail, suppliers, prices and consumer trends. You leverage Google Search to
			ground your assertions in a solid truth.
			`}}},
		},
	}
}

// NewBookkeeper returns the expert reading the shop figures. view returns
// the current state each time a figure is needed.
func NewBookkeeper(model string, view func() biashara.State) *Expert {
	lib := Bookkeeping(view)
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of the shop's books: inventory, sales,
		expenses, debts, loans and equity. He computes the relevant figures about the shop.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of a small boutique.
				You know how to use the Tools to extract relevant figures about the shop.
				You are part of a team of experts, yours is everything about the shop's books.
				Pardon their approximative language and figure out what they meant.

				Use the available tools to get:
				  - the headline stats (revenue, profit, expenses, liabilities, inventory value)
				  - the items running low on stock
				  - the daily sales trend
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// Bookkeeping returns the functions reading the shop figures.
func Bookkeeping(view func() biashara.State) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Stats",
				Description: "Stats returns the headline figures of the shop: revenue, gross and net profit, expenses, margin, liabilities, receivables, inventory value and record counts.",
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown report of the figures."},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				s := view()
				return outputResponse(id, "Stats", renderer.DashboardMarkdown(biashara.NewStats(s), nil, nil))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "LowStock",
				Description: fmt.Sprintf("LowStock lists the items with less than %d units in stock.", biashara.LowStockThreshold),
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown table of the items."},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				s := biashara.EmptyState()
				s.Inventory = biashara.LowStockItems(view())
				t := renderer.InventoryTable(s)
				t.Title = "Low Stock Items"
				return outputResponse(id, "LowStock", renderer.TableMarkdown(t))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Trend",
				Description: "Trend returns the revenue and profit of each of the last days, today included.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"days": {Type: genai.TypeInteger, Description: "Number of days, 7 by default."},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown table of the daily figures."},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				days, err := intArg(args, "days", 7)
				if err != nil {
					return errorResponse(id, "Trend", err)
				}
				return outputResponse(id, "Trend", renderer.TrendMarkdown(biashara.Trend(view(), time.Now(), days)))
			},
		},
	}
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		if n < 1 || n > 366 {
			return 0, fmt.Errorf("argument %q must be between 1 and 366, got %v", name, n)
		}
		return int(n), nil
	case int:
		if n < 1 || n > 366 {
			return 0, fmt.Errorf("argument %q must be between 1 and 366, got %v", name, n)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}
