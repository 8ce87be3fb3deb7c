// Package advisor asks a generative text service for business advice.
//
// The advice is built from the derived aggregates of the shop only; the
// advisor never reads the records themselves nor changes the state.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/biashara"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Messages shown to the user instead of advice.
const (
	APIKeyMissing = "API Key not found. Please ensure it's configured in the environment."
	Unavailable   = "Error communicating with AI Advisor. Please try again later."
	NoInsight     = "Insight generation failed."
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("no API key")

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewClient returns a Gemini client.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return client, nil
}

// Gemini generates text with a Gemini model.
type Gemini struct {
	Client *genai.Client
	Model  string
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.Model
	if model == "" {
		model = DefaultModel
	}
	resp, err := g.Client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Facts are the figures the outlook is based on.
type Facts struct {
	MonthlyNetProfit biashara.Money
	InventoryValue   biashara.Money
	OpenRecords      int // debt and loan records
	Years            int
}

// FactsOf extracts the facts from a state. The monthly net profit is the
// all-time net profit of the shop.
func FactsOf(s biashara.State) Facts {
	st := biashara.NewStats(s)
	return Facts{
		MonthlyNetProfit: st.NetProfit,
		InventoryValue:   st.InventoryValue,
		OpenRecords:      st.DebtsCount + st.LoansCount,
		Years:            biashara.ProjectionYears,
	}
}

// Prompt returns the prompt of the strategic outlook.
func Prompt(f Facts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a world-class financial advisor, analyze this business's %d-year trajectory.\n", f.Years)
	fmt.Fprintf(&b, "Current Monthly Net Profit: %s\n", f.MonthlyNetProfit.Display())
	fmt.Fprintf(&b, "Inventory Value: %s\n", f.InventoryValue.Display())
	fmt.Fprintf(&b, "Active Debts/Loans: %d records.\n\n", f.OpenRecords)
	fmt.Fprintf(&b, "Provide a concise 3-paragraph vision for the next %d years assuming %s%% annual compounding growth.\n",
		f.Years, biashara.GrowthRate.Shift(2).String())
	b.WriteString("Focus on expansion milestones and wealth building.\n")
	return b.String()
}

// Outlook asks g for a strategic outlook. It always returns text to show:
// the advice, or a message telling why there is none, with the error if any.
func Outlook(ctx context.Context, g Generator, f Facts) (string, error) {
	text, err := g.Generate(ctx, Prompt(f))
	if err != nil {
		return Unavailable, err
	}
	if strings.TrimSpace(text) == "" {
		return NoInsight, nil
	}
	return text, nil
}
